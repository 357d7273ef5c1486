// Package console prints user-facing status lines. Success and info lines go
// to stdout, warnings and errors to stderr, each behind a colored marker.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

const (
	SuccessIcon = "✅"
	InfoIcon    = "✔"
	WarningIcon = "⚠️"
	ErrorIcon   = "❌"
)

type Printer struct {
	Out io.Writer
	Err io.Writer
}

func New(out, err io.Writer) *Printer {
	return &Printer{Out: out, Err: err}
}

var std = New(os.Stdout, os.Stderr)

// SetOutput redirects the package-level printer. It returns a func restoring
// the previous writers.
func SetOutput(out, err io.Writer) (restore func()) {
	prev := *std
	std.Out, std.Err = out, err
	return func() { *std = prev }
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", successStyle.Render(SuccessIcon), msg)
}

// Info prints msg behind icon, or behind the default info marker when icon is
// empty.
func (p *Printer) Info(msg, icon string) {
	if icon == "" {
		icon = InfoIcon
	}
	fmt.Fprintf(p.Out, "%s %s\n", infoStyle.Render(icon), msg)
}

func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.Err, "%s %s\n", warningStyle.Render(WarningIcon), msg)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, "%s %s\n", errorStyle.Render(ErrorIcon), msg)
}

// Plain prints msg to stdout without a marker.
func (p *Printer) Plain(msg string) {
	fmt.Fprintln(p.Out, msg)
}

func Success(msg string)    { std.Success(msg) }
func Info(msg, icon string) { std.Info(msg, icon) }
func Warning(msg string)    { std.Warning(msg) }
func Error(msg string)      { std.Error(msg) }
func Plain(msg string)      { std.Plain(msg) }
func Stdout() io.Writer     { return std.Out }
