package workspace

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"kps/internal/kpserr"
)

// ErrIDEUnavailable means the IDE launcher is not installed.
var ErrIDEUnavailable = errors.New("xed not available")

// OpenWithIDE opens file inside the IDE project with xed.
func OpenWithIDE(ctx context.Context, project, file string) error {
	bin, err := exec.LookPath("xed")
	if err != nil {
		return ErrIDEUnavailable
	}
	cmd := exec.CommandContext(ctx, bin, "-p", project, file)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	slog.Debug("running", "cmd", cmd.String())
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not found") {
			return ErrIDEUnavailable
		}
		if msg == "" {
			msg = err.Error()
		}
		return kpserr.OpenFailed(msg)
	}
	return nil
}

// OpenDefault hands file to the operating system's default opener.
func OpenDefault(ctx context.Context, file string) error {
	name, args := defaultOpener(runtime.GOOS)
	cmd := exec.CommandContext(ctx, name, append(args, file)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	slog.Debug("running", "cmd", cmd.String())
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return kpserr.OpenFailed(msg)
	}
	return nil
}

func defaultOpener(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}
	}
	return "xdg-open", nil
}

// EditorCmd builds the $EDITOR invocation for path, defaulting to vi.
func EditorCmd(path string) *exec.Cmd {
	editor := os.Getenv("EDITOR")
	if strings.TrimSpace(editor) == "" {
		editor = "vi"
	}
	return exec.Command(editor, path)
}

// OpenInEditor runs $EDITOR on path attached to the terminal.
func OpenInEditor(path string) error {
	cmd := EditorCmd(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
