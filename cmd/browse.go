package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kps/internal/history"
	"kps/internal/platform"
	"kps/internal/workspace"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive history browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		m, err := newBrowseModel(a)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

type browseModel struct {
	a        *app
	log      history.Log
	items    []browseItem
	cursor   int
	query    textinput.Model
	platform string
	status   string
	msg      string
}

type browseItem struct {
	entry history.Entry
	path  string
}

type editorDoneMsg struct {
	err error
}

func newBrowseModel(a *app) (browseModel, error) {
	q := textinput.New()
	q.Placeholder = "search number/path"
	q.CharLimit = 120
	q.Width = 40

	m := browseModel{a: a, query: q}
	log, err := a.history()
	if err != nil {
		return m, err
	}
	m.log = log
	m.reload()
	return m, nil
}

// reload rebuilds the visible items, newest first, from the in-memory log.
func (m *browseModel) reload() {
	query := strings.ToLower(strings.TrimSpace(m.query.Value()))
	m.items = m.items[:0]
	for i := len(m.log.Entries) - 1; i >= 0; i-- {
		e := m.log.Entries[i]
		if m.platform != "" && string(e.Platform) != m.platform {
			continue
		}
		if (m.status == "solved" && !e.Solved) || (m.status == "unsolved" && e.Solved) {
			continue
		}
		if query != "" && !strings.Contains(e.ProblemNumber, query) && !strings.Contains(strings.ToLower(e.FilePath), query) {
			continue
		}
		m.items = append(m.items, browseItem{entry: e, path: m.a.root.Abs(e.FilePath)})
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch t := msg.(type) {
	case tea.KeyMsg:
		if m.query.Focused() {
			return m.updateSearch(t)
		}
		switch t.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "/":
			m.msg = ""
			return m, m.query.Focus()
		case "ctrl+u":
			m.query.SetValue("")
			m.reload()
		case "tab":
			m.platform = nextPlatform(m.platform)
			m.reload()
		case "shift+tab":
			m.status = nextStatus(m.status)
			m.reload()
		case "s":
			if it, ok := m.selected(); ok {
				m.markSolved(it.entry)
			}
		case "enter", "o":
			if it, ok := m.selected(); ok {
				return m, tea.ExecProcess(workspace.EditorCmd(it.path), func(err error) tea.Msg {
					return editorDoneMsg{err: err}
				})
			}
		}
	case editorDoneMsg:
		if t.err != nil {
			m.msg = "editor error: " + t.err.Error()
		}
	}
	return m, nil
}

// updateSearch routes keys to the search input until esc or enter.
func (m browseModel) updateSearch(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.query.Blur()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(k)
	m.reload()
	return m, cmd
}

// markSolved flips the first history entry for e's problem, which is the one
// Log.MarkSolved changes even when e is a later duplicate.
func (m *browseModel) markSolved(e history.Entry) {
	first, ok := m.log.Find(e.ProblemNumber, e.Platform)
	if !ok || first.Solved {
		m.msg = fmt.Sprintf("no change: %s %s is already marked solved", e.Platform.DisplayName(), e.ProblemNumber)
		return
	}
	next := m.log.MarkSolved(e.ProblemNumber, e.Platform)
	if err := m.a.saveHistory(next); err != nil {
		m.msg = "save error: " + err.Error()
		return
	}
	m.log = next
	m.msg = fmt.Sprintf("marked solved: %s %s", e.Platform.DisplayName(), e.ProblemNumber)
	m.reload()
}

func (m browseModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("kps browse · " + m.a.cfg.ProjectName)
	sub := fmt.Sprintf("search=%q  platform=%s(tab)  status=%s(shift+tab)", m.query.Value(), blankAsAll(m.platform), blankAsAll(m.status))
	legend := "/ search (esc done)  enter/o open  s mark solved  ctrl+u clear search  q quit"
	solved := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(sub + "\n")
	b.WriteString(m.query.View() + "\n")
	b.WriteString(legend + "\n\n")
	if len(m.items) == 0 {
		b.WriteString("No history entries. Run `kps new` first.\n")
	} else {
		for i, it := range m.items {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			status := fmt.Sprintf("%-6s", "todo")
			if it.entry.Solved {
				status = solved.Render("solved")
			}
			b.WriteString(fmt.Sprintf("%s %-11s %-8s %s %s  %s\n", cursor, it.entry.Platform.DisplayName(), it.entry.ProblemNumber,
				status, it.entry.Timestamp.Local().Format("2006-01-02"), it.entry.FilePath))
		}
	}
	if m.msg != "" {
		b.WriteString("\n" + m.msg + "\n")
	}
	return b.String()
}

func (m browseModel) selected() (browseItem, bool) {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return browseItem{}, false
	}
	return m.items[m.cursor], true
}

func blankAsAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

func nextPlatform(v string) string {
	order := []string{""}
	for _, p := range platform.All() {
		order = append(order, string(p))
	}
	return cycle(order, v)
}

func nextStatus(v string) string {
	return cycle([]string{"", "unsolved", "solved"}, v)
}

func cycle(order []string, v string) string {
	for i := range order {
		if order[i] == v {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}
