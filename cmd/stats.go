package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kps/internal/console"
	"kps/internal/history"
	"kps/internal/platform"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and activity statistics from the history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		log, err := a.history()
		if err != nil {
			return err
		}
		st := log.Summarize(now())

		out := console.Stdout()
		if statsJSON {
			b, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		renderStats(out, a.cfg.ProjectName, st)
		return nil
	},
}

func renderStats(w io.Writer, projectName string, st history.Stats) {
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	momentum := st.CreatedLast7d - st.CreatedPrev7d
	momentumText := fmt.Sprintf("+%d vs previous 7d", momentum)
	if momentum < 0 {
		momentumText = fmt.Sprintf("%d vs previous 7d", momentum)
	}

	bullet := green.Render("+")
	fmt.Fprintln(w, cyan.Render(projectName))
	fmt.Fprintln(w, subtle.Render(strings.Repeat("─", max(len(projectName), 12))))
	fmt.Fprintf(w, "%s solved: %d / %d\n", bullet, st.Solved, st.Total)
	for _, p := range platform.All() {
		ps := st.ByPlatform[p]
		fmt.Fprintf(w, "%s %s: %d created, %d solved\n", bullet, p.DisplayName(), ps.Created, ps.Solved)
	}
	fmt.Fprintf(w, "%s created in last 7d: %d\n", bullet, st.CreatedLast7d)
	fmt.Fprintf(w, "%s momentum: %s\n", bullet, green.Render(momentumText))

	fmt.Fprintln(w, "\nRecent activity:")
	if len(st.RecentActivity) == 0 {
		fmt.Fprintln(w, "  (none yet)")
		return
	}
	for _, e := range st.RecentActivity {
		mark := " "
		if e.Solved {
			mark = green.Render("✔")
		}
		fmt.Fprintf(w, "  %s %s %-11s %s\n", subtle.Render(e.Timestamp.Local().Format("2006-01-02 15:04")), mark, e.Platform.DisplayName(), e.ProblemNumber)
	}
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output machine-readable JSON")
}
