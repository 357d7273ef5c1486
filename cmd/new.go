package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kps/internal/console"
	"kps/internal/history"
	"kps/internal/kpserr"
	"kps/internal/platform"
	"kps/internal/workspace"
)

var newPlatform platformFlags

var newCmd = &cobra.Command{
	Use:   "new <url|number>",
	Short: "Create a solution file from a problem URL or number",
	Example: `  kps new https://acmicpc.net/problem/1000
  kps new 1000 -b
  kps new 340207 -p`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parseProblemInput(strings.TrimSpace(args[0]), newPlatform)
		if err != nil {
			return err
		}
		a, err := loadApp()
		if err != nil {
			return err
		}

		path := a.problemPath(p)
		if err := workspace.CreateSolution(path, workspace.RenderSolution(p, a.cfg, now())); err != nil {
			return err
		}
		if err := recordCreated(a, p, path); err != nil {
			warn("History not updated", err)
		}

		console.Success("File created!")
		console.Info("File: "+path, "📦")
		console.Info("URL: "+p.URL(), "🔗")
		console.Info(fmt.Sprintf("Next: solve with 'kps solve %s %s'", p.Number, p.Platform.Flag()), "💡")
		return nil
	},
}

// parseProblemInput reads a URL, whose platform must not also be flagged, or
// a number qualified by exactly one platform flag.
func parseProblemInput(input string, flags platformFlags) (platform.Problem, error) {
	if platform.LooksLikeURL(input) {
		if flags.set() {
			return platform.Problem{}, kpserr.ErrURLWithPlatformFlag
		}
		return platform.ParseURL(input)
	}
	return flags.problem(input)
}

func recordCreated(a *app, p platform.Problem, path string) error {
	rel, err := a.root.Rel(path)
	if err != nil {
		return err
	}
	log, err := a.history()
	if err != nil {
		return err
	}
	return a.saveHistory(log.Append(history.NewEntry(p, rel, now())))
}

func init() {
	newPlatform.register(newCmd)
}
