package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"kps/internal/console"
	"kps/internal/git"
	"kps/internal/platform"
	"kps/internal/workspace"
)

var (
	solvePlatform platformFlags
	solveNoPush   bool
	solveMessage  string
)

var solveCmd = &cobra.Command{
	Use:   "solve <number>",
	Short: "Commit and push a solved problem",
	Example: `  kps solve 1000 -b
  kps solve 340207 -p --no-push
  kps solve 1000 -b -m "solve: BOJ 1000 with two pointers"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := solvePlatform.problem(args[0])
		if err != nil {
			return err
		}
		a, err := loadApp()
		if err != nil {
			return err
		}

		ctx := context.Background()
		g := git.New(a.root.Dir)
		if err := g.Preflight(ctx); err != nil {
			return err
		}
		path, err := locateSolved(ctx, a, g, p)
		if err != nil {
			return err
		}
		rel, err := a.root.Rel(path)
		if err != nil {
			return err
		}

		console.Info("Adding file to git...", "📦")
		if err := g.Add(ctx, rel); err != nil {
			return err
		}
		msg := solveMessage
		if msg == "" {
			msg = commitMessage(p)
		}
		console.Info("Committing changes...", "💾")
		hash, err := g.Commit(ctx, msg)
		if err != nil {
			return err
		}
		console.Info("Commit: "+hash, "")

		if err := markSolved(a, p); err != nil {
			warn("History not updated", err)
		}

		if solveNoPush {
			console.Success("Done! (push skipped)")
			return nil
		}
		console.Info("Pushing to remote...", "🚀")
		if err := g.Push(ctx); err != nil {
			printPushGuidance()
			return err
		}
		console.Success("Done!")
		return nil
	},
}

// locateSolved prefers the canonical path and otherwise looks for the file
// among git's modified and untracked files, which covers solutions moved
// into subfolders.
func locateSolved(ctx context.Context, a *app, g *git.Executor, p platform.Problem) (string, error) {
	if path := a.problemPath(p); exists(path) {
		return path, nil
	}
	files, err := g.ModifiedFiles(ctx)
	if err != nil {
		return "", err
	}
	return workspace.FindAmongCandidates(files, p, a.root.Dir, a.cfg)
}

func commitMessage(p platform.Problem) string {
	return fmt.Sprintf("solve: [%s] %s", p.Platform.DisplayName(), p.Number)
}

func markSolved(a *app, p platform.Problem) error {
	log, err := a.history()
	if err != nil {
		return err
	}
	if _, ok := log.Find(p.Number, p.Platform); !ok {
		slog.Debug("no history entry to mark solved", "problem", p.Number, "platform", p.Platform)
		return nil
	}
	return a.saveHistory(log.MarkSolved(p.Number, p.Platform))
}

func printPushGuidance() {
	console.Warning("Commit succeeded, but push failed.")
	console.Warning("Possible causes:")
	console.Warning("  • No remote configured: run 'git remote -v'")
	console.Warning("  • Authentication issue: check your credentials or SSH key")
	console.Warning("To complete: run 'git push' manually")
}

func init() {
	solvePlatform.register(solveCmd)
	solveCmd.Flags().BoolVar(&solveNoPush, "no-push", false, "commit without pushing")
	solveCmd.Flags().StringVarP(&solveMessage, "message", "m", "", "commit message (default \"solve: [Platform] <number>\")")
}
