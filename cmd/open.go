package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"kps/internal/console"
	"kps/internal/history"
	"kps/internal/kpserr"
	"kps/internal/workspace"
)

var (
	openPlatform platformFlags
	openEditor   bool
)

// Launchers, replaced in tests.
var (
	openWithIDE  = workspace.OpenWithIDE
	openDefault  = workspace.OpenDefault
	openInEditor = workspace.OpenInEditor
)

var openCmd = &cobra.Command{
	Use:   "open [number]",
	Short: "Open a solution file, or the most recently created one",
	Example: `  kps open
  kps open 1000 -b
  kps open 1000 -b --editor`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path, err = searchProblemFile(a, args[0])
		} else {
			path, err = recentFile(a)
		}
		if err != nil {
			return err
		}

		if openEditor {
			if err := openInEditor(path); err != nil {
				return kpserr.OpenFailed(err.Error())
			}
		} else if err := launch(context.Background(), a, path); err != nil {
			return err
		}
		console.Success("Opened: " + path)
		return nil
	},
}

func searchProblemFile(a *app, number string) (string, error) {
	p, err := openPlatform.problem(number)
	if err != nil {
		return "", err
	}
	m, err := workspace.FindBySearch(workspace.PlatformDir(a.root.Dir, a.cfg, p.Platform), p)
	if err != nil {
		return "", err
	}
	if m.Ambiguous() {
		console.Warning("Multiple files found for " + p.Number + ":")
		for _, c := range m.Candidates {
			console.Warning("  • " + c)
		}
		console.Info("Using first match: "+m.Path, "")
	}
	return m.Path, nil
}

func recentFile(a *app) (string, error) {
	log, err := history.Load(a.root.HistoryPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", kpserr.ErrNoRecentFile
	}
	if err != nil {
		return "", err
	}
	e, ok := log.MostRecent()
	if !ok {
		return "", kpserr.ErrNoRecentFile
	}
	path := a.root.Abs(e.FilePath)
	if _, err := os.Stat(path); err != nil {
		return "", kpserr.FileDeleted(path)
	}
	return path, nil
}

// launch opens path inside the configured Xcode project, falling back to the
// system opener when there is no project or xed is missing.
func launch(ctx context.Context, a *app, path string) error {
	if a.cfg.IDEProjectPath == "" {
		return openDefault(ctx, path)
	}
	proj := a.root.Abs(a.cfg.IDEProjectPath)
	if !exists(proj) {
		console.Warning("Xcode project not found: " + a.cfg.IDEProjectPath)
		console.Info("Falling back to default editor...", "")
		return openDefault(ctx, path)
	}
	err := openWithIDE(ctx, proj, path)
	if errors.Is(err, workspace.ErrIDEUnavailable) {
		console.Warning("xed not available. Install Xcode Command Line Tools.")
		console.Info("Falling back to default editor...", "")
		return openDefault(ctx, path)
	}
	return err
}

func init() {
	openPlatform.register(openCmd)
	openCmd.Flags().BoolVar(&openEditor, "editor", false, "open in $EDITOR instead of Xcode or the system opener")
}
