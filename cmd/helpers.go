package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"kps/internal/config"
	"kps/internal/console"
	"kps/internal/history"
	"kps/internal/platform"
	"kps/internal/project"
	"kps/internal/workspace"
)

// app is the located project and its configuration.
type app struct {
	root project.Root
	cfg  config.Config
}

func loadApp() (*app, error) {
	root, err := project.Locate("")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root.ConfigPath())
	if err != nil {
		return nil, err
	}
	return &app{root: root, cfg: cfg}, nil
}

func (a *app) problemPath(p platform.Problem) string {
	return workspace.ProblemPath(a.root.Dir, a.cfg, p)
}

func (a *app) history() (history.Log, error) {
	return history.LoadOrEmpty(a.root.HistoryPath())
}

func (a *app) saveHistory(l history.Log) error {
	return history.Save(l, a.root.HistoryPath())
}

// platformFlags is the -b/-p pair shared by new, solve and open.
type platformFlags struct {
	boj         bool
	programmers bool
}

func (f *platformFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.boj, "boj", "b", false, "BOJ problem")
	cmd.Flags().BoolVarP(&f.programmers, "programmers", "p", false, "Programmers problem")
}

func (f platformFlags) set() bool { return f.boj || f.programmers }

func (f platformFlags) platform() (platform.Platform, error) {
	return platform.FromFlags(f.boj, f.programmers)
}

// problem builds the problem named by a typed number and the platform flags.
func (f platformFlags) problem(number string) (platform.Problem, error) {
	pl, err := f.platform()
	if err != nil {
		return platform.Problem{}, err
	}
	if err := platform.ValidateNumber(number); err != nil {
		return platform.Problem{}, err
	}
	return platform.NewProblem(pl, number), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// warn reports a failure that does not abort the command.
func warn(what string, err error) {
	console.Warning(what + ": " + err.Error())
}
