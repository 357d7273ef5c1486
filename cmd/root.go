package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kps/internal/console"
)

var verbose bool

// now is replaced in tests.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "kps",
	Short: "Track BOJ and Programmers practice in a git repository",
	Long: `kps scaffolds solution files for BOJ and Programmers problems, keeps a
history of what you created and commits each solved problem to git.

Quick start:
  kps init -a "Your Name"
  kps new https://acmicpc.net/problem/1000
  kps open
  kps solve 1000 -b`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		console.Error(err.Error())
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print diagnostic logs to stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(browseCmd)
}
