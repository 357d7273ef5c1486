package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"kps/internal/config"
	"kps/internal/console"
	"kps/internal/kpserr"
	"kps/internal/project"
	"kps/internal/workspace"
)

var (
	initAuthor string
	initSource string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the current directory as a kps project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		defaults, err := config.LoadDefaults()
		if err != nil {
			return err
		}

		author := strings.TrimSpace(initAuthor)
		if author == "" {
			author = defaults.Author
		}
		if author == "" {
			return fmt.Errorf("author is required: pass -a/--author or set KPS_AUTHOR")
		}
		source := strings.TrimSpace(initSource)
		if source == "" {
			source = defaults.SourceFolder
		}

		root := project.Root{Dir: wd}
		if exists(root.ConfigPath()) && !initForce {
			return kpserr.ErrConfigAlreadyExists
		}
		if err := os.MkdirAll(root.MarkerDir(), 0o755); err != nil {
			return kpserr.FromOS(err)
		}

		cfg := config.Config{
			Author:         author,
			SourceFolder:   source,
			ProjectName:    filepath.Base(wd),
			IDEProjectPath: workspace.FindIDEProject(wd),
		}
		if err := config.Save(cfg, root.ConfigPath()); err != nil {
			return err
		}

		console.Success("KPS initialized!")
		console.Info("Project: "+cfg.ProjectName, "")
		console.Info("Author: "+cfg.Author, "")
		console.Info("Source folder: "+cfg.SourceFolder, "")
		if cfg.IDEProjectPath != "" {
			console.Info("Detected Xcode project: "+cfg.IDEProjectPath, "🔍")
		}
		console.Info("Config saved to: "+filepath.Join(project.MarkerDir, project.ConfigFile), "💾")
		if !exists(filepath.Join(wd, ".git")) {
			console.Info("Hint: run 'git init' so 'kps solve' can commit your solutions", "💡")
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initAuthor, "author", "a", "", "author name written into file headers (default from KPS_AUTHOR)")
	initCmd.Flags().StringVarP(&initSource, "source", "s", "", "source folder for solutions (default Sources)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
}
