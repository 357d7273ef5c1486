package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kps/internal/config"
	"kps/internal/console"
)

var configCmd = &cobra.Command{
	Use:   "config [key [value]]",
	Short: "Show or change project settings",
	Long:  configHelp(),
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			for _, k := range config.Keys() {
				v := a.cfg.Value(k)
				if k.Optional() && v == "" {
					continue
				}
				console.Info(fmt.Sprintf("%s: %s", k, v), "")
			}
			return nil
		}

		key, err := config.ParseKey(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			console.Plain(a.cfg.Value(key))
			return nil
		}

		value := args[1]
		if value == "" && !key.Optional() {
			return fmt.Errorf("%s cannot be empty", key)
		}
		a.cfg.SetValue(key, value)
		if err := config.Save(a.cfg, a.root.ConfigPath()); err != nil {
			return err
		}
		console.Success("Config updated!")
		console.Info(fmt.Sprintf("%s: %s", key, value), "")
		return nil
	},
}

func configHelp() string {
	var b strings.Builder
	b.WriteString("Without arguments, list every setting. With a key, print its value.\n")
	b.WriteString("With a key and a value, update the setting.\n\nKeys:\n")
	for _, k := range config.Keys() {
		fmt.Fprintf(&b, "  %-15s %s\n", k, k.Description())
	}
	return strings.TrimRight(b.String(), "\n")
}
