package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults are user-level fallbacks for `kps init`, read from
// $XDG_CONFIG_HOME/kps/config.yaml and KPS_* environment variables.
type Defaults struct {
	Author       string `mapstructure:"author"`
	SourceFolder string `mapstructure:"source_folder"`
}

func UserConfigPath() (string, error) {
	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		xdgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgHome, "kps", "config.yaml"), nil
}

func LoadDefaults() (Defaults, error) {
	path, err := UserConfigPath()
	if err != nil {
		return Defaults{}, err
	}

	v := viper.New()
	v.SetDefault("author", "")
	v.SetDefault("source_folder", DefaultSourceFolder)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Defaults{}, fmt.Errorf("read user config: %w", err)
		}
	}

	_ = v.BindEnv("author", "KPS_AUTHOR")
	_ = v.BindEnv("source_folder", "KPS_SOURCE_FOLDER")

	var out Defaults
	if err := v.Unmarshal(&out); err != nil {
		return Defaults{}, fmt.Errorf("unmarshal user config: %w", err)
	}
	return out, nil
}
