// Package config reads and writes the per-project settings file and the
// optional user-level defaults used when a project is initialized.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/viper"

	"kps/internal/kpserr"
)

const DefaultSourceFolder = "Sources"

// Config is the project settings record stored in .kps/config.json.
// Fields are declared in key order so the encoded file has sorted keys.
type Config struct {
	Author         string `json:"author" mapstructure:"author"`
	IDEProjectPath string `json:"ideProjectPath,omitempty" mapstructure:"ideProjectPath"`
	ProjectName    string `json:"projectName" mapstructure:"projectName"`
	SourceFolder   string `json:"sourceFolder" mapstructure:"sourceFolder"`
}

var requiredKeys = []Key{KeyAuthor, KeyProjectName}

// Load reads the config file at path. Malformed content and missing required
// keys are reported as kpserr.ConfigParseError; filesystem failures keep
// their own codes (NotFound, PermissionDenied, IOError).
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, kpserr.FromOS(err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(string(KeySourceFolder), DefaultSourceFolder)
	if err := v.ReadConfig(bytes.NewReader(b)); err != nil {
		var perr viper.ConfigParseError
		if errors.As(err, &perr) {
			return Config{}, kpserr.ParseError(perr.Error())
		}
		return Config{}, kpserr.ParseError(err.Error())
	}

	// viper folds key case; required keys must appear spelled exactly.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return Config{}, kpserr.ParseError(err.Error())
	}
	for _, k := range requiredKeys {
		if _, ok := raw[string(k)]; !ok {
			return Config{}, kpserr.ParseError(fmt.Sprintf("missing required key %q", k))
		}
	}

	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return Config{}, kpserr.ParseError(err.Error())
	}
	if out.SourceFolder == "" {
		out.SourceFolder = DefaultSourceFolder
	}
	return out, nil
}

// Save replaces the file at path with cfg in a single atomic rename.
func Save(cfg Config, path string) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return kpserr.IOError(fmt.Errorf("encode config: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return kpserr.FromOS(err)
	}
	if err := renameio.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return kpserr.FromOS(err)
	}
	slog.Debug("config saved", "path", path)
	return nil
}

// Value returns the field named by k. An unset optional field reads as "".
func (c Config) Value(k Key) string {
	switch k {
	case KeyAuthor:
		return c.Author
	case KeySourceFolder:
		return c.SourceFolder
	case KeyProjectName:
		return c.ProjectName
	case KeyIDEProjectPath:
		return c.IDEProjectPath
	}
	return ""
}

// SetValue writes the field named by k. Setting ideProjectPath to "" clears it.
func (c *Config) SetValue(k Key, value string) {
	switch k {
	case KeyAuthor:
		c.Author = value
	case KeySourceFolder:
		c.SourceFolder = value
	case KeyProjectName:
		c.ProjectName = value
	case KeyIDEProjectPath:
		c.IDEProjectPath = value
	}
}
