// Package project finds the kps project enclosing a directory.
package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kps/internal/kpserr"
)

const (
	MarkerDir   = ".kps"
	ConfigFile  = "config.json"
	HistoryFile = "history.json"

	gitMarker = ".git"
)

// Root is a directory known to contain .kps/config.json.
type Root struct {
	Dir string
}

func (r Root) MarkerDir() string   { return filepath.Join(r.Dir, MarkerDir) }
func (r Root) ConfigPath() string  { return filepath.Join(r.Dir, MarkerDir, ConfigFile) }
func (r Root) HistoryPath() string { return filepath.Join(r.Dir, MarkerDir, HistoryFile) }

// Rel returns path relative to the root, slash-separated.
func (r Root) Rel(path string) (string, error) {
	rel, err := filepath.Rel(r.Dir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Abs joins a root-relative, slash-separated path onto the root.
func (r Root) Abs(rel string) string {
	return filepath.Join(r.Dir, filepath.FromSlash(rel))
}

// Locate walks from start up to the filesystem root and returns the nearest
// directory holding .kps/config.json. An empty start means the working
// directory. When nothing is found the error is
// kpserr.ErrConfigNotFoundInRepository if any visited directory had a .git
// entry, kpserr.ErrConfigNotFound otherwise.
func Locate(start string) (Root, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Root{}, fmt.Errorf("resolve working directory: %w", err)
		}
		start = wd
	}
	cur, err := filepath.Abs(start)
	if err != nil {
		return Root{}, fmt.Errorf("resolve %s: %w", start, err)
	}

	sawGit := false
	for {
		if exists(filepath.Join(cur, MarkerDir, ConfigFile)) {
			slog.Debug("project root located", "root", cur, "start", start)
			return Root{Dir: cur}, nil
		}
		if exists(filepath.Join(cur, gitMarker)) {
			sawGit = true
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	if sawGit {
		return Root{}, kpserr.ErrConfigNotFoundInRepository
	}
	return Root{}, kpserr.ErrConfigNotFound
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
