package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"kps/internal/config"
	"kps/internal/kpserr"
	"kps/internal/platform"
)

// DateLayout renders dates as yyyy/M/d.
const DateLayout = "2006/1/2"

// RenderSolution returns the initial content of p's solution file.
func RenderSolution(p platform.Problem, cfg config.Config, now time.Time) string {
	return fmt.Sprintf(`//
//  %s
//  %s
//
//  Created by %s on %s.
//  %s
//

import Foundation

func %s() {

}
`, p.FileName(), cfg.ProjectName, cfg.Author, now.Format(DateLayout), p.URL(), p.FunctionName())
}

// CreateSolution writes content to path, creating parent directories. An
// existing file is never overwritten.
func CreateSolution(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return kpserr.FromOS(err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return kpserr.AlreadyExists(path)
		}
		return kpserr.FromOS(err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return kpserr.FromOS(err)
	}
	if err := f.Close(); err != nil {
		return kpserr.FromOS(err)
	}
	return nil
}

// FindIDEProject returns the name of the first *.xcodeproj entry in dir, or
// "" when there is none.
func FindIDEProject(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".xcodeproj" {
			return e.Name()
		}
	}
	return ""
}
