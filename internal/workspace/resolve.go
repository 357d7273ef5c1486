// Package workspace computes, creates and finds solution files inside a
// project and opens them in an editor.
package workspace

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"kps/internal/config"
	"kps/internal/kpserr"
	"kps/internal/platform"
)

// ProblemPath is the canonical location of p's solution file.
func ProblemPath(root string, cfg config.Config, p platform.Problem) string {
	return p.FilePath(root, cfg.SourceFolder)
}

// PlatformDir is the folder holding every solution for p's platform.
func PlatformDir(root string, cfg config.Config, p platform.Platform) string {
	return filepath.Join(root, cfg.SourceFolder, p.FolderName())
}

// Match is the result of FindBySearch. Candidates lists every matching file
// in lexical order; Path is the first of them.
type Match struct {
	Path       string
	Candidates []string
}

func (m Match) Ambiguous() bool { return len(m.Candidates) > 1 }

// FindBySearch walks platformDir for files named like p's solution file,
// at any depth. Several matches are not an error: the lexically first one is
// used and the caller is expected to warn about the rest.
func FindBySearch(platformDir string, p platform.Problem) (Match, error) {
	expected := filepath.Join(platformDir, p.FileName())
	if _, err := os.Stat(platformDir); err != nil {
		return Match{}, kpserr.NotFound(expected)
	}

	var matches []string
	err := filepath.WalkDir(platformDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && d.Name() == p.FileName() {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return Match{}, kpserr.FromOS(err)
	}
	if len(matches) == 0 {
		return Match{}, kpserr.NotFound(expected)
	}

	sort.Strings(matches)
	m := Match{Path: matches[0], Candidates: matches}
	if m.Ambiguous() {
		slog.Debug("multiple solution files found, using first", "problem", p.Number, "chosen", m.Path, "candidates", matches)
	}
	return m, nil
}

// FindAmongCandidates picks p's solution file out of root-relative paths
// reported by another tool, such as git status. A candidate matches when
// its file name is p's file name and one of its directories is the
// platform folder. Ambiguity is an error here: kpserr.FileMultipleFound
// carries the matching candidates.
func FindAmongCandidates(candidates []string, p platform.Problem, root string, cfg config.Config) (string, error) {
	var matches []string
	for _, c := range candidates {
		if candidateMatches(c, p) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return "", kpserr.NotFound(ProblemPath(root, cfg, p))
	case 1:
		return filepath.Join(root, filepath.FromSlash(matches[0])), nil
	}
	return "", kpserr.MultipleFound(matches)
}

func candidateMatches(candidate string, p platform.Problem) bool {
	segs := strings.Split(filepath.ToSlash(candidate), "/")
	if segs[len(segs)-1] != p.FileName() {
		return false
	}
	for _, s := range segs[:len(segs)-1] {
		if s == p.Platform.FolderName() {
			return true
		}
	}
	return false
}
