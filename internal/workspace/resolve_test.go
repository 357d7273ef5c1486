package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kps/internal/config"
	"kps/internal/kpserr"
	"kps/internal/platform"
)

var testConfig = config.Config{Author: "TestAuthor", SourceFolder: "Sources", ProjectName: "TestProject"}

func touch(t *testing.T, root string, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("test"), 0o644))
	return path
}

func TestProblemPath(t *testing.T) {
	p := platform.NewProblem(platform.BOJ, "1000")
	assert.Equal(t, filepath.Join("/root", "Sources", "BOJ", "1000.swift"), ProblemPath("/root", testConfig, p))
	assert.Equal(t, filepath.Join("/root", "Sources", "Programmers"), PlatformDir("/root", testConfig, platform.Programmers))
}

func TestFindAmongCandidates_SingleMatch(t *testing.T) {
	root := t.TempDir()
	p := platform.NewProblem(platform.BOJ, "1000")

	got, err := FindAmongCandidates([]string{"README.md", "Sources/BOJ/DP/1000.swift"}, p, root, testConfig)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Sources", "BOJ", "DP", "1000.swift"), got)
}

func TestFindAmongCandidates_Nested(t *testing.T) {
	root := t.TempDir()
	p := platform.NewProblem(platform.Programmers, "340207")

	got, err := FindAmongCandidates([]string{"Sources/Programmers/Level2/Hash/340207.swift"}, p, root, testConfig)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Sources", "Programmers", "Level2", "Hash", "340207.swift"), got)
}

func TestFindAmongCandidates_MultipleReturnsMatchingSubset(t *testing.T) {
	root := t.TempDir()
	p := platform.NewProblem(platform.BOJ, "1000")
	candidates := []string{
		"Sources/BOJ/1000.swift",
		"Sources/Programmers/1000.swift",
		"Sources/BOJ/DP/1000.swift",
		"Sources/BOJ/1001.swift",
	}

	_, err := FindAmongCandidates(candidates, p, root, testConfig)
	var kerr *kpserr.Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, kpserr.FileMultipleFound, kerr.Code)
	assert.Equal(t, []string{"Sources/BOJ/1000.swift", "Sources/BOJ/DP/1000.swift"}, kerr.Paths)
}

func TestFindAmongCandidates_NoMatchNamesCanonicalPath(t *testing.T) {
	root := t.TempDir()
	p := platform.NewProblem(platform.BOJ, "1000")

	for name, candidates := range map[string][]string{
		"other number":    {"Sources/BOJ/2000.swift"},
		"other platform":  {"Sources/Programmers/1000.swift"},
		"other extension": {"Sources/BOJ/1000.txt", "Sources/BOJ/1000.md"},
		"suffix only":     {"Sources/BOJ/11000.swift"},
		"folder as file":  {"BOJ.swift", "1000.swift"},
		"empty":           nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FindAmongCandidates(candidates, p, root, testConfig)
			var kerr *kpserr.Error
			require.ErrorAs(t, err, &kerr)
			assert.Equal(t, kpserr.FileNotFound, kerr.Code)
			assert.Equal(t, ProblemPath(root, testConfig, p), kerr.Path)
		})
	}
}

func TestFindBySearch_Single(t *testing.T) {
	root := t.TempDir()
	want := touch(t, root, "Sources/BOJ/Greedy/1000.swift")
	touch(t, root, "Sources/BOJ/1001.swift")

	m, err := FindBySearch(PlatformDir(root, testConfig, platform.BOJ), platform.NewProblem(platform.BOJ, "1000"))
	require.NoError(t, err)
	assert.Equal(t, want, m.Path)
	assert.False(t, m.Ambiguous())
}

func TestFindBySearch_MultiplePicksLexicalFirst(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Sources/BOJ/Graph/1000.swift")
	first := touch(t, root, "Sources/BOJ/1000.swift")
	touch(t, root, "Sources/BOJ/DP/1000.swift")

	m, err := FindBySearch(PlatformDir(root, testConfig, platform.BOJ), platform.NewProblem(platform.BOJ, "1000"))
	require.NoError(t, err)
	assert.Equal(t, first, m.Path)
	assert.True(t, m.Ambiguous())
	assert.Len(t, m.Candidates, 3)
	assert.IsIncreasing(t, m.Candidates)
}

func TestFindBySearch_IgnoresDirectoriesAndSuffixes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Sources", "BOJ", "1000.swift"), 0o755))
	touch(t, root, "Sources/BOJ/11000.swift")

	dir := PlatformDir(root, testConfig, platform.BOJ)
	_, err := FindBySearch(dir, platform.NewProblem(platform.BOJ, "1000"))
	var kerr *kpserr.Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, kpserr.FileNotFound, kerr.Code)
	assert.Equal(t, filepath.Join(dir, "1000.swift"), kerr.Path)
}

func TestFindBySearch_MissingPlatformDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Sources", "BOJ")
	_, err := FindBySearch(dir, platform.NewProblem(platform.BOJ, "1000"))
	var kerr *kpserr.Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, kpserr.FileNotFound, kerr.Code)
}
