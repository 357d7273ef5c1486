package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kps/internal/history"
	"kps/internal/kpserr"
	"kps/internal/platform"
)

func TestNew_EndToEnd(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runKPS(t, "new", "1000", "-b")
	require.NoError(t, err)
	assert.Contains(t, stdout, "File created!")
	assert.Contains(t, stdout, "https://acmicpc.net/problem/1000")
	assert.Contains(t, stdout, "kps solve 1000 -b")

	path := filepath.Join(dir, "Sources", "BOJ", "1000.swift")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "func _1000()")
	assert.Contains(t, string(b), "Created by A on 2026/3/1.")

	l := loadHistory(t, dir)
	require.Equal(t, 1, l.Len())
	e := l.Entries[0]
	assert.Equal(t, "Sources/BOJ/1000.swift", e.FilePath)
	assert.Equal(t, platform.BOJ, e.Platform)
	assert.Equal(t, "1000", e.ProblemNumber)
	assert.False(t, e.Solved)
	assert.True(t, fixedNow.Equal(e.Timestamp))

	histPath := filepath.Join(dir, ".kps", "history.json")
	require.NoError(t, history.Save(l.MarkSolved("1000", platform.BOJ), histPath))
	reloaded := loadHistory(t, dir)
	assert.True(t, reloaded.Entries[0].Solved)
}

func TestNew_FromURL(t *testing.T) {
	dir := newProject(t)

	_, _, err := runKPS(t, "new", "https://school.programmers.co.kr/learn/courses/30/lessons/340207")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Sources", "Programmers", "340207.swift"))

	e, ok := loadHistory(t, dir).MostRecent()
	require.True(t, ok)
	assert.Equal(t, platform.Programmers, e.Platform)
}

func TestNew_InputErrors(t *testing.T) {
	newProject(t)

	for name, tc := range map[string]struct {
		args []string
		want error
	}{
		"url with flag":       {[]string{"new", "https://acmicpc.net/problem/1000", "-b"}, kpserr.ErrURLWithPlatformFlag},
		"number without flag": {[]string{"new", "1000"}, kpserr.ErrPlatformRequired},
		"both flags":          {[]string{"new", "1000", "-b", "-p"}, kpserr.ErrConflictingFlags},
		"unsupported url":     {[]string{"new", "https://leetcode.com/problems/two-sum"}, kpserr.ErrUnsupportedURL},
		"bad number":          {[]string{"new", "abc", "-b"}, kpserr.ErrInvalidProblemNumber},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := runKPS(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_ExistingFileIsNotOverwritten(t *testing.T) {
	dir := newProject(t)
	_, _, err := runKPS(t, "new", "1000", "-b")
	require.NoError(t, err)

	_, _, err = runKPS(t, "new", "https://www.acmicpc.net/problem/1000")
	var kerr *kpserr.Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, kpserr.FileAlreadyExists, kerr.Code)
	assert.Equal(t, 1, loadHistory(t, dir).Len())
}

func TestNew_HistoryFailureIsAWarning(t *testing.T) {
	dir := newProject(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".kps", "history.json"), 0o755))

	_, stderr, err := runKPS(t, "new", "1000", "-b")
	require.NoError(t, err)
	assert.Contains(t, stderr, "History not updated")
	assert.FileExists(t, filepath.Join(dir, "Sources", "BOJ", "1000.swift"))
}

func TestNew_OutsideProject(t *testing.T) {
	newWorkdir(t)
	_, _, err := runKPS(t, "new", "1000", "-b")
	code, ok := kpserr.CodeOf(err)
	require.True(t, ok)
	assert.Contains(t, []kpserr.Code{kpserr.ConfigNotFound, kpserr.ConfigNotFoundInRepository}, code)
}

func TestNew_FromSubdirectory(t *testing.T) {
	dir := newProject(t)
	sub := filepath.Join(dir, "notes", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.Chdir(sub))

	_, _, err := runKPS(t, "new", "2557", "-b")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Sources", "BOJ", "2557.swift"))
}
