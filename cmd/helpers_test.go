package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kps/internal/console"
	"kps/internal/history"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func resetFlags() {
	verbose = false
	initAuthor, initSource, initForce = "", "", false
	newPlatform = platformFlags{}
	solvePlatform = platformFlags{}
	solveNoPush, solveMessage = false, ""
	openPlatform = platformFlags{}
	openEditor = false
	statsJSON = false
}

// runKPS executes the root command with args and captures console output.
func runKPS(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()
	var out, errOut bytes.Buffer
	restore := console.SetOutput(&out, &errOut)
	defer restore()
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// newWorkdir moves the test into an empty directory with no user defaults
// and returns the directory as the process sees it.
func newWorkdir(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KPS_AUTHOR", "")
	t.Setenv("KPS_SOURCE_FOLDER", "")

	prev := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = prev })

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cur, err := os.Getwd()
	require.NoError(t, err)
	return cur
}

// newProject is newWorkdir followed by `kps init -a A`.
func newProject(t *testing.T) string {
	t.Helper()
	dir := newWorkdir(t)
	_, _, err := runKPS(t, "init", "-a", "A")
	require.NoError(t, err)
	return dir
}

func loadHistory(t *testing.T, dir string) history.Log {
	t.Helper()
	l, err := history.Load(filepath.Join(dir, ".kps", "history.json"))
	require.NoError(t, err)
	return l
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func gitIn(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

func initGitRepo(t *testing.T, dir string) {
	t.Helper()
	gitIn(t, dir, "init", "-q")
	gitIn(t, dir, "config", "user.email", "test@example.com")
	gitIn(t, dir, "config", "user.name", "Test")
	gitIn(t, dir, "config", "commit.gpgsign", "false")
}
