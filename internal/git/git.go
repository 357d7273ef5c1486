// Package git runs the git command line tool inside a project.
package git

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"kps/internal/kpserr"
)

// result is what a finished git invocation reports back.
type result struct {
	output   string
	exitCode int
}

type runFunc func(ctx context.Context, dir string, args ...string) (result, error)

// Executor runs git with the project root as working directory.
type Executor struct {
	root string
	run  runFunc
}

func New(root string) *Executor {
	return &Executor{root: root, run: runGit}
}

// runGit returns a non-nil error only when git could not be started. A git
// process that ran and failed reports its exit code in result.
func runGit(ctx context.Context, dir string, args ...string) (result, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "LANG=C", "LC_ALL=C")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	slog.Debug("running git", "args", args, "dir", dir)

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result{output: out.String()}, nil
	case errors.As(err, &exitErr):
		return result{output: out.String(), exitCode: exitErr.ExitCode()}, nil
	}
	return result{}, err
}

func (e *Executor) git(ctx context.Context, args ...string) (result, error) {
	res, err := e.run(ctx, e.root, args...)
	if err != nil {
		return res, err
	}
	if res.exitCode != 0 {
		slog.Debug("git failed", "args", args, "exit", res.exitCode, "output", strings.TrimSpace(res.output))
	}
	return res, nil
}

// Preflight checks that git is installed and that the root is inside a work
// tree.
func (e *Executor) Preflight(ctx context.Context) error {
	res, err := e.git(ctx, "--version")
	if err != nil || res.exitCode != 0 {
		return kpserr.ErrGitToolNotAvailable
	}
	res, err = e.git(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil || res.exitCode != 0 || strings.TrimSpace(res.output) != "true" {
		return kpserr.ErrGitNotARepository
	}
	return nil
}

// Add stages file.
func (e *Executor) Add(ctx context.Context, file string) error {
	res, err := e.git(ctx, "add", "--", file)
	if err != nil {
		return kpserr.CommandFailed(err.Error())
	}
	if res.exitCode != 0 {
		return kpserr.CommandFailed(strings.TrimSpace(res.output))
	}
	return nil
}

// Commit records the staged changes and returns the short hash of the new
// commit.
func (e *Executor) Commit(ctx context.Context, message string) (string, error) {
	res, err := e.git(ctx, "commit", "-m", message)
	if err != nil {
		return "", kpserr.CommandFailed(err.Error())
	}
	if res.exitCode != 0 {
		if looksLikeNothingToCommit(res.output) && e.indexClean(ctx) {
			return "", kpserr.ErrGitNothingToCommit
		}
		return "", kpserr.CommandFailed(strings.TrimSpace(res.output))
	}

	res, err = e.git(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", kpserr.CommandFailed(err.Error())
	}
	if res.exitCode != 0 {
		return "", kpserr.CommandFailed(strings.TrimSpace(res.output))
	}
	return strings.TrimSpace(res.output), nil
}

func looksLikeNothingToCommit(output string) bool {
	return strings.Contains(output, "nothing to commit") || strings.Contains(output, "nothing added to commit")
}

// indexClean reports whether nothing is staged.
func (e *Executor) indexClean(ctx context.Context) bool {
	res, err := e.git(ctx, "diff", "--cached", "--quiet")
	return err == nil && res.exitCode == 0
}

// Push pushes the current branch to its upstream.
func (e *Executor) Push(ctx context.Context) error {
	res, err := e.git(ctx, "push")
	if err != nil {
		return kpserr.PushFailed(err.Error())
	}
	if res.exitCode != 0 {
		return kpserr.PushFailed(strings.TrimSpace(res.output))
	}
	return nil
}

// ModifiedFiles lists paths that are modified, staged or untracked below the
// executor's root, relative to that root. Renamed entries report their new
// path. Changes elsewhere in an enclosing repository are left out.
func (e *Executor) ModifiedFiles(ctx context.Context) ([]string, error) {
	prefix, err := e.prefix(ctx)
	if err != nil {
		return nil, err
	}
	res, err := e.git(ctx, "status", "--porcelain", "-z", "--untracked-files=all")
	if err != nil {
		return nil, kpserr.CommandFailed(err.Error())
	}
	if res.exitCode != 0 {
		return nil, kpserr.CommandFailed(strings.TrimSpace(res.output))
	}
	return underPrefix(parsePorcelainZ(res.output), prefix), nil
}

// prefix is the root's path below the top-level directory, with a trailing
// slash, or "" at the top level. git status reports paths from the top level.
func (e *Executor) prefix(ctx context.Context) (string, error) {
	res, err := e.git(ctx, "rev-parse", "--show-prefix")
	if err != nil {
		return "", kpserr.CommandFailed(err.Error())
	}
	if res.exitCode != 0 {
		return "", kpserr.CommandFailed(strings.TrimSpace(res.output))
	}
	return strings.TrimSpace(res.output), nil
}

func underPrefix(files []string, prefix string) []string {
	if prefix == "" {
		return files
	}
	var out []string
	for _, f := range files {
		if rel, ok := strings.CutPrefix(f, prefix); ok && rel != "" {
			out = append(out, rel)
		}
	}
	return out
}

// parsePorcelainZ reads `git status --porcelain -z` output. Each record is
// "XY path" terminated by NUL; renames and copies are followed by one more
// NUL-terminated field holding the source path.
func parsePorcelainZ(out string) []string {
	var files []string
	fields := strings.Split(out, "\x00")
	for i := 0; i < len(fields); i++ {
		rec := fields[i]
		if len(rec) < 4 {
			continue
		}
		status, path := rec[:2], rec[3:]
		files = append(files, path)
		if status[0] == 'R' || status[0] == 'C' || status[1] == 'R' || status[1] == 'C' {
			i++
		}
	}
	return files
}
