// Package kpserr defines the closed set of errors kps reports to the user.
//
// Every error is an *Error carrying a Code. Codes are grouped by Category and
// some carry a payload (a path, a list of paths, raw tool output). errors.Is
// compares by Code, so the package-level sentinels can be used as targets
// regardless of payload.
package kpserr

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

type Category int

const (
	CategoryConfig Category = iota
	CategoryGit
	CategoryFile
	CategoryPlatform
	CategoryHistory
	CategoryOpen
)

func (c Category) String() string {
	switch c {
	case CategoryConfig:
		return "config"
	case CategoryGit:
		return "git"
	case CategoryFile:
		return "file"
	case CategoryPlatform:
		return "platform"
	case CategoryHistory:
		return "history"
	case CategoryOpen:
		return "open"
	}
	return "unknown"
}

type Code int

const (
	ConfigNotFound Code = iota
	ConfigNotFoundInRepository
	ConfigParseError
	ConfigAlreadyExists
	ConfigInvalidKey

	GitToolNotAvailable
	GitNotARepository
	GitNothingToCommit
	GitCommandFailed
	GitPushFailed

	FileAlreadyExists
	FileNotFound
	FileMultipleFound
	FilePermissionDenied
	FileIOError

	UnsupportedURL
	InvalidProblemNumber
	PlatformRequired
	ConflictingFlags
	URLWithPlatformFlag

	NoRecentFile
	RecentFileDeleted

	OpenCommandFailed
)

func (c Code) Category() Category {
	switch c {
	case ConfigNotFound, ConfigNotFoundInRepository, ConfigParseError, ConfigAlreadyExists, ConfigInvalidKey:
		return CategoryConfig
	case GitToolNotAvailable, GitNotARepository, GitNothingToCommit, GitCommandFailed, GitPushFailed:
		return CategoryGit
	case FileAlreadyExists, FileNotFound, FileMultipleFound, FilePermissionDenied, FileIOError:
		return CategoryFile
	case UnsupportedURL, InvalidProblemNumber, PlatformRequired, ConflictingFlags, URLWithPlatformFlag:
		return CategoryPlatform
	case NoRecentFile, RecentFileDeleted:
		return CategoryHistory
	case OpenCommandFailed:
		return CategoryOpen
	}
	return -1
}

// Error is the single error type of the taxonomy. Only the fields relevant to
// Code are populated.
type Error struct {
	Code   Code
	Path   string
	Paths  []string
	Detail string
	Err    error
}

func (e *Error) Category() Category { return e.Code.Category() }

func (e *Error) Error() string {
	switch e.Code {
	case ConfigNotFound:
		return "Config not found. Run 'kps init' first."
	case ConfigNotFoundInRepository:
		return "Config not found in git repository. Run 'kps init' to initialize KPS in this repository."
	case ConfigParseError:
		return "Failed to parse config.json: " + e.Detail
	case ConfigAlreadyExists:
		return "Config already exists. Use --force to overwrite."
	case ConfigInvalidKey:
		return fmt.Sprintf("Invalid config key: '%s'. Valid keys: %s", e.Detail, validKeys)

	case GitToolNotAvailable:
		return "Git is not installed or not in PATH. Install: https://git-scm.com/downloads"
	case GitNotARepository:
		return "Not a git repository. Run 'git init' first."
	case GitNothingToCommit:
		return "No changes to commit. Did you save your solution file?"
	case GitCommandFailed:
		return "Git command failed: " + e.Detail
	case GitPushFailed:
		return "Git push failed: " + e.Detail

	case FileAlreadyExists:
		return "File already exists: " + e.Path
	case FileNotFound:
		return "File not found: " + e.Path
	case FileMultipleFound:
		var b strings.Builder
		b.WriteString("Multiple files found:\n")
		for _, p := range e.Paths {
			b.WriteString("  • " + p + "\n")
		}
		b.WriteString("\nPlease remove or move duplicate files so only one remains.")
		return b.String()
	case FilePermissionDenied:
		return "Permission denied: " + e.Path
	case FileIOError:
		if e.Err == nil {
			return "File I/O error"
		}
		return "File I/O error: " + e.Err.Error()

	case UnsupportedURL:
		return "Unsupported URL. Supported: acmicpc.net, boj.kr, school.programmers.co.kr"
	case InvalidProblemNumber:
		return "Invalid problem number. Problem number must be a positive integer."
	case PlatformRequired:
		return "Platform not specified. Use -b for BOJ or -p for Programmers."
	case ConflictingFlags:
		return "Cannot use both -b and -p flags. Choose one platform."
	case URLWithPlatformFlag:
		return "URL already specifies the platform. Do not use -b or -p flags with URL."

	case NoRecentFile:
		return "No recent file. Create one with 'kps new' first."
	case RecentFileDeleted:
		return "Recent file no longer exists: " + e.Path

	case OpenCommandFailed:
		return "Failed to open file: " + e.Detail
	}
	return fmt.Sprintf("kps error %d", e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// validKeys is kept in sync with config.Keys by a test in the config package.
const validKeys = "author, sourceFolder, projectName, ideProjectPath"

var (
	ErrConfigNotFound             = &Error{Code: ConfigNotFound}
	ErrConfigNotFoundInRepository = &Error{Code: ConfigNotFoundInRepository}
	ErrConfigAlreadyExists        = &Error{Code: ConfigAlreadyExists}

	ErrGitToolNotAvailable = &Error{Code: GitToolNotAvailable}
	ErrGitNotARepository   = &Error{Code: GitNotARepository}
	ErrGitNothingToCommit  = &Error{Code: GitNothingToCommit}

	ErrUnsupportedURL       = &Error{Code: UnsupportedURL}
	ErrInvalidProblemNumber = &Error{Code: InvalidProblemNumber}
	ErrPlatformRequired     = &Error{Code: PlatformRequired}
	ErrConflictingFlags     = &Error{Code: ConflictingFlags}
	ErrURLWithPlatformFlag  = &Error{Code: URLWithPlatformFlag}

	ErrNoRecentFile = &Error{Code: NoRecentFile}
)

func ParseError(detail string) error { return &Error{Code: ConfigParseError, Detail: detail} }
func InvalidKey(name string) error   { return &Error{Code: ConfigInvalidKey, Detail: name} }

func CommandFailed(output string) error { return &Error{Code: GitCommandFailed, Detail: output} }
func PushFailed(output string) error    { return &Error{Code: GitPushFailed, Detail: output} }

func AlreadyExists(path string) error    { return &Error{Code: FileAlreadyExists, Path: path} }
func NotFound(path string) error         { return &Error{Code: FileNotFound, Path: path} }
func PermissionDenied(path string) error { return &Error{Code: FilePermissionDenied, Path: path} }
func IOError(err error) error            { return &Error{Code: FileIOError, Err: err} }

func MultipleFound(paths []string) error {
	return &Error{Code: FileMultipleFound, Paths: append([]string(nil), paths...)}
}

func FileDeleted(path string) error  { return &Error{Code: RecentFileDeleted, Path: path} }
func OpenFailed(output string) error { return &Error{Code: OpenCommandFailed, Detail: output} }

// FromOS classifies an error returned by the os package. Permission errors
// become PermissionDenied and missing files NotFound, both naming the path
// from the underlying *fs.PathError when there is one. Everything else is an
// IOError wrapping err.
func FromOS(err error) error {
	if err == nil {
		return nil
	}
	var kerr *Error
	if errors.As(err, &kerr) {
		return err
	}
	path := "unknown"
	var perr *fs.PathError
	if errors.As(err, &perr) {
		path = perr.Path
	}
	switch {
	case errors.Is(err, fs.ErrPermission):
		return &Error{Code: FilePermissionDenied, Path: path, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Code: FileNotFound, Path: path, Err: err}
	}
	return IOError(err)
}

// CodeOf returns the Code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Code, true
	}
	return 0, false
}
