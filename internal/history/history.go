// Package history persists the chronological log of generated solution
// files in .kps/history.json.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"kps/internal/kpserr"
	"kps/internal/platform"
)

// Entry records one created file. Fields are declared in key order so the
// encoded file has sorted keys. Solved is false when absent from older files.
type Entry struct {
	FilePath      string            `json:"filePath"`
	Platform      platform.Platform `json:"platform"`
	ProblemNumber string            `json:"problemNumber"`
	Solved        bool              `json:"solved"`
	Timestamp     time.Time         `json:"timestamp"`
}

// NewEntry builds an unsolved entry stamped at now, truncated to seconds in
// UTC. filePath is relative to the project root.
func NewEntry(p platform.Problem, filePath string, now time.Time) Entry {
	return Entry{
		FilePath:      filePath,
		Platform:      p.Platform,
		ProblemNumber: p.Number,
		Timestamp:     now.UTC().Truncate(time.Second),
	}
}

func (e Entry) Problem() platform.Problem {
	return platform.NewProblem(e.Platform, e.ProblemNumber)
}

// Log is the ordered history; the last entry is the most recent. Methods
// never modify the receiver.
type Log struct {
	Entries []Entry `json:"entries"`
}

func (l Log) Len() int { return len(l.Entries) }

// Append returns a log with e added at the end.
func (l Log) Append(e Entry) Log {
	out := make([]Entry, len(l.Entries), len(l.Entries)+1)
	copy(out, l.Entries)
	return Log{Entries: append(out, e)}
}

// MostRecent returns the last entry, or false for an empty log.
func (l Log) MostRecent() (Entry, bool) {
	if len(l.Entries) == 0 {
		return Entry{}, false
	}
	return l.Entries[len(l.Entries)-1], true
}

// MarkSolved returns a log where the first entry matching number and
// platform is solved. Without a match the log is returned unchanged.
func (l Log) MarkSolved(number string, p platform.Platform) Log {
	for i, e := range l.Entries {
		if e.ProblemNumber == number && e.Platform == p {
			out := make([]Entry, len(l.Entries))
			copy(out, l.Entries)
			out[i].Solved = true
			return Log{Entries: out}
		}
	}
	return l
}

// Find returns the first entry for number and platform.
func (l Log) Find(number string, p platform.Platform) (Entry, bool) {
	for _, e := range l.Entries {
		if e.ProblemNumber == number && e.Platform == p {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads the log at path. Every failure, a missing file included, is a
// kpserr.FileIOError; use errors.Is(err, fs.ErrNotExist) to tell absence apart.
func Load(path string) (Log, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Log{}, kpserr.IOError(err)
	}
	var l Log
	if err := json.Unmarshal(b, &l); err != nil {
		return Log{}, kpserr.IOError(fmt.Errorf("decode %s: %w", path, err))
	}
	if l.Entries == nil {
		l.Entries = []Entry{}
	}
	return l, nil
}

// LoadOrEmpty is Load with a missing file read as an empty log.
func LoadOrEmpty(path string) (Log, error) {
	l, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Log{Entries: []Entry{}}, nil
	}
	return l, err
}

// Save replaces the file at path with l in a single atomic rename.
func Save(l Log, path string) error {
	if l.Entries == nil {
		l.Entries = []Entry{}
	}
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return kpserr.IOError(fmt.Errorf("encode history: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return kpserr.IOError(err)
	}
	if err := renameio.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return kpserr.IOError(err)
	}
	slog.Debug("history saved", "path", path, "entries", len(l.Entries))
	return nil
}
