// Package platform holds the fixed registry of supported problem sites and
// the Problem value derived from user input.
package platform

import (
	"fmt"
	"strconv"
	"strings"

	"kps/internal/kpserr"
)

type Platform string

const (
	BOJ         Platform = "boj"
	Programmers Platform = "programmers"
)

type info struct {
	baseURL     string
	folderName  string
	displayName string
}

var registry = map[Platform]info{
	BOJ: {
		baseURL:     "https://acmicpc.net/problem/",
		folderName:  "BOJ",
		displayName: "BOJ",
	},
	Programmers: {
		baseURL:     "https://school.programmers.co.kr/learn/courses/30/lessons/",
		folderName:  "Programmers",
		displayName: "Programmers",
	},
}

// All returns every platform in a stable order.
func All() []Platform { return []Platform{BOJ, Programmers} }

func (p Platform) Valid() bool {
	_, ok := registry[p]
	return ok
}

func (p Platform) BaseURL() string     { return registry[p].baseURL }
func (p Platform) FolderName() string  { return registry[p].folderName }
func (p Platform) DisplayName() string { return registry[p].displayName }
func (p Platform) String() string      { return string(p) }

// Flag is the short command-line flag selecting the platform.
func (p Platform) Flag() string {
	if p == Programmers {
		return "-p"
	}
	return "-b"
}

func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown platform %q", string(p))
	}
	return []byte(p), nil
}

func (p *Platform) UnmarshalText(b []byte) error {
	v := Platform(b)
	if !v.Valid() {
		return fmt.Errorf("unknown platform %q", string(b))
	}
	*p = v
	return nil
}

// FromFlags picks the platform selected by the -b/-p flag pair.
func FromFlags(boj, programmers bool) (Platform, error) {
	switch {
	case boj && programmers:
		return "", kpserr.ErrConflictingFlags
	case boj:
		return BOJ, nil
	case programmers:
		return Programmers, nil
	}
	return "", kpserr.ErrPlatformRequired
}

// ValidateNumber accepts positive decimal integers only.
func ValidateNumber(number string) error {
	n, err := strconv.ParseUint(strings.TrimSpace(number), 10, 64)
	if err != nil || n == 0 {
		return kpserr.ErrInvalidProblemNumber
	}
	return nil
}
