package platform

import (
	"net/url"
	"strings"

	"kps/internal/kpserr"
)

// programmersCourseID is the coding-test practice course. Lessons under any
// other course are not problems.
const programmersCourseID = "30"

// LooksLikeURL reports whether the input should be parsed as a URL rather
// than a bare problem number.
func LooksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}

// ParseURL maps a problem page URL to its Problem. Query strings and
// fragments are ignored. Any unknown host or malformed path yields
// kpserr.ErrUnsupportedURL.
func ParseURL(raw string) (Problem, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Problem{}, kpserr.ErrUnsupportedURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segs := splitPath(u.Path)

	switch host {
	case "acmicpc.net":
		if len(segs) == 2 && segs[0] == "problem" {
			return NewProblem(BOJ, segs[1]), nil
		}
	case "boj.kr":
		if len(segs) == 1 {
			return NewProblem(BOJ, segs[0]), nil
		}
	case "school.programmers.co.kr", "programmers.co.kr":
		if len(segs) >= 5 &&
			segs[0] == "learn" &&
			segs[1] == "courses" &&
			segs[2] == programmersCourseID &&
			segs[3] == "lessons" {
			return NewProblem(Programmers, segs[4]), nil
		}
	}
	return Problem{}, kpserr.ErrUnsupportedURL
}

// splitPath returns the non-empty path segments.
func splitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
}
