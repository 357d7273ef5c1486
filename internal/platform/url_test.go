package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kps/internal/kpserr"
)

func TestParseURL(t *testing.T) {
	cases := []struct {
		url      string
		platform Platform
		number   string
	}{
		{"https://acmicpc.net/problem/1000", BOJ, "1000"},
		{"https://www.acmicpc.net/problem/1000", BOJ, "1000"},
		{"http://acmicpc.net/problem/1000", BOJ, "1000"},
		{"https://WWW.ACMICPC.NET/problem/1000", BOJ, "1000"},
		{"https://acmicpc.net/problem/1000/", BOJ, "1000"},
		{"www.acmicpc.net/problem/2557", BOJ, "2557"},
		{"https://boj.kr/1000", BOJ, "1000"},
		{"https://school.programmers.co.kr/learn/courses/30/lessons/340207", Programmers, "340207"},
		{"https://programmers.co.kr/learn/courses/30/lessons/340207", Programmers, "340207"},
		{"https://www.programmers.co.kr/learn/courses/30/lessons/340207", Programmers, "340207"},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			p, err := ParseURL(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.platform, p.Platform)
			assert.Equal(t, tc.number, p.Number)
		})
	}
}

func TestParseURL_IgnoresQueryAndFragment(t *testing.T) {
	p, err := ParseURL("https://school.programmers.co.kr/learn/courses/30/lessons/340207?itm_content=detail")
	require.NoError(t, err)
	assert.Equal(t, NewProblem(Programmers, "340207"), p)

	p, err = ParseURL("https://acmicpc.net/problem/1000#section")
	require.NoError(t, err)
	assert.Equal(t, NewProblem(BOJ, "1000"), p)

	p, err = ParseURL("https://school.programmers.co.kr/learn/courses/30/lessons/340207?x=1")
	require.NoError(t, err)
	assert.Equal(t, "340207", p.Number)
}

func TestParseURL_Unsupported(t *testing.T) {
	for _, raw := range []string{
		"https://leetcode.com/problems/two-sum",
		"https://acmicpc.net/submit/1000",
		"https://acmicpc.net/problem/",
		"https://acmicpc.net/problem/1000/extra",
		"https://boj.kr/",
		"https://boj.kr/1000/1001",
		"https://school.programmers.co.kr/learn/courses/31/lessons/340207",
		"https://school.programmers.co.kr/learn/courses/30/lessons/",
		"https://school.programmers.co.kr/learn/courses/30",
		"https://notacmicpc.net/problem/1000",
		"",
		"::::",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseURL(raw)
			assert.ErrorIs(t, err, kpserr.ErrUnsupportedURL)
		})
	}
}

func TestParseURL_Deterministic(t *testing.T) {
	const raw = "https://boj.kr/1000"
	first, err := ParseURL(raw)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ParseURL(raw)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, LooksLikeURL("https://boj.kr/1000"))
	assert.True(t, LooksLikeURL("http://acmicpc.net/problem/1"))
	assert.True(t, LooksLikeURL("www.acmicpc.net/problem/1"))
	assert.False(t, LooksLikeURL("1000"))
	assert.False(t, LooksLikeURL("acmicpc.net/problem/1"))
}
