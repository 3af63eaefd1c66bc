package simd

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemmem(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
	}{
		{"", ""},
		{"abc", ""},
		{"", "a"},
		{"hello world", "world"},
		{"hello world", "xyz"},
		{"aaaaaabaaaa", "aab"},
		{"abc", "abcd"},
		{"abcabc", "cab"},
		{"ab", "b"},
		{"colour color", "color"},
		{strings.Repeat("ab", 100) + "abq", "abq"},
		{"zzzqzz", "zq"},
		{"qqq", "qq"},
	}

	for _, tt := range tests {
		t.Run(tt.haystack+"/"+tt.needle, func(t *testing.T) {
			want := bytes.Index([]byte(tt.haystack), []byte(tt.needle))
			if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, want)
			}
		})
	}
}

func TestRarestByte(t *testing.T) {
	tests := []struct {
		needle string
		want   int
	}{
		{"a", 0},
		{"eq", 1},
		{"qe", 0},
		{"the", 1},
		{"x@y", 1},
	}
	for _, tt := range tests {
		if got := RarestByte([]byte(tt.needle)); got != tt.want {
			t.Errorf("RarestByte(%q) = %d, want %d", tt.needle, got, tt.want)
		}
	}
}

func TestRankOrdering(t *testing.T) {
	if Rank(' ') <= Rank('e') {
		t.Error("space should outrank 'e'")
	}
	if Rank('e') <= Rank('q') {
		t.Error("'e' should outrank 'q'")
	}
	if Rank(0x01) != 0 || Rank(0xff) != 0 {
		t.Error("unlisted bytes should rank 0")
	}
}
