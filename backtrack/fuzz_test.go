package backtrack

import (
	"regexp"
	"testing"

	"github.com/coregx/tinyre/chain"
)

// Run with:
//
//	go test -fuzz=FuzzAgainstStdlib -fuzztime=30s ./backtrack

var fuzzSeeds = []struct {
	pattern string
	text    string
}{
	{"hello", "say hello"},
	{`\d+`, "ab123cd"},
	{"colou?r", "colour"},
	{"a*a", "aaa"},
	{"^abc$", "abc"},
	{"[^a-c]+x", "zzzx"},
	{".*b", "aabab"},
	{`\.\*`, "a.*b"},
	{"$", "end"},
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func FuzzAgainstStdlib(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s.pattern, s.text, false)
		f.Add(s.pattern, s.text, true)
	}

	f.Fuzz(func(t *testing.T, pattern, text string, shortest bool) {
		if !isASCII(text) || len(pattern) > 64 || len(text) > 256 {
			t.Skip()
		}
		store := chain.NewStore()
		c, err := chain.Compile([]byte(pattern), store, chain.Options{})
		if err != nil {
			if st := store.Stats(); st.Live != 0 {
				t.Fatalf("%q: %d nodes leaked on error", pattern, st.Live)
			}
			t.Skip()
		}
		defer c.Free()

		mode := LongestFirst
		if shortest {
			mode = ShortestFirst
		}
		re, err := regexp.Compile(toStdlib(c, mode))
		if err != nil {
			t.Fatalf("%q translated to invalid %q: %v", pattern, toStdlib(c, mode), err)
		}
		want := Result{}
		if loc := re.FindStringIndex(text); loc != nil {
			want = Result{Matched: true, Start: loc[0], End: loc[1]}
		}

		cfg := DefaultConfig()
		cfg.Mode = mode
		got, err := NewMatcher(c, cfg).Find([]byte(text))
		if err != nil {
			t.Fatalf("%q on %q: %v", pattern, text, err)
		}
		if got != want {
			t.Fatalf("%q (%v) on %q: got %+v, want %+v", pattern, mode, text, got, want)
		}
	})
}
