package prefilter

import (
	"testing"

	"github.com/coregx/tinyre/literal"
)

func digitTable() *[256]bool {
	var t [256]bool
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	return &t
}

func tableOf(s string) *[256]bool {
	var t [256]bool
	for i := 0; i < len(s); i++ {
		t[s[i]] = true
	}
	return &t
}

func TestBuildSelection(t *testing.T) {
	all := new([256]bool)
	for i := range all {
		all[i] = true
	}

	tests := []struct {
		name   string
		prefix literal.Literal
		first  *[256]bool
		want   string
	}{
		{"none", literal.Literal{}, nil, "nil"},
		{"one byte", literal.Literal{Bytes: []byte("a")}, nil, "memchr"},
		{"substring", literal.Literal{Bytes: []byte("abc")}, nil, "memmem"},
		{"prefix wins", literal.Literal{Bytes: []byte("ab")}, digitTable(), "memmem"},
		{"single member", literal.Literal{}, tableOf("q"), "memchr"},
		{"two members", literal.Literal{}, tableOf("xy"), "small"},
		{"three members", literal.Literal{}, tableOf("xyz"), "small"},
		{"digits", literal.Literal{}, digitTable(), "table"},
		{"everything", literal.Literal{}, all, "nil"},
		{"nothing", literal.Literal{}, new([256]bool), "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := Build(tt.prefix, tt.first)
			var got string
			switch pf.(type) {
			case nil:
				got = "nil"
			case *memchrPrefilter:
				got = "memchr"
			case *memmemPrefilter:
				got = "memmem"
			case *smallSetPrefilter:
				got = "small"
			case *tablePrefilter:
				got = "table"
			}
			if got != tt.want {
				t.Errorf("Build() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrefilterFind(t *testing.T) {
	haystack := []byte("the colour of 42 things")

	tests := []struct {
		name  string
		pf    Prefilter
		start int
		want  int
	}{
		{"memchr", Build(literal.Literal{Bytes: []byte("o")}, nil), 0, 5},
		{"memchr from", Build(literal.Literal{Bytes: []byte("o")}, nil), 6, 7},
		{"memmem", Build(literal.Literal{Bytes: []byte("colo")}, nil), 0, 4},
		{"memmem after", Build(literal.Literal{Bytes: []byte("colo")}, nil), 5, -1},
		{"digits", Build(literal.Literal{}, digitTable()), 0, 14},
		{"small set", Build(literal.Literal{}, tableOf("fg")), 0, 12},
		{"three set", Build(literal.Literal{}, tableOf("xyz")), 0, -1},
		{"start past end", Build(literal.Literal{Bytes: []byte("t")}, nil), 100, -1},
		{"negative start", Build(literal.Literal{Bytes: []byte("t")}, nil), -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pf.Find(haystack, tt.start); got != tt.want {
				t.Errorf("Find(%d) = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	pf := Build(literal.Literal{Bytes: []byte("hello"), Complete: true}, nil)
	if !pf.IsComplete() || pf.LiteralLen() != 5 {
		t.Errorf("complete memmem: IsComplete=%v LiteralLen=%d", pf.IsComplete(), pf.LiteralLen())
	}
	pf = Build(literal.Literal{Bytes: []byte("h"), Complete: true}, nil)
	if !pf.IsComplete() || pf.LiteralLen() != 1 {
		t.Errorf("complete memchr: IsComplete=%v LiteralLen=%d", pf.IsComplete(), pf.LiteralLen())
	}
	pf = Build(literal.Literal{Bytes: []byte("hel")}, nil)
	if pf.IsComplete() || pf.LiteralLen() != 0 {
		t.Error("incomplete prefix reported complete")
	}
}

func TestBuildCopiesNeedle(t *testing.T) {
	b := []byte("abc")
	pf := Build(literal.Literal{Bytes: b}, nil)
	b[0] = 'x'
	if got := pf.Find([]byte("zzabc"), 0); got != 2 {
		t.Errorf("Find = %d, want 2 (needle must be copied)", got)
	}
}
