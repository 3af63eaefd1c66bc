package tinyre

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coregx/tinyre/chain"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"^abc$", "abc", true},
		{"^abc$", "xabc", false},
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		{`\d+`, "no digits", false},
		{`\d+`, "room 101", true},
		{`\D`, "123", false},
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{"[^0-9]+", "123", false},
		{"x*", "", true},
		{"", "", true},
		{"$", "", true},
		{"^$", "x", false},
		{`1\.5`, "1x5", false},
		{`1\.5`, "1.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			defer re.Free()
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindIndex(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []int
	}{
		{`\d+`, "ab123cd", []int{2, 5}},
		{"a*a", "aaa", []int{0, 3}},
		{"a*", "aaab", []int{0, 3}},
		{"a*", "baaa", []int{0, 0}},
		{"$", "abc", []int{3, 3}},
		{"b", "abc", []int{1, 2}},
		{"z", "abc", nil},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		if got := re.FindStringIndex(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q.FindStringIndex(%q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
		re.Free()
	}
}

func TestFind(t *testing.T) {
	re := MustCompile(`[a-z]+`)
	defer re.Free()

	if got := string(re.Find([]byte("123 abc 456"))); got != "abc" {
		t.Errorf("Find = %q", got)
	}
	if got := re.Find([]byte("123")); got != nil {
		t.Errorf("Find no match = %q, want nil", got)
	}
	if got := re.FindString("  hello world"); got != "hello" {
		t.Errorf("FindString = %q", got)
	}
}

func TestFindMode(t *testing.T) {
	re := MustCompile(`\d+`)
	defer re.Free()
	text := []byte("ab123cd")

	res, err := re.FindMode(text, ShortestFirst)
	if err != nil || res != (Result{Matched: true, Start: 2, End: 3}) {
		t.Errorf("shortest = %+v, %v", res, err)
	}
	res, err = re.FindMode(text, LongestFirst)
	if err != nil || res != (Result{Matched: true, Start: 2, End: 5}) {
		t.Errorf("longest = %+v, %v", res, err)
	}
	res, err = re.FindModeAt(text, 4, LongestFirst)
	if err != nil || res != (Result{Matched: true, Start: 4, End: 5}) {
		t.Errorf("FindModeAt(4) = %+v, %v", res, err)
	}
}

func TestShortestLongest(t *testing.T) {
	re := MustCompile("a+")
	defer re.Free()

	if re.Mode() != LongestFirst {
		t.Fatalf("default Mode = %v", re.Mode())
	}
	re.Shortest()
	if got := re.FindString("aaa"); got != "a" {
		t.Errorf("shortest FindString = %q", got)
	}
	res, err := re.MatchResult([]byte("aaa"))
	if err != nil || res.End != 1 {
		t.Errorf("MatchResult = %+v, %v", res, err)
	}
	re.Longest()
	if got := re.FindString("aaa"); got != "aaa" {
		t.Errorf("longest FindString = %q", got)
	}
}

func TestConfigMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ShortestFirst
	re, err := CompileWithConfig("a*a", cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer re.Free()
	if got := re.FindString("aaa"); got != "a" {
		t.Errorf("FindString = %q, want %q", got, "a")
	}
}

func TestFoldCase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FoldCase = true
	re, err := CompileWithConfig("hello", cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer re.Free()

	for _, s := range []string{"hello", "HELLO", "say HeLLo"} {
		if !re.MatchString(s) {
			t.Errorf("fold-case MatchString(%q) = false", s)
		}
	}
	if MustCompile("hello").MatchString("HELLO") {
		t.Error("case-sensitive pattern matched HELLO")
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
		want    []string
	}{
		{`\d+`, "1 22 333", -1, []string{"1", "22", "333"}},
		{`\d+`, "1 22 333", 2, []string{"1", "22"}},
		{`\d+`, "1 22 333", 0, nil},
		{`\d+`, "none", -1, nil},
		{"a*", "baaac", -1, []string{"", "aaa", ""}},
		{"", "abc", -1, []string{"", "", "", ""}},
		{"^a", "aaa", -1, []string{"a"}},
		{"a$", "aaa", -1, []string{"a"}},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		got := re.FindAllString(tt.input, tt.n)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q.FindAllString(%q, %d) = %q, want %q", tt.pattern, tt.input, tt.n, got, tt.want)
		}
		if c := re.Count([]byte(tt.input), tt.n); c != len(tt.want) {
			t.Errorf("%q.Count(%q) = %d, want %d", tt.pattern, tt.input, c, len(tt.want))
		}
		re.Free()
	}
}

func TestFindAllIndex(t *testing.T) {
	re := MustCompile("ab")
	defer re.Free()
	got := re.FindAllStringIndex("abxab", -1)
	want := [][]int{{0, 2}, {3, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllStringIndex = %v, want %v", got, want)
	}

	all := re.FindAll([]byte("abxab"), -1)
	if len(all) != 2 || string(all[1]) != "ab" {
		t.Errorf("FindAll = %q", all)
	}
}

func TestQuoteMeta(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"1.5*2", `1\.5\*2`},
		{`[a]^$\+?`, `\[a\]\^\$\\\+\?`},
		{"", ""},
	}
	for _, tt := range tests {
		got := QuoteMeta(tt.in)
		if got != tt.want {
			t.Errorf("QuoteMeta(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		re := MustCompile(got)
		if loc := re.FindStringIndex("<" + tt.in + ">"); !reflect.DeepEqual(loc, []int{1, 1 + len(tt.in)}) {
			t.Errorf("quoted %q found at %v", tt.in, loc)
		}
		re.Free()
	}
}

func TestString(t *testing.T) {
	re := MustCompile(`^a\d*$`)
	defer re.Free()
	if re.String() != `^a\d*$` {
		t.Errorf("String() = %q", re.String())
	}
}

func TestFree(t *testing.T) {
	re := MustCompile("abc")
	re.Free()
	re.Free()

	if re.MatchString("abc") {
		t.Error("MatchString after Free = true")
	}
	if _, err := re.FindMode([]byte("abc"), LongestFirst); !errors.Is(err, ErrReleased) {
		t.Errorf("FindMode after Free: err = %v", err)
	}
}

func TestDroppedRegexReleasesNodes(t *testing.T) {
	runtime.GC()
	before := chain.DefaultStore().Stats().Live

	for i := 0; i < 5000; i++ {
		if !MustCompile("abcdefgh").MatchString("--abcdefgh--") {
			t.Fatal("MatchString = false")
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		runtime.GC()
		live := chain.DefaultStore().Stats().Live
		if live <= before {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("live nodes = %d after dropping every Regex, want at most %d", live, before)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestBudgetAbortsAsNoMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 50
	cfg.MaxVisitedBits = 0
	re, err := CompileWithConfig("a*a*a*a*a*b", cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer re.Free()

	text := strings.Repeat("a", 40)
	if re.MatchString(text) {
		t.Error("aborted search reported a match")
	}
	if _, err := re.MatchResult([]byte(text)); !errors.Is(err, ErrStepLimit) {
		t.Errorf("MatchResult err = %v, want ErrStepLimit", err)
	}
	if re.Stats().Aborted != 2 {
		t.Errorf("Aborted = %d, want 2", re.Stats().Aborted)
	}
}

func TestMemoKeepsPathologicalPatternsLinear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 1_000_000
	re, err := CompileWithConfig("a*a*a*a*a*a*a*a*a*a*b", cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer re.Free()

	if _, err := re.MatchResult([]byte(strings.Repeat("a", 200))); err != nil {
		t.Errorf("memoised search aborted: %v", err)
	}
}

func TestConcurrentMatch(t *testing.T) {
	re := MustCompile(`[a-z]+\d`)
	defer re.Free()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				if !re.MatchString("xx id" + string(rune('0'+(i+j)%10))) {
					t.Error("concurrent MatchString = false")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLiteralPrefix(t *testing.T) {
	re := MustCompile("error: .*")
	defer re.Free()
	prefix, complete := re.LiteralPrefix()
	if prefix != "error: " || complete {
		t.Errorf("LiteralPrefix = %q, %v", prefix, complete)
	}
}
