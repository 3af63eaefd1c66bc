package tinyre_test

import (
	"fmt"

	"github.com/coregx/tinyre"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := tinyre.Compile(`\d+`)
	if err != nil {
		panic(err)
	}
	defer re.Free()

	fmt.Println(re.Match([]byte("hello 123")))
	// Output: true
}

// ExampleRegex_FindString demonstrates finding a match in a string.
func ExampleRegex_FindString() {
	re := tinyre.MustCompile(`colou?r`)
	fmt.Println(re.FindString("my favourite colour"))
	// Output: colour
}

// ExampleRegex_FindMode shows the two quantifier resolution modes.
func ExampleRegex_FindMode() {
	re := tinyre.MustCompile(`\d+`)
	text := []byte("ab123cd")

	for _, mode := range []tinyre.Mode{tinyre.ShortestFirst, tinyre.LongestFirst} {
		res, err := re.FindMode(text, mode)
		if err != nil {
			panic(err)
		}
		fmt.Println(mode, res.Start, res.End, string(text[res.Start:res.End]))
	}
	// Output:
	// shortest 2 3 1
	// longest 2 5 123
}

// ExampleRegex_FindAllString demonstrates iterating over matches.
func ExampleRegex_FindAllString() {
	re := tinyre.MustCompile(`[a-z]+`)
	fmt.Println(re.FindAllString("one, two; three", -1))
	// Output: [one two three]
}

// ExampleQuoteMeta demonstrates escaping metacharacters.
func ExampleQuoteMeta() {
	fmt.Println(tinyre.QuoteMeta("1.5*2"))
	// Output: 1\.5\*2
}

// ExampleCompile_error shows the error for a malformed class.
func ExampleCompile_error() {
	_, err := tinyre.Compile("ab[cd")
	fmt.Println(err)
	// Output: error parsing regexp: missing closing ]: `[cd`
}
