package chain

import "testing"

func TestInClass(t *testing.T) {
	tests := []struct {
		pattern string
		in      string
		out     string
	}{
		{"[abc]", "abc", "dA-]"},
		{"[^abc]", "dA-]\x00", "abc"},
		{`\d`, "0123456789", "a/:"},
		{`\D`, "a/: ", "0123456789"},
		{"[a-cx]", "abcx", "dw"},
		{"[0-9a-f]", "09af", "g:"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			c := mustCompile(t, tt.pattern, Options{})
			defer c.Free()
			n := c.Head()
			for i := 0; i < len(tt.in); i++ {
				if !n.InClass(tt.in[i]) {
					t.Errorf("InClass(%q) = false, want true", tt.in[i])
				}
			}
			for i := 0; i < len(tt.out); i++ {
				if n.InClass(tt.out[i]) {
					t.Errorf("InClass(%q) = true, want false", tt.out[i])
				}
			}
		})
	}
}

func TestInClassNonClassNode(t *testing.T) {
	c := mustCompile(t, "a.", Options{})
	defer c.Free()
	for n := c.Head(); n != nil; n = n.Next() {
		if n.InClass('a') {
			t.Errorf("%v: InClass should be false for non-class nodes", n)
		}
	}
}

func TestMatchByKind(t *testing.T) {
	c := mustCompile(t, "^a.[xy]$", Options{})
	defer c.Free()

	start := c.Head()
	lit := start.Next()
	anyc := lit.Next()
	class := anyc.Next()
	end := class.Next()

	for b := 0; b < 256; b++ {
		c := byte(b)
		if start.Match(c) || end.Match(c) {
			t.Fatalf("anchor consumed %q", c)
		}
		if !anyc.Match(c) {
			t.Fatalf("AnyChar rejected %q", c)
		}
		if lit.Match(c) != (c == 'a') {
			t.Fatalf("Literal(a).Match(%q) wrong", c)
		}
		if class.Match(c) != (c == 'x' || c == 'y') {
			t.Fatalf("Class(xy).Match(%q) wrong", c)
		}
	}

	table := class.Table()
	if !table['x'] || !table['y'] || table['z'] {
		t.Error("Table() disagrees with Match")
	}
}
