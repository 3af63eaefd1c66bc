package tinyre

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"[abc", ErrUnterminatedClass},
		{"[z-a]", ErrInvalidRange},
		{"[-a]", ErrInvalidRange},
		{"[]", ErrEmptyClass},
		{"*a", ErrMissingRepeatArgument},
		{"a**", ErrNestedRepeat},
		{`a\`, ErrTrailingBackslash},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err == nil {
				re.Free()
				t.Fatalf("Compile(%q) succeeded", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Errorf("err %T is not *Error", err)
			}
			if !strings.HasPrefix(err.Error(), "error parsing regexp: ") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestClassCapacityError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxClassSize = 3
	if _, err := CompileWithConfig("[abcd]", cfg); !errors.Is(err, ErrClassCapacity) {
		t.Errorf("err = %v, want ErrClassCapacity", err)
	}
	re, err := CompileWithConfig("[abc]", cfg)
	if err != nil {
		t.Fatalf("three entries: %v", err)
	}
	re.Free()
}

func TestPatternTooComplex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 10
	_, err := CompileWithConfig(strings.Repeat("a", 11), cfg)
	if !errors.Is(err, ErrPatternTooComplex) {
		t.Errorf("err = %v, want ErrPatternTooComplex", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "regexp: Compile(`[x`): ") {
			t.Errorf("panic = %v", r)
		}
	}()
	MustCompile("[x")
}
