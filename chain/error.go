package chain

import "errors"

// Compile errors. Every error returned by Compile is a *Error wrapping one
// of these, so callers can test with errors.Is.
var (
	// ErrUnterminatedClass reports a bracket expression with no closing ].
	ErrUnterminatedClass = errors.New("missing closing ]")

	// ErrInvalidRange reports a '-' inside brackets without two valid
	// endpoints, or a range whose upper bound does not exceed its lower bound.
	ErrInvalidRange = errors.New("invalid character class range")

	// ErrClassCapacity reports a bracket expression that writes more entries
	// than Options.MaxClassSize allows.
	ErrClassCapacity = errors.New("character class exceeds capacity")

	// ErrEmptyClass reports a bracket expression with no members.
	ErrEmptyClass = errors.New("empty character class")

	// ErrMissingRepeatArgument reports a quantifier with nothing to repeat.
	ErrMissingRepeatArgument = errors.New("missing argument to repetition operator")

	// ErrNestedRepeat reports a quantifier applied to an already
	// quantified atom, such as a** or a+?.
	ErrNestedRepeat = errors.New("invalid nested repetition operator")

	// ErrTrailingBackslash reports a pattern ending in a lone backslash.
	ErrTrailingBackslash = errors.New("trailing backslash at end of expression")
)

// Error describes a failure to compile a pattern.
type Error struct {
	// Err is one of the sentinel errors above.
	Err error

	// Pattern is the full pattern being compiled.
	Pattern string

	// Offset is the byte offset of the construct that failed.
	Offset int
}

// Error implements the error interface using the same layout as
// regexp/syntax: "error parsing regexp: <reason>: `<fragment>`".
func (e *Error) Error() string {
	return "error parsing regexp: " + e.Err.Error() + ": `" + e.Expr() + "`"
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Expr returns the offending fragment of the pattern.
func (e *Error) Expr() string {
	if e.Offset < 0 || e.Offset > len(e.Pattern) {
		return e.Pattern
	}
	return e.Pattern[e.Offset:]
}
