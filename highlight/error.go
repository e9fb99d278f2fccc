package highlight

import (
	"errors"
	"fmt"
)

var (
	// Err is the base error; every error in this package wraps it.
	Err = errors.New("highlight error")

	ErrPatternCompile    = fmt.Errorf("pattern compile error (%w)", Err)
	ErrInternalInvariant = fmt.Errorf("internal invariant violated (%w)", Err)
)

// A PatternCompileError is returned when a rule's pattern
// is not a valid regular expression.
type PatternCompileError struct {
	// Pattern is the source of the pattern.
	Pattern string
	// Err is the error reported by the regular expression compiler.
	Err error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("bad pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternCompileError) Unwrap() []error { return []error{ErrPatternCompile, e.Err} }

// An InternalInvariantError reports a position of a StyledText
// that has no resolved style.
type InternalInvariantError struct {
	At     int
	Reason string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("position %d: %s", e.At, e.Reason)
}

func (e *InternalInvariantError) Unwrap() error { return ErrInternalInvariant }
