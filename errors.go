package colorwheel

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrInvalidFormat reports a hex string that is not exactly six hex digits.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidSelection reports an input mode or harmony selector outside
	// the recognized set.
	ErrInvalidSelection = errors.New("invalid selection")
)

// FormatError describes a rejected hex color string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: hex color %q: %s", ErrInvalidFormat, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// SelectionError describes a value that is not one of a closed set of choices.
// Field names the choice being made, e.g. "harmony" or "input mode".
type SelectionError struct {
	Field string
	Input string
}

func (e *SelectionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: unknown %s %q", ErrInvalidSelection, e.Field, e.Input)
}

func (e *SelectionError) Unwrap() error { return ErrInvalidSelection }
