package sequence

import (
	"errors"
	"fmt"
)

// Causes wrapped by [ParseError]. Callers can test for them with errors.Is.
var (
	// ErrMalformedLine indicates a non-blank line without a `Key: Value` colon.
	ErrMalformedLine = errors.New("malformed line, expected `Key: Value`")
	// ErrUnknownKey indicates a key that is not part of the sequence file schema.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey indicates a key that appears more than once in one file.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMissingKey indicates a required key that is absent from the file.
	ErrMissingKey = errors.New("missing required key")
	// ErrBadBoolean indicates a boolean value outside the recognized token set.
	ErrBadBoolean = errors.New("unrecognized boolean token")
	// ErrBadInteger indicates an integer value that does not parse.
	ErrBadInteger = errors.New("invalid integer")
	// ErrBadNumber indicates a numeric value that does not parse.
	ErrBadNumber = errors.New("invalid number")
)

// ParseError describes a fatal defect in a sequence file. It carries enough
// position information for the operator to fix the file: the file path (when
// known), the one-based line number (zero when the defect is not tied to a
// line, e.g. a missing key), and the offending key (when known).
type ParseError struct {
	File string
	Line int
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s", e.Key, msg)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
