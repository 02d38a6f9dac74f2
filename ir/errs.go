package ir

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrCycleDetected is returned when normalize.Value discovers a host value
// that directly or transitively contains itself. It is always raised before
// any output text is produced.
var ErrCycleDetected = errors.New("con: cycle detected")

// ErrEmptyInput is returned by Deserialize when called on empty or
// whitespace-only text.
var ErrEmptyInput = errors.New("con: empty input")

// ErrParse is the sentinel wrapped by every parse-time syntax error, so
// callers can test for "some parse failure" with errors.Is(err, ir.ErrParse)
// without caring which concrete shape it took.
var ErrParse = errors.New("con: syntax error")

// SyntaxError is a parse-time error with enough position information for a
// caller to locate the fault in the source text. Column is 0 when the fault
// is line-scoped (e.g. a header-count mismatch) rather than tied to a byte
// offset within the line.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("con: syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("con: syntax error at line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrParse }

// NewSyntaxError builds a *SyntaxError and attaches a stack trace at the
// call site, so every parse failure carries one back to its origination
// point regardless of how many layers it is returned through.
func NewSyntaxError(line, column int, msg string) error {
	return pkgerrors.WithStack(&SyntaxError{Line: line, Column: column, Msg: msg})
}

// CountMismatch is returned in strict-mode parsing when an array header
// declares N items but its body does not contain exactly N.
type CountMismatch struct {
	Kind     string // "inline", "tabular", or "list"
	Expected int
	Actual   int
	Line     int
}

func (e *CountMismatch) Error() string {
	return fmt.Sprintf("con: count mismatch at line %d: %s array declared %d item(s), got %d", e.Line, e.Kind, e.Expected, e.Actual)
}

func (e *CountMismatch) Unwrap() error { return ErrParse }

// NewCountMismatch builds a *CountMismatch and attaches a stack trace at
// the call site, mirroring NewSyntaxError.
func NewCountMismatch(kind string, expected, actual, line int) error {
	return pkgerrors.WithStack(&CountMismatch{Kind: kind, Expected: expected, Actual: actual, Line: line})
}
