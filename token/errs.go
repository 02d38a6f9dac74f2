package token

import (
	"errors"
	"fmt"
)

var (
	errTrailingBackslash = errors.New("con: trailing backslash in quoted string")
	errUnterminatedQuote = errors.New("con: unterminated quoted string")
)

type unknownEscapeError struct {
	c byte
}

func (e *unknownEscapeError) Error() string {
	return fmt.Sprintf("con: unknown escape sequence \\%c", e.c)
}
