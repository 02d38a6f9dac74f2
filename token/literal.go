package token

import (
	"strconv"
	"strings"
)

// IsBoolOrNullLiteral reports whether s is exactly "true", "false", or "null".
func IsBoolOrNullLiteral(s string) bool {
	switch s {
	case "true", "false", "null":
		return true
	default:
		return false
	}
}

// LooksNumeric reports whether s matches the emitter-side numeric-like
// pattern -?\d+(\.\d+)?([eE][+-]?\d+)?, OR a bare leading-zero integer like
// "007". The latter is not a valid JSON number, but the emitter still
// treats it as numeric-like so that it gets quoted — an unquoted "007"
// would otherwise be misread as a string by some other reader, and would
// fail CON's own parse-side leading-zero rejection on round-trip.
func LooksNumeric(s string) bool {
	n, _, ok := scanNumber(s)
	return ok && n == len(s)
}

// ParseNumberToken decodes s as a CON numeric literal for the parser: it
// must scan as a full numeric token AND must not have a leading zero
// followed by another digit (except the single token "0" itself, which is
// fine). Ambiguous leading-zero tokens are rejected here so that they
// round-trip as strings instead of silently losing information.
func ParseNumberToken(s string) (float64, bool) {
	n, leadingZero, ok := scanNumber(s)
	if !ok || n != len(s) {
		return 0, false
	}
	if leadingZero {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsUnquotedKey reports whether s may be written as a bare object key:
// [A-Za-z_][A-Za-z0-9_.]*
func IsUnquotedKey(s string) bool {
	if s == "" {
		return false
	}
	if !isKeyStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isKeyCont(s[i]) {
			return false
		}
	}
	return true
}

func isKeyStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isKeyCont(c byte) bool {
	return isKeyStart(c) || (c >= '0' && c <= '9') || c == '.'
}

// IsSafeUnquotedString reports whether a string value may be written
// unquoted given the active delimiter, per the §4.1 unquoted-string rule.
func IsSafeUnquotedString(s string, delim byte) bool {
	if s == "" {
		return false
	}
	if strings.TrimSpace(s) != s {
		return false
	}
	if IsBoolOrNullLiteral(s) || LooksNumeric(s) {
		return false
	}
	if s[0] == '-' {
		return false
	}
	if strings.ContainsAny(s, ":\"\\[]{}\n\r\t") {
		return false
	}
	if strings.IndexByte(s, delim) >= 0 {
		return false
	}
	return true
}
