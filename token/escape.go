package token

import "strings"

// Escape substitutes the five CON escape sequences, in substitution order:
// backslash first (so later substitutions don't double-escape the
// backslashes they introduce), then quote, newline, carriage return, tab.
// No Unicode-escape form is ever emitted.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

// Unescape reverses Escape. It accepts only the five sequences Escape
// produces; a trailing backslash or any other \X is a syntax error, per the
// rule that malformed escapes are hard errors regardless of strict mode.
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", errTrailingBackslash
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", &unknownEscapeError{c: s[i]}
		}
	}
	return b.String(), nil
}
