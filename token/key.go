package token

import "github.com/conformat/conform/ir"

// ParseKey decodes an object-key token: quoted (honoring the five escapes)
// or bare. line is used only for SyntaxError position reporting. In strict
// mode, a bare key that violates the unquoted-key pattern is rejected; in
// non-strict mode any bare token is accepted as a key, since hand-edited
// input should still round-trip.
func ParseKey(s string, strict bool, line int) (string, error) {
	if s == "" {
		return "", ir.NewSyntaxError(line, 0, "empty key")
	}
	if s[0] == '"' {
		end := FindClosingQuote(s, 0)
		if end < 0 {
			return "", ir.NewSyntaxError(line, 0, "unterminated quoted key")
		}
		if end != len(s)-1 {
			return "", ir.NewSyntaxError(line, 0, "trailing content after quoted key")
		}
		v, err := Unquote(s)
		if err != nil {
			return "", ir.NewSyntaxError(line, 0, err.Error())
		}
		return v, nil
	}
	if strict && !IsUnquotedKey(s) {
		return "", ir.NewSyntaxError(line, 0, "key requires quoting: "+s)
	}
	return s, nil
}

// Unquote decodes a fully-quoted token s (s[0] and s[len(s)-1] must both be
// `"`) into its string value, applying Unescape to the interior.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", errUnterminatedQuote
	}
	return Unescape(s[1 : len(s)-1])
}
