package encode

import (
	"strconv"
	"strings"

	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/token"
)

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(token.Escape(s))
	b.WriteByte('"')
	return b.String()
}

// encodeKeyToken renders an object key or tabular column name, quoting it
// only when it can't be written bare.
func encodeKeyToken(key string) string {
	if token.IsUnquotedKey(key) {
		return key
	}
	return quote(key)
}

// primitiveToken renders a single primitive Node as it appears in key-value
// pairs, inline array bodies, tabular rows, and list items. delim is the
// active array delimiter: a string value must be quoted if it contains it.
func primitiveToken(n *ir.Node, delim byte) string {
	switch n.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		if n.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		return strconv.FormatFloat(n.Number, 'g', -1, 64)
	case ir.StringType:
		if token.IsSafeUnquotedString(n.String, delim) {
			return n.String
		}
		return quote(n.String)
	default:
		panic("encode: primitiveToken called on non-primitive node")
	}
}

func joinValues(values []*ir.Node, delim byte) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = primitiveToken(v, delim)
	}
	return strings.Join(parts, string(delim))
}

func joinRow(row *ir.Node, cols []string, delim byte) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		v := row.Get(col)
		if v == nil {
			parts[i] = ""
			continue
		}
		parts[i] = primitiveToken(v, delim)
	}
	return strings.Join(parts, string(delim))
}
