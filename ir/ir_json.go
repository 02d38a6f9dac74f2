package ir

import (
	"strconv"

	"github.com/segmentio/encoding/json"
)

// ToAny converts a Node into a plain Go value built from the universal
// JSON-ish building blocks (nil, bool, float64, string, []any, map[string]any)
// that expr-lang/expr and other generic consumers expect. Object key order
// is lost in the conversion, since map[string]any cannot carry it; callers
// that need order-preserving JSON should use ToJSON instead.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case NumberType:
		return n.Number
	case StringType:
		return n.String
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f] = n.Values[i].ToAny()
		}
		return res
	default:
		return nil
	}
}

// ToJSON encodes n as order-preserving JSON text, writing object fields in
// Node.Fields order rather than sorted or random map order. The tree is
// walked by hand; segmentio/encoding's json.Marshal is used only to quote
// individual strings and keys.
func (n *Node) ToJSON() ([]byte, error) {
	buf := make([]byte, 0, 256)
	buf, err := appendJSON(buf, n)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func appendJSON(buf []byte, n *Node) ([]byte, error) {
	if n == nil {
		return append(buf, "null"...), nil
	}
	switch n.Type {
	case NullType:
		return append(buf, "null"...), nil
	case BoolType:
		if n.Bool {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case NumberType:
		return strconv.AppendFloat(buf, n.Number, 'g', -1, 64), nil
	case StringType:
		d, err := json.Marshal(n.String)
		if err != nil {
			return nil, err
		}
		return append(buf, d...), nil
	case ArrayType:
		buf = append(buf, '[')
		for i, v := range n.Values {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = appendJSON(buf, v)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case ObjectType:
		buf = append(buf, '{')
		for i, f := range n.Fields {
			if i > 0 {
				buf = append(buf, ',')
			}
			kd, err := json.Marshal(f)
			if err != nil {
				return nil, err
			}
			buf = append(buf, kd...)
			buf = append(buf, ':')
			buf, err = appendJSON(buf, n.Values[i])
			if err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	default:
		panic("type")
	}
}
