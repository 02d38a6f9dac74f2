package debug

import (
	"fmt"
	"io"
	"strconv"

	"github.com/conformat/conform/ir"
)

// Dump writes a human-readable, depth-indented rendering of node to w,
// colorized when w looks like a terminal (or CON_DEBUG_COLOR forces it).
// It exists for eyeballing a tree while developing against the codec; it is
// not parsed back by anything and carries no format guarantee.
func Dump(node *ir.Node, w io.Writer) {
	c := newColors()
	if !shouldColor(w) {
		c = &colors{Default: func(s string, _ ...any) string { return s }, Map: nil}
	}
	dump(w, c, node, 0, "")
}

func dump(w io.Writer, c *colors, n *ir.Node, depth int, keyPrefix string) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch n.Type {
	case ir.NullType:
		fmt.Fprintf(w, "%s%s%s\n", indent, keyPrefix, c.get(ir.NullType, attrValue)("null"))
	case ir.BoolType:
		fmt.Fprintf(w, "%s%s%s\n", indent, keyPrefix, c.get(ir.BoolType, attrValue)(strconv.FormatBool(n.Bool)))
	case ir.NumberType:
		fmt.Fprintf(w, "%s%s%s\n", indent, keyPrefix, c.get(ir.NumberType, attrValue)(strconv.FormatFloat(n.Number, 'g', -1, 64)))
	case ir.StringType:
		fmt.Fprintf(w, "%s%s%s\n", indent, keyPrefix, c.get(ir.StringType, attrValue)(strconv.Quote(n.String)))
	case ir.ArrayType:
		fmt.Fprintf(w, "%s%s%s\n", indent, keyPrefix, c.get(ir.ArrayType, attrKey)(fmt.Sprintf("[%d]", len(n.Values))))
		for _, v := range n.Values {
			dump(w, c, v, depth+1, "")
		}
	case ir.ObjectType:
		fmt.Fprintf(w, "%s%s%s\n", indent, keyPrefix, c.get(ir.ObjectType, attrKey)(fmt.Sprintf("{%d}", len(n.Fields))))
		for i, key := range n.Fields {
			prefix := c.get(ir.ObjectType, attrKey)(key) + c.get(ir.ObjectType, attrSep)(": ")
			dump(w, c, n.Values[i], depth+1, prefix)
		}
	}
}
