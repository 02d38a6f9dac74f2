package shape

import (
	"log/slog"

	"github.com/conformat/conform/debug"
	"github.com/conformat/conform/ir"
)

// Shape is the emitter/parser's shared classification of an array's body
// form.
type Shape int

const (
	Empty Shape = iota
	InlinePrimitive
	Tabular
	ListOfPrimArrays
	MixedList
)

func (s Shape) String() string {
	switch s {
	case Empty:
		return "empty"
	case InlinePrimitive:
		return "inline-primitive"
	case Tabular:
		return "tabular"
	case ListOfPrimArrays:
		return "list-of-prim-arrays"
	case MixedList:
		return "mixed-list"
	default:
		return "unknown"
	}
}

// Classify decides the shape of an ArrayType node's Values. When the shape
// is Tabular, columns holds the column order (the first element's key
// insertion order); columns is nil for every other shape.
//
// Ties break in the declaration order above: Tabular is preferred over
// MixedList when the array is eligible for both (which cannot actually
// happen given the definitions below, but the preference is stated
// explicitly per spec so implementations agree on the tie-break even if
// they generalize the shapes differently).
func Classify(values []*ir.Node) (s Shape, columns []string) {
	s, columns = classify(values)
	if debug.Shape() {
		slog.Debug("con: array shape classified", "shape", s, "elements", len(values), "columns", columns)
	}
	return s, columns
}

func classify(values []*ir.Node) (Shape, []string) {
	if len(values) == 0 {
		return Empty, nil
	}
	if allPrimitive(values) {
		return InlinePrimitive, nil
	}
	if cols, ok := tabularColumns(values); ok {
		return Tabular, cols
	}
	if allInlinePrimitiveArrays(values) {
		return ListOfPrimArrays, nil
	}
	return MixedList, nil
}

func allPrimitive(values []*ir.Node) bool {
	for _, v := range values {
		if !v.IsPrimitive() {
			return false
		}
	}
	return true
}

// tabularColumns reports whether values is an array of uniform
// primitive-valued objects, and if so returns the column order.
func tabularColumns(values []*ir.Node) ([]string, bool) {
	first := values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil, false
	}
	cols := first.Fields
	for _, row := range values {
		if row.Type != ir.ObjectType {
			return nil, false
		}
		if len(row.Fields) != len(cols) {
			return nil, false
		}
		for _, col := range cols {
			v := row.Get(col)
			if v == nil || !v.IsPrimitive() {
				return nil, false
			}
		}
	}
	return cols, true
}

func allInlinePrimitiveArrays(values []*ir.Node) bool {
	for _, v := range values {
		if v.Type != ir.ArrayType {
			return false
		}
		if len(v.Values) == 0 {
			return false
		}
		if !allPrimitive(v.Values) {
			return false
		}
	}
	return true
}
