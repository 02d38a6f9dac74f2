package ir

import "fmt"

// Type is the tag of the Node union.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		return fmt.Sprintf("<invalid type %d>", int(t))
	}
}

// Types returns every Type value, for callers that need to range over the
// whole union.
func Types() []Type {
	return []Type{NullType, BoolType, NumberType, StringType, ArrayType, ObjectType}
}

// Node is a single value in the CON logical tree. Exactly one of the
// per-variant fields is meaningful, selected by Type:
//
//   - NullType:   no fields
//   - BoolType:   Bool
//   - NumberType: Number
//   - StringType: String
//   - ArrayType:  Values
//   - ObjectType: Fields, Values (parallel, same length; Fields[i] is the key
//     for Values[i]; order is insertion order and is significant for output)
type Node struct {
	Type Type

	Bool   bool
	Number float64
	String string

	Fields []string
	Values []*Node
}

func Null() *Node { return &Node{Type: NullType} }

func FromBool(v bool) *Node { return &Node{Type: BoolType, Bool: v} }

func FromNumber(v float64) *Node { return &Node{Type: NumberType, Number: v} }

func FromString(v string) *Node { return &Node{Type: StringType, String: v} }

func FromArray(values []*Node) *Node { return &Node{Type: ArrayType, Values: values} }

// FromObject builds an ObjectType node from parallel key/value slices.
// Panics if the slices differ in length, since that can only happen from a
// programmer error in a component constructing the tree directly (parse and
// normalize always build matched slices).
func FromObject(fields []string, values []*Node) *Node {
	if len(fields) != len(values) {
		panic(fmt.Sprintf("ir: FromObject: %d fields but %d values", len(fields), len(values)))
	}
	return &Node{Type: ObjectType, Fields: fields, Values: values}
}

// Get returns the value bound to key in an ObjectType node, or nil if absent
// or if the node is not an object.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for i, f := range n.Fields {
		if f == key {
			return n.Values[i]
		}
	}
	return nil
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:   n.Type,
		Bool:   n.Bool,
		Number: n.Number,
		String: n.String,
	}
	if n.Fields != nil {
		res.Fields = append([]string(nil), n.Fields...)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Equal reports whether n and o represent the same logical value. Object
// field order matters (it is what a round-trip is required to preserve);
// NaN/Inf never appear in a normalized tree so ordinary float equality
// suffices for Number.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case NullType:
		return true
	case BoolType:
		return n.Bool == o.Bool
	case NumberType:
		return n.Number == o.Number
	case StringType:
		return n.String == o.String
	case ArrayType:
		if len(n.Values) != len(o.Values) {
			return false
		}
		for i := range n.Values {
			if !n.Values[i].Equal(o.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(n.Fields) != len(o.Fields) {
			return false
		}
		for i := range n.Fields {
			if n.Fields[i] != o.Fields[i] {
				return false
			}
			if !n.Values[i].Equal(o.Values[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether n is null, bool, number, or string.
func (n *Node) IsPrimitive() bool {
	switch n.Type {
	case NullType, BoolType, NumberType, StringType:
		return true
	default:
		return false
	}
}
