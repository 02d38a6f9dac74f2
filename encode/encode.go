package encode

import (
	"fmt"
	"io"

	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/shape"
)

// Emit writes node to w in CON text form.
func Emit(node *ir.Node, w io.Writer, opts ...Option) error {
	text, err := EmitString(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// EmitString renders node to a CON document and returns it.
func EmitString(node *ir.Node, opts ...Option) (string, error) {
	st := newState()
	for _, o := range opts {
		o(st)
	}

	b := &builder{}
	emitTop(b, node, st)
	text := b.String()

	if st.strictArrays {
		if err := verifyRoundTrip(node, text); err != nil {
			return "", err
		}
	}
	return text, nil
}

func emitTop(b *builder, node *ir.Node, st *state) {
	switch node.Type {
	case ir.ArrayType:
		emitArray(b, 0, "", node, st, nil)
	case ir.ObjectType:
		emitObjectMembers(b, 0, node, st)
	default:
		b.startLine(0, primitiveToken(node, st.delim))
	}
}

func emitObjectMembers(b *builder, depth int, obj *ir.Node, st *state) {
	for i, key := range obj.Fields {
		emitKeyValue(b, depth, key, obj.Values[i], st, nil)
	}
}

// emitKeyValue writes one key/value pair. firstPrefix, when non-nil,
// overrides the indentation of the single line this call writes directly
// (used by emitListItem to splice in a "- " dash instead of plain indent);
// everything emitKeyValue recurses into keeps using depth-based indent.
func emitKeyValue(b *builder, depth int, key string, value *ir.Node, st *state, firstPrefix *string) {
	encKey := encodeKeyToken(key)
	prefix := indent(depth)
	if firstPrefix != nil {
		prefix = *firstPrefix
	}

	switch value.Type {
	case ir.ArrayType:
		emitArrayPrefixed(b, depth, encKey, value, st, prefix)
	case ir.ObjectType:
		b.startLineRaw(prefix, encKey+":")
		if len(value.Fields) > 0 {
			emitObjectMembers(b, depth+1, value, st)
		}
	default:
		b.startLineRaw(prefix, encKey+": "+primitiveToken(value, st.delim))
	}
}

// emitArray renders a headless or keyed array at depth, with the header
// line using plain depth-based indentation.
func emitArray(b *builder, depth int, key string, node *ir.Node, st *state, firstPrefix *string) {
	emitArrayPrefixed(b, depth, key, node, st, prefixOrDefault(firstPrefix, depth))
}

func prefixOrDefault(firstPrefix *string, depth int) string {
	if firstPrefix != nil {
		return *firstPrefix
	}
	return indent(depth)
}

func emitArrayPrefixed(b *builder, depth int, key string, node *ir.Node, st *state, headerPrefix string) {
	sh, cols := classifyWithMinLength(node.Values, st)
	headerText := buildHeaderText(key, len(node.Values), sh == shape.Tabular, cols, st)

	switch sh {
	case shape.Empty:
		b.startLineRaw(headerPrefix, headerText)
	case shape.InlinePrimitive:
		b.startLineRaw(headerPrefix, headerText+" "+joinValues(node.Values, st.delim))
	case shape.Tabular:
		b.startLineRaw(headerPrefix, headerText)
		for _, row := range node.Values {
			b.startLine(depth+1, joinRow(row, cols, st.delim))
		}
	case shape.ListOfPrimArrays:
		b.startLineRaw(headerPrefix, headerText)
		for _, elem := range node.Values {
			emitInlineArrayDashItem(b, depth+1, elem, st)
		}
	case shape.MixedList:
		b.startLineRaw(headerPrefix, headerText)
		for _, elem := range node.Values {
			emitListItem(b, depth+1, elem, st)
		}
	}
}

// classifyWithMinLength applies the MinTabularLength option on top of
// shape.Classify: an otherwise-tabular array shorter than the configured
// minimum is demoted to a mixed list instead, since it is never eligible
// for ListOfPrimArrays or InlinePrimitive (those require non-object
// elements, which would already have prevented a Tabular classification).
func classifyWithMinLength(values []*ir.Node, st *state) (shape.Shape, []string) {
	sh, cols := shape.Classify(values)
	if sh == shape.Tabular && len(values) < st.minTabularLength {
		return shape.MixedList, nil
	}
	return sh, cols
}

func emitInlineArrayDashItem(b *builder, depth int, elem *ir.Node, st *state) {
	headerText := buildHeaderText("", len(elem.Values), false, nil, st)
	b.startLine(depth, "- "+headerText+" "+joinValues(elem.Values, st.delim))
}

// emitListItem writes one element of a mixed list at depth (the line
// carrying the leading "- ").
func emitListItem(b *builder, depth int, node *ir.Node, st *state) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			b.startLine(depth, "-")
			return
		}
		sub := &builder{}
		emitKeyValue(sub, depth+1, node.Fields[0], node.Values[0], st, nil)
		mergeDashPrefix(b, depth, sub)
		if len(node.Fields) > 1 {
			rest := ir.FromObject(node.Fields[1:], node.Values[1:])
			emitObjectMembers(b, depth+1, rest, st)
		}
	case ir.ArrayType:
		sub := &builder{}
		emitArray(sub, depth+1, "", node, st, nil)
		mergeDashPrefix(b, depth, sub)
	default:
		b.startLine(depth, "- "+primitiveToken(node, st.delim))
	}
}

func verifyRoundTrip(node *ir.Node, text string) error {
	got, err := roundTripParse(text)
	if err != nil {
		return fmt.Errorf("con: strict_arrays self-check: re-parsing emitted output failed: %w", err)
	}
	if !node.Equal(got) {
		return fmt.Errorf("con: strict_arrays self-check: re-parsed value does not match source tree")
	}
	return nil
}
