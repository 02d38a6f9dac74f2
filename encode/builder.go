package encode

import "strings"

const indentUnit = "  "

// builder accumulates rendered lines. Each line already has its leading
// indentation baked in; builder never retroactively reflows a previous
// line except through mergeDashPrefix, which only ever touches the very
// first line of a freshly-rendered sub-builder.
type builder struct {
	lines []string
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func (b *builder) startLine(depth int, text string) {
	b.lines = append(b.lines, indent(depth)+text)
}

func (b *builder) startLineRaw(prefix, text string) {
	b.lines = append(b.lines, prefix+text)
}

func (b *builder) String() string {
	return strings.Join(b.lines, "\n")
}

// mergeDashPrefix appends sub's lines onto b, replacing the indentation of
// sub's first line with a literal "- " at depth. sub must have been
// rendered at depth+1: since the indent unit and "- " are both two
// characters wide, stripping the depth+1 indent and substituting
// indent(depth)+"- " preserves the alignment of every deeper line sub
// already produced.
func mergeDashPrefix(b *builder, depth int, sub *builder) {
	if len(sub.lines) == 0 {
		return
	}
	childIndent := indent(depth + 1)
	first := strings.TrimPrefix(sub.lines[0], childIndent)
	b.lines = append(b.lines, indent(depth)+"- "+first)
	b.lines = append(b.lines, sub.lines[1:]...)
}
