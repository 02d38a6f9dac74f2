package parse

import (
	"log/slog"
	"strings"

	"github.com/conformat/conform/debug"
	"github.com/conformat/conform/header"
	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/line"
	"github.com/conformat/conform/token"
)

// Parse decodes CON text into an ir.Node.
func Parse(text string, opts ...Option) (*ir.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ir.ErrEmptyInput
	}
	st := &state{}
	for _, o := range opts {
		o(st)
	}
	lines, err := line.Split(text, st.strict)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ir.ErrEmptyInput
	}

	p := &parser{lines: lines, st: st}
	node, err := p.parseEntry()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.lines) {
		return nil, ir.NewSyntaxError(p.lines[p.pos].LineNumber, 0, "unexpected trailing content")
	}
	return node, nil
}

type parser struct {
	lines []line.Line
	pos   int
	st    *state
}

func (p *parser) peek() (line.Line, bool) {
	if p.pos >= len(p.lines) {
		return line.Line{}, false
	}
	return p.lines[p.pos], true
}

func isListItemLine(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// parseEntry implements the §4.7 Entry rule.
func (p *parser) parseEntry() (*ir.Node, error) {
	first := p.lines[0]
	hd, tail, matched, err := header.Parse(first.Content, p.st.strict, first.LineNumber)
	if err != nil {
		return nil, err
	}
	if matched && !hd.HasKey {
		p.pos = 1
		return p.parseArrayBody(0, hd, tail)
	}

	if len(p.lines) == 1 {
		isKeyValue := matched && hd.HasKey
		if !matched {
			isKeyValue = token.FindUnquoted(first.Content, ':', 0) >= 0
		}
		if !isKeyValue {
			p.pos = 1
			return parsePrimitiveToken(first.Content, first.LineNumber)
		}
	}
	return p.parseObject(0)
}

// parseObject consumes every line at depth d belonging to one object.
func (p *parser) parseObject(d int) (*ir.Node, error) {
	var fields []string
	var values []*ir.Node
	for {
		ln, ok := p.peek()
		if !ok || ln.Depth != d || isListItemLine(ln.Content) {
			break
		}
		hd, tail, matched, err := header.Parse(ln.Content, p.st.strict, ln.LineNumber)
		if err != nil {
			return nil, err
		}
		if matched && !hd.HasKey {
			break // a headless array header does not belong to an object scan
		}
		p.pos++

		var key string
		var val *ir.Node
		if matched {
			key = hd.Key
			val, err = p.parseArrayBody(d, hd, tail)
		} else {
			key, val, err = p.parsePlainKeyValue(ln.Content, ln.LineNumber, d)
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, key)
		values = append(values, val)
	}
	return ir.FromObject(fields, values), nil
}

// parsePlainKeyValue decodes a non-header "key: value" line at depth d,
// recursing into a nested object at d+1 when the value is absent.
func (p *parser) parsePlainKeyValue(content string, lineNo, d int) (string, *ir.Node, error) {
	colon := token.FindUnquoted(content, ':', 0)
	if colon < 0 {
		return "", nil, ir.NewSyntaxError(lineNo, 0, "expected a key-value line: "+content)
	}
	keyPart := strings.TrimSpace(content[:colon])
	key, err := token.ParseKey(keyPart, p.st.strict, lineNo)
	if err != nil {
		return "", nil, err
	}
	rest := strings.TrimSpace(content[colon+1:])
	if rest != "" {
		v, err := parsePrimitiveToken(rest, lineNo)
		return key, v, err
	}
	if nxt, ok := p.peek(); ok && nxt.Depth > d {
		child, err := p.parseObject(d + 1)
		return key, child, err
	}
	return key, ir.FromObject(nil, nil), nil
}

// parseArrayBody decodes the body of an array whose header (descriptor d,
// inline tail) was just consumed; baseDepth is the header line's own depth,
// so any body lines live at baseDepth+1.
func (p *parser) parseArrayBody(baseDepth int, d *header.Descriptor, tail string) (*ir.Node, error) {
	switch {
	case tail != "":
		p.logDispatch("inline", d)
		return p.parseInlineBody(d, tail)
	case d.HasFields:
		p.logDispatch("tabular", d)
		return p.parseTabularBody(baseDepth+1, d)
	case d.Count == 0:
		p.logDispatch("empty", d)
		return ir.FromArray(nil), nil
	default:
		p.logDispatch("list", d)
		return p.parseListBody(baseDepth+1, d)
	}
}

// logDispatch records the line-shape dispatch decision for an array header
// when CON_DEBUG_PARSE is set.
func (p *parser) logDispatch(kind string, d *header.Descriptor) {
	if !debug.Parse() {
		return
	}
	slog.Debug("con: array header dispatched", "kind", kind, "key", d.Key, "count", d.Count, "fields", d.Fields)
}

func (p *parser) parseInlineBody(d *header.Descriptor, tail string) (*ir.Node, error) {
	parts := token.SplitUnquoted(tail, d.Delimiter)
	values := make([]*ir.Node, len(parts))
	for i, part := range parts {
		v, err := parsePrimitiveToken(strings.TrimSpace(part), 0)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	if p.st.strict && len(values) != d.Count {
		return nil, ir.NewCountMismatch("inline", d.Count, len(values), 0)
	}
	return ir.FromArray(values), nil
}

func looksLikeDataRow(content string, delim byte) bool {
	colon := token.FindUnquoted(content, ':', 0)
	if colon < 0 {
		return true
	}
	delimIdx := token.FindUnquoted(content, delim, 0)
	return delimIdx >= 0 && delimIdx < colon
}

func (p *parser) parseTabularBody(depth int, d *header.Descriptor) (*ir.Node, error) {
	var rows []*ir.Node
	for {
		ln, ok := p.peek()
		if !ok || ln.Depth != depth || isListItemLine(ln.Content) || !looksLikeDataRow(ln.Content, d.Delimiter) {
			break
		}
		p.pos++
		parts := token.SplitUnquoted(ln.Content, d.Delimiter)
		if p.st.strict && len(parts) != len(d.Fields) {
			return nil, ir.NewCountMismatch("tabular", len(d.Fields), len(parts), ln.LineNumber)
		}
		values := make([]*ir.Node, len(d.Fields))
		for i := range d.Fields {
			if i < len(parts) {
				v, err := parsePrimitiveToken(strings.TrimSpace(parts[i]), ln.LineNumber)
				if err != nil {
					return nil, err
				}
				values[i] = v
			} else {
				values[i] = ir.FromString("")
			}
		}
		rows = append(rows, ir.FromObject(append([]string(nil), d.Fields...), values))
	}
	if p.st.strict && len(rows) != d.Count {
		return nil, ir.NewCountMismatch("tabular", d.Count, len(rows), 0)
	}
	return ir.FromArray(rows), nil
}

func (p *parser) parseListBody(depth int, d *header.Descriptor) (*ir.Node, error) {
	var items []*ir.Node
	for {
		ln, ok := p.peek()
		if !ok || ln.Depth != depth || !isListItemLine(ln.Content) {
			break
		}
		p.pos++
		item, err := p.parseListItem(depth, ln)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if p.st.strict && len(items) != d.Count {
		return nil, ir.NewCountMismatch("list", d.Count, len(items), 0)
	}
	return ir.FromArray(items), nil
}

// parseListItem decodes one "- ..." line at listDepth (ln's own depth),
// which was already consumed by the caller.
func (p *parser) parseListItem(listDepth int, ln line.Line) (*ir.Node, error) {
	if ln.Content == "-" {
		return ir.FromObject(nil, nil), nil
	}
	remainder := strings.TrimPrefix(ln.Content, "- ")

	hd, tail, matched, err := header.Parse(remainder, p.st.strict, ln.LineNumber)
	if err != nil {
		return nil, err
	}
	if matched && !hd.HasKey {
		// A bare array item: its body (if any) sits one level deeper than a
		// normal key-value pair's would, since the dash line itself already
		// occupies the position an ordinary depth-(listDepth+1) line would.
		return p.parseArrayBody(listDepth+1, hd, tail)
	}

	isObjectLine := matched && hd.HasKey
	if !isObjectLine {
		isObjectLine = token.FindUnquoted(remainder, ':', 0) >= 0
	}
	if !isObjectLine {
		return parsePrimitiveToken(remainder, ln.LineNumber)
	}

	var key string
	var val *ir.Node
	if matched {
		key = hd.Key
		val, err = p.parseArrayBody(listDepth+1, hd, tail)
	} else {
		key, val, err = p.parsePlainKeyValue(remainder, ln.LineNumber, listDepth+1)
	}
	if err != nil {
		return nil, err
	}
	fields := []string{key}
	values := []*ir.Node{val}

	for {
		n2, ok := p.peek()
		if !ok || n2.Depth != listDepth+1 || isListItemLine(n2.Content) {
			break
		}
		hd2, tail2, matched2, err := header.Parse(n2.Content, p.st.strict, n2.LineNumber)
		if err != nil {
			return nil, err
		}
		if matched2 && !hd2.HasKey {
			break
		}
		p.pos++
		var k2 string
		var v2 *ir.Node
		if matched2 {
			k2 = hd2.Key
			v2, err = p.parseArrayBody(listDepth+1, hd2, tail2)
		} else {
			k2, v2, err = p.parsePlainKeyValue(n2.Content, n2.LineNumber, listDepth+1)
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, k2)
		values = append(values, v2)
	}
	return ir.FromObject(fields, values), nil
}

// parsePrimitiveToken implements the §4.7 primitive-token grammar.
func parsePrimitiveToken(s string, lineNo int) (*ir.Node, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ir.FromString(""), nil
	}
	if s[0] == '"' {
		end := token.FindClosingQuote(s, 0)
		if end < 0 {
			return nil, ir.NewSyntaxError(lineNo, 0, "unterminated quoted string")
		}
		if end != len(s)-1 {
			return nil, ir.NewSyntaxError(lineNo, 0, "trailing content after quoted string")
		}
		v, err := token.Unquote(s)
		if err != nil {
			return nil, ir.NewSyntaxError(lineNo, 0, err.Error())
		}
		return ir.FromString(v), nil
	}
	if token.IsBoolOrNullLiteral(s) {
		switch s {
		case "true":
			return ir.FromBool(true), nil
		case "false":
			return ir.FromBool(false), nil
		default:
			return ir.Null(), nil
		}
	}
	if f, ok := token.ParseNumberToken(s); ok {
		return ir.FromNumber(f), nil
	}
	return ir.FromString(s), nil
}
