package header

import (
	"strconv"
	"strings"

	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/token"
)

// Descriptor is the decomposed form of an array header line.
type Descriptor struct {
	HasKey         bool
	Key            string
	Count          int
	HasCountMarker bool
	Delimiter      byte // one of ',', '\t', '|'; ',' is the default
	HasFields      bool
	Fields         []string
}

const DefaultDelimiter = ','

// Parse attempts to recognize content (a line's indentation-stripped text)
// as an array header. matched is false when content does not even begin to
// look like a header — a leading quoted key not immediately followed by '['
// (e.g. `"weird[key]": x`) or no unquoted '[' at all — in which case the
// caller should try other line
// shapes. Once an unquoted '[' is found, Parse is committed: any further
// structural problem is a hard SyntaxError, per the rule that malformed
// headers are always errors regardless of strict mode.
//
// tail is whatever inline text follows the header's terminating colon
// (possibly empty), used by the caller to decode an InlinePrimitive body on
// the same line.
func Parse(content string, strict bool, lineNo int) (d *Descriptor, tail string, matched bool, err error) {
	if content == "" {
		return nil, "", false, nil
	}
	if content[0] == '"' {
		end := token.FindClosingQuote(content, 0)
		if end < 0 || end+1 >= len(content) || content[end+1] != '[' {
			return nil, "", false, nil
		}
	}
	open := token.FindUnquoted(content, '[', 0)
	if open < 0 {
		return nil, "", false, nil
	}

	keyPart := strings.TrimSpace(content[:open])
	d = &Descriptor{}
	if keyPart != "" {
		key, kerr := token.ParseKey(keyPart, strict, lineNo)
		if kerr != nil {
			return nil, "", false, kerr
		}
		d.HasKey = true
		d.Key = key
	}

	closeIdx := token.FindUnquoted(content, ']', open+1)
	if closeIdx < 0 {
		return nil, "", false, ir.NewSyntaxError(lineNo, 0, "unterminated array header bracket")
	}
	if err := parseBracketInterior(content[open+1:closeIdx], d, lineNo); err != nil {
		return nil, "", false, err
	}

	pos := closeIdx + 1
	if pos < len(content) && content[pos] == '{' {
		braceClose := token.FindUnquoted(content, '}', pos+1)
		if braceClose < 0 {
			return nil, "", false, ir.NewSyntaxError(lineNo, 0, "unterminated tabular field list")
		}
		fields, ferr := parseFieldList(content[pos+1:braceClose], d.Delimiter, strict, lineNo)
		if ferr != nil {
			return nil, "", false, ferr
		}
		d.HasFields = true
		d.Fields = fields
		pos = braceClose + 1
	}

	if pos >= len(content) || content[pos] != ':' {
		return nil, "", false, ir.NewSyntaxError(lineNo, 0, "array header missing terminating ':'")
	}
	pos++
	if pos < len(content) && content[pos] == ' ' {
		pos++
	}
	return d, content[pos:], true, nil
}

func parseBracketInterior(interior string, d *Descriptor, lineNo int) error {
	i := 0
	if i < len(interior) && interior[i] == '#' {
		d.HasCountMarker = true
		i++
	}
	digitsStart := i
	for i < len(interior) && interior[i] >= '0' && interior[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return ir.NewSyntaxError(lineNo, 0, "array header count is not a number: "+interior)
	}
	count, err := strconv.Atoi(interior[digitsStart:i])
	if err != nil || count < 0 {
		return ir.NewSyntaxError(lineNo, 0, "invalid array header count: "+interior)
	}
	d.Count = count

	d.Delimiter = DefaultDelimiter
	rest := interior[i:]
	switch rest {
	case "":
	case "\t":
		d.Delimiter = '\t'
	case "|":
		d.Delimiter = '|'
	default:
		return ir.NewSyntaxError(lineNo, 0, "invalid delimiter hint: "+rest)
	}
	return nil
}

func parseFieldList(seg string, delim byte, strict bool, lineNo int) ([]string, error) {
	if seg == "" {
		return nil, nil
	}
	parts := token.SplitUnquoted(seg, delim)
	fields := make([]string, len(parts))
	for i, p := range parts {
		f, err := token.ParseKey(strings.TrimSpace(p), strict, lineNo)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}
