package line

import (
	"strings"

	"github.com/conformat/conform/ir"
)

// IndentSize is the fixed two-space indentation unit.
const IndentSize = 2

// Line is one non-blank record produced by Split.
type Line struct {
	Raw        string
	Indent     int
	Content    string
	Depth      int
	LineNumber int // 1-based
}

// Split splits text on '\n' into Line records, skipping blank (all
// whitespace) lines. In strict mode, a tab anywhere in a line's leading
// indentation, or an indent width that is not an exact multiple of
// IndentSize, is a syntax error. In non-strict mode any indentation is
// accepted and depth rounds down.
func Split(text string, strict bool) ([]Line, error) {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		lineNo := i + 1
		if strings.TrimSpace(r) == "" {
			continue
		}
		indent := leadingSpaces(r)
		if strict {
			if strings.ContainsRune(r[:indent], '\t') {
				return nil, ir.NewSyntaxError(lineNo, 0, "tab character in indentation")
			}
			if indent%IndentSize != 0 {
				return nil, ir.NewSyntaxError(lineNo, 0, "indentation is not a multiple of 2 spaces")
			}
		}
		lines = append(lines, Line{
			Raw:        r,
			Indent:     indent,
			Content:    r[indent:],
			Depth:      indent / IndentSize,
			LineNumber: lineNo,
		})
	}
	return lines, nil
}

func leadingSpaces(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
