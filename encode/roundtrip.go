package encode

import (
	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/parse"
)

// roundTripParse backs the strict_arrays self-check: it re-parses Emit's own
// output the same way any other consumer would. A non-nil error or a
// mismatched tree means the emitter and parser have drifted apart on some
// construct, which strict_arrays exists to catch before the caller ships
// the text anywhere.
func roundTripParse(text string) (*ir.Node, error) {
	return parse.Parse(text)
}
