package encode

import "github.com/conformat/conform/header"

// Option configures a single Emit call.
type Option func(*state)

type state struct {
	delim            byte
	pretty           bool
	strictArrays     bool
	minTabularLength int
	countMarker      bool
}

func newState() *state {
	return &state{
		delim:            header.DefaultDelimiter,
		pretty:           true,
		minTabularLength: 2,
	}
}

// Delimiter sets the field separator used inside array headers and array
// bodies. Only ',', '\t', and '|' are meaningful; any other byte is written
// into the header's bracket hint, which the parser then rejects as an
// invalid delimiter hint, so callers should stick to those three.
func Delimiter(d byte) Option {
	return func(s *state) { s.delim = d }
}

// Pretty is reserved for a future non-canonical layout mode. CON has exactly
// one emitted form today, so this is currently a no-op.
func Pretty(v bool) Option {
	return func(s *state) { s.pretty = v }
}

// StrictArrays makes Emit re-parse its own output and compare it against the
// source tree before returning, failing loudly if the two disagree instead
// of silently shipping a non-round-tripping document.
func StrictArrays(v bool) Option {
	return func(s *state) { s.strictArrays = v }
}

// MinTabularLength sets the minimum element count an object-array must have
// to be written in tabular form; shorter arrays of uniform objects fall back
// to a mixed list instead, since the header-plus-rows overhead isn't worth
// it for very short arrays. The default of 2 leaves only single-row arrays
// as mixed lists.
func MinTabularLength(n int) Option {
	return func(s *state) { s.minTabularLength = n }
}

// CountMarker makes every emitted array header include the optional '#'
// count-marker prefix (e.g. "[#3]:"). Off by default.
func CountMarker(v bool) Option {
	return func(s *state) { s.countMarker = v }
}
