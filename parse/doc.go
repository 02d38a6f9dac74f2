// Package parse implements the CON parser: a recursive descent over the
// line.Line stream produced by the line model, dispatching on header shape,
// key-value line, list-item prefix, and tabular data row, per spec §4.7.
//
// The parser holds one piece of mutable state, a cursor into the line
// slice, and never backtracks it past a line once consumed — every
// ambiguity is resolved by a single line of lookahead (header.Parse's
// "matched" result, or the data-row/list-item prefix tests), never by
// trial-and-error.
package parse
