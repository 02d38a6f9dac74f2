// Package encode implements the CON emitter: recursive descent over an
// ir.Node tree, driven by the shape classifier and a depth-tracking line
// builder, producing the indentation-structured text described in spec §4.4.
//
// Emission is a pure function of (node, options): for the same input it
// writes byte-for-byte identical output on every call (no goroutines, no
// randomized map iteration — Fields/Values order is already fixed on the
// tree by the time encode sees it).
package encode
