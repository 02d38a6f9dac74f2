// Package shape classifies an array value into one of the five encodings
// the emitter knows how to produce, and that the parser's header/body
// dispatch implicitly recognizes again on the way back in.
package shape
