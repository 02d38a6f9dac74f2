// Package query evaluates an expr-lang/expr expression against an ir.Node
// tree, with the document bound to $ as a native Go value (via ir.ToAny).
// It is read-only: the expression is compiled and run to completion inside
// the call, nothing mutates the input and no goroutines are spawned.
package query
