package query

import (
	"log/slog"

	"github.com/conformat/conform/debug"
	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/normalize"

	"github.com/expr-lang/expr"
	"github.com/pkg/errors"
)

// Select compiles expression with expr-lang/expr and runs it against doc,
// converted to a native any tree via ir.ToAny. The whole document is bound
// to the identifier $; when doc is an object, its top-level fields are also
// bound directly so "age > 18" and "$.age > 18" both work. The result is
// normalized back into an ir.Node.
func Select(doc *ir.Node, expression string) (*ir.Node, error) {
	root := doc.ToAny()
	env := map[string]any{"$": root}
	if m, ok := root.(map[string]any); ok {
		for k, v := range m {
			if _, exists := env[k]; !exists {
				env[k] = v
			}
		}
	}

	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if debug.Query() {
		slog.Debug("con: query evaluated", "expression", expression, "result", result)
	}
	return normalize.Value(result)
}

// Bool is a convenience wrapper for predicate expressions: it runs Select
// and requires the resulting node to be a bool, returning it as a plain Go
// bool.
func Bool(doc *ir.Node, expression string) (bool, error) {
	node, err := Select(doc, expression)
	if err != nil {
		return false, err
	}
	if node.Type != ir.BoolType {
		return false, errors.Errorf("con: query expression %q did not evaluate to a bool, got %s", expression, node.Type)
	}
	return node.Bool, nil
}
