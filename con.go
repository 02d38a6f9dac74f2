package con

import (
	"github.com/conformat/conform/encode"
	"github.com/conformat/conform/normalize"
	"github.com/conformat/conform/parse"
	"github.com/conformat/conform/tokencount"

	"github.com/pkg/errors"
)

// Serialize normalizes v (see normalize.Value for the accepted input
// domain) and emits it as CON text.
func Serialize(v any, opts ...encode.Option) (string, error) {
	node, err := normalize.Value(v)
	if err != nil {
		return "", errors.WithStack(err)
	}
	text, err := encode.EmitString(node, opts...)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return text, nil
}

// Deserialize parses CON text and returns the result as a plain Go value
// (nil, bool, float64, string, []any, map[string]any), matching the shape
// encoding/json.Unmarshal would produce into an any. Object key order is
// not preserved in the returned value; callers that need it should call
// parse.Parse directly and work with the returned *ir.Node.
func Deserialize(text string, opts ...parse.Option) (any, error) {
	node, err := parse.Parse(text, opts...)
	if err != nil {
		return nil, err
	}
	return node.ToAny(), nil
}

// CountTokens estimates the token and character savings of conText over an
// equivalent jsonText rendering of the same document. tok defaults to
// tokencount.DefaultTokenizer when omitted.
func CountTokens(conText, jsonText string, tok ...tokencount.Tokenizer) (tokencount.Result, error) {
	return tokencount.Count(conText, jsonText, tok...), nil
}
