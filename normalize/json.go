package normalize

import (
	"bytes"
	"fmt"
	"io"

	"github.com/conformat/conform/ir"
	"github.com/segmentio/encoding/json"
)

// FromJSON decodes JSON text directly into an ir.Node tree using a
// streaming token decoder rather than unmarshaling into map[string]any: the
// latter loses object field order (Go maps do not remember insertion
// order), which would defeat the purpose of a format whose tabular and
// object encodings are keyed on that order. segmentio/encoding/json is an
// API-compatible, faster drop-in for encoding/json, so the same
// Decoder.Token() streaming approach applies unchanged.
func FromJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, ir.ErrEmptyInput
		}
		return nil, err
	}
	node, err := decodeToken(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("con: trailing data after JSON value")
	}
	return node, nil
}

func decodeToken(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case float64:
		return fromFloat(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return fromFloat(f), nil
	case string:
		return ir.FromString(t), nil
	case json.Delim:
		switch rune(t) {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
	}
	return nil, fmt.Errorf("con: unexpected JSON token %v", tok)
}

func decodeObject(dec *json.Decoder) (*ir.Node, error) {
	var fields []string
	var values []*ir.Node
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("con: non-string JSON object key %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := decodeToken(dec, valTok)
		if err != nil {
			return nil, err
		}
		fields = append(fields, key)
		values = append(values, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return ir.FromObject(fields, values), nil
}

func decodeArray(dec *json.Decoder) (*ir.Node, error) {
	var values []*ir.Node
	for dec.More() {
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := decodeToken(dec, valTok)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return ir.FromArray(values), nil
}
