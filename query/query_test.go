package query

import (
	"testing"

	"github.com/conformat/conform/ir"
)

func obj(fields ...any) *ir.Node {
	var keys []string
	var values []*ir.Node
	for i := 0; i < len(fields); i += 2 {
		keys = append(keys, fields[i].(string))
		values = append(values, fields[i+1].(*ir.Node))
	}
	return ir.FromObject(keys, values)
}

func TestSelectTopLevelField(t *testing.T) {
	doc := obj("age", ir.FromNumber(21))
	got, err := Select(doc, "age > 18")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.BoolType || !got.Bool {
		t.Fatalf("got %+v", got)
	}
}

func TestSelectDollarBinding(t *testing.T) {
	doc := obj("age", ir.FromNumber(21))
	got, err := Select(doc, "$.age")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NumberType || got.Number != 21 {
		t.Fatalf("got %+v", got)
	}
}

func TestSelectFilterArray(t *testing.T) {
	doc := ir.FromArray([]*ir.Node{
		obj("name", ir.FromString("a"), "age", ir.FromNumber(12)),
		obj("name", ir.FromString("b"), "age", ir.FromNumber(21)),
	})
	got, err := Select(doc, "filter($, {.age > 18})")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.ArrayType || len(got.Values) != 1 {
		t.Fatalf("got %+v", got)
	}
	if got.Values[0].Get("name").String != "b" {
		t.Fatalf("got %+v", got)
	}
}

func TestBoolConvenience(t *testing.T) {
	doc := obj("age", ir.FromNumber(21))
	ok, err := Bool(doc, "age >= 18")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected true")
	}
}

func TestBoolErrorsOnNonBoolResult(t *testing.T) {
	doc := obj("age", ir.FromNumber(21))
	if _, err := Bool(doc, "age"); err == nil {
		t.Fatal("expected error for non-bool result")
	}
}

func TestSelectInvalidExpressionErrors(t *testing.T) {
	doc := obj("age", ir.FromNumber(21))
	if _, err := Select(doc, "age >"); err == nil {
		t.Fatal("expected compile error")
	}
}
