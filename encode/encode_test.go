package encode

import (
	"testing"

	"github.com/conformat/conform/ir"
)

func obj(fields ...any) *ir.Node {
	var f []string
	var v []*ir.Node
	for i := 0; i < len(fields); i += 2 {
		f = append(f, fields[i].(string))
		v = append(v, fields[i+1].(*ir.Node))
	}
	return ir.FromObject(f, v)
}

func TestEmitInlinePrimitiveArray(t *testing.T) {
	n := obj("nums", ir.FromArray([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2), ir.FromNumber(3)}))
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "nums[3]: 1,2,3"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitTabular(t *testing.T) {
	rows := ir.FromArray([]*ir.Node{
		obj("id", ir.FromNumber(1), "name", ir.FromString("a")),
		obj("id", ir.FromNumber(2), "name", ir.FromString("b")),
	})
	n := obj("items", rows)
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "items[2]{id,name}:\n  1,a\n  2,b"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitTabularBelowMinLengthFallsBackToMixed(t *testing.T) {
	rows := ir.FromArray([]*ir.Node{
		obj("id", ir.FromNumber(1)),
	})
	n := obj("items", rows)
	got, err := EmitString(n, MinTabularLength(2))
	if err != nil {
		t.Fatal(err)
	}
	want := "items[1]:\n  - id: 1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitListOfPrimArrays(t *testing.T) {
	rows := ir.FromArray([]*ir.Node{
		ir.FromArray([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2)}),
		ir.FromArray([]*ir.Node{ir.FromNumber(3), ir.FromNumber(4)}),
	})
	n := obj("pairs", rows)
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "pairs[2]:\n  - [2]: 1,2\n  - [2]: 3,4"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitMixedListWithObjectItems(t *testing.T) {
	rows := ir.FromArray([]*ir.Node{
		ir.FromNumber(1),
		ir.FromString("x"),
		obj("k", ir.FromBool(true)),
	})
	n := obj("mixed", rows)
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "mixed[3]:\n  - 1\n  - x\n  - k: true"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitMixedListObjectItemWithMultipleKeys(t *testing.T) {
	rows := ir.FromArray([]*ir.Node{
		obj("a", ir.FromNumber(1), "b", ir.FromNumber(2)),
	})
	n := obj("mixed", rows)
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "mixed[1]:\n  - a: 1\n    b: 2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitEmptyArray(t *testing.T) {
	n := obj("xs", ir.FromArray(nil))
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "xs[0]:" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitNestedObject(t *testing.T) {
	n := obj("a", obj("b", ir.FromNumber(1)))
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "a:\n  b: 1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitRootPrimitive(t *testing.T) {
	got, err := EmitString(ir.FromNumber(42))
	if err != nil {
		t.Fatal(err)
	}
	if got != "42" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitRootHeadlessArray(t *testing.T) {
	n := ir.FromArray([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2)})
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[2]: 1,2" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitQuotesUnsafeString(t *testing.T) {
	n := obj("s", ir.FromString("has: colon"))
	got, err := EmitString(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != `s: "has: colon"` {
		t.Fatalf("got %q", got)
	}
}

func TestEmitCustomDelimiter(t *testing.T) {
	n := obj("nums", ir.FromArray([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2)}))
	got, err := EmitString(n, Delimiter('|'))
	if err != nil {
		t.Fatal(err)
	}
	if got != "nums[2|]: 1|2" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitStrictArraysSelfCheckPasses(t *testing.T) {
	n := obj("nums", ir.FromArray([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2)}))
	if _, err := EmitString(n, StrictArrays(true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
