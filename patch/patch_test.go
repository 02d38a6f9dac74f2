package patch

import (
	"testing"

	"github.com/conformat/conform/ir"
	"github.com/google/go-cmp/cmp"
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

func TestApplyReplace(t *testing.T) {
	doc := obj("name", ir.FromString("atlas"), "version", ir.FromNumber(1))
	patchJSON := []byte(`[{"op":"replace","path":"/version","value":2}]`)
	got, err := Apply(doc, patchJSON)
	if err != nil {
		t.Fatal(err)
	}
	want := obj("name", ir.FromString("atlas"), "version", ir.FromNumber(2))
	if !got.Equal(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyAdd(t *testing.T) {
	doc := obj("name", ir.FromString("atlas"))
	patchJSON := []byte(`[{"op":"add","path":"/tags","value":["x","y"]}]`)
	got, err := Apply(doc, patchJSON)
	if err != nil {
		t.Fatal(err)
	}
	want := obj("name", ir.FromString("atlas"), "tags", ir.FromArray([]*ir.Node{ir.FromString("x"), ir.FromString("y")}))
	if !got.Equal(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyRemove(t *testing.T) {
	doc := obj("name", ir.FromString("atlas"), "legacy", ir.FromBool(true))
	patchJSON := []byte(`[{"op":"remove","path":"/legacy"}]`)
	got, err := Apply(doc, patchJSON)
	if err != nil {
		t.Fatal(err)
	}
	want := obj("name", ir.FromString("atlas"))
	if !got.Equal(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	doc := obj("version", ir.FromNumber(1))
	clone := doc.Clone()
	patchJSON := []byte(`[{"op":"replace","path":"/version","value":9}]`)
	if _, err := Apply(doc, patchJSON); err != nil {
		t.Fatal(err)
	}
	if !doc.Equal(clone) {
		t.Fatalf("source mutated: got %+v, want unchanged %+v", doc, clone)
	}
}

func TestApplyInvalidPatchErrors(t *testing.T) {
	doc := obj("version", ir.FromNumber(1))
	if _, err := Apply(doc, []byte(`not json`)); err == nil {
		t.Fatal("expected error for malformed patch document")
	}
}

func TestApplyLenientToleratesMissingRemovePath(t *testing.T) {
	doc := obj("name", ir.FromString("atlas"))
	patchJSON := []byte(`[{"op":"remove","path":"/missing"}]`)
	got, err := ApplyLenient(doc, patchJSON)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc.ToAny(), got.ToAny()); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}
