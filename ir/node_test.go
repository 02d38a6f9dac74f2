package ir

import "testing"

func TestEqual(t *testing.T) {
	a := FromObject([]string{"name", "age"}, []*Node{FromString("Alice"), FromNumber(30)})
	b := FromObject([]string{"name", "age"}, []*Node{FromString("Alice"), FromNumber(30)})
	c := FromObject([]string{"age", "name"}, []*Node{FromNumber(30), FromString("Alice")})

	if !a.Equal(b) {
		t.Fatalf("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Fatalf("expected field order to matter: a should not equal c")
	}
}

func TestCloneIndependence(t *testing.T) {
	a := FromArray([]*Node{FromNumber(1), FromNumber(2)})
	b := a.Clone()
	b.Values[0].Number = 99
	if a.Values[0].Number == 99 {
		t.Fatalf("Clone must deep-copy Values")
	}
}

func TestGet(t *testing.T) {
	obj := FromObject([]string{"a", "b"}, []*Node{FromNumber(1), FromNumber(2)})
	if obj.Get("b").Number != 2 {
		t.Fatalf("Get(b) = %v, want 2", obj.Get("b"))
	}
	if obj.Get("missing") != nil {
		t.Fatalf("Get(missing) should be nil")
	}
}
