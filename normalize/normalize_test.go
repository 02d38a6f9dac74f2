package normalize

import (
	"math"
	"math/big"
	"strconv"
	"testing"
	"time"

	"github.com/conformat/conform/ir"
)

func TestValuePrimitives(t *testing.T) {
	cases := []struct {
		in   any
		want *ir.Node
	}{
		{nil, ir.Null()},
		{true, ir.FromBool(true)},
		{"hi", ir.FromString("hi")},
		{42, ir.FromNumber(42)},
		{3.5, ir.FromNumber(3.5)},
		{math.Copysign(0, -1), ir.FromNumber(0)},
		{math.NaN(), ir.Null()},
		{math.Inf(1), ir.Null()},
	}
	for _, c := range cases {
		got, err := Value(c.in)
		if err != nil {
			t.Fatalf("Value(%v) error: %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Errorf("Value(%v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestValueBigInteger(t *testing.T) {
	got, err := Value(int64(1) << 60)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType {
		t.Fatalf("expected string for unsafe integer, got %v", got.Type)
	}
	if got.String != "1152921504606846976" {
		t.Fatalf("got %q", got.String)
	}
}

func TestValueSafeInteger(t *testing.T) {
	got, err := Value(int64(1) << 52)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NumberType {
		t.Fatalf("expected number, got %v", got.Type)
	}
}

func TestValueBigIntExact(t *testing.T) {
	bi := new(big.Int).Lsh(big.NewInt(1), 100)
	got, err := Value(bi)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType || got.String != bi.String() {
		t.Fatalf("got %+v, want string %q", got, bi.String())
	}
}

// customBigInt satisfies the Int64()/String() method set without being a
// *big.Int, exercising the duck-typed path rather than the exact type check.
type customBigInt struct{ v int64 }

func (c customBigInt) Int64() int64   { return c.v }
func (c customBigInt) String() string { return strconv.FormatInt(c.v, 10) }

func TestValueDuckTypedBigIntLike(t *testing.T) {
	got, err := Value(customBigInt{v: 1 << 60})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType || got.String != "1152921504606846976" {
		t.Fatalf("got %+v", got)
	}
}

func TestValueDuckTypedBigIntLikeSafeRange(t *testing.T) {
	got, err := Value(customBigInt{v: 42})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NumberType || got.Number != 42 {
		t.Fatalf("got %+v", got)
	}
}

func TestValueBigRatExactFloat(t *testing.T) {
	r := big.NewRat(1, 4)
	got, err := Value(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NumberType || got.Number != 0.25 {
		t.Fatalf("expected number 0.25, got %+v", got)
	}
}

func TestValueBigRatInexactFloat(t *testing.T) {
	r := big.NewRat(1, 3)
	got, err := Value(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType || got.String != r.String() {
		t.Fatalf("expected string %q, got %+v", r.String(), got)
	}
}

// customUnixer satisfies interface{ Unix() int64 } without being time.Time.
type customUnixer struct{ sec int64 }

func (c customUnixer) Unix() int64 { return c.sec }

func TestValueDuckTypedUnixer(t *testing.T) {
	got, err := Value(customUnixer{sec: 1704164645}) // 2024-01-02T03:04:05Z
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType || got.String != "2024-01-02T03:04:05Z" {
		t.Fatalf("got %+v", got)
	}
}

func TestValueMapOrdering(t *testing.T) {
	got, err := Value(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	for i, f := range want {
		if got.Fields[i] != f {
			t.Fatalf("got fields %v, want sorted %v", got.Fields, want)
		}
	}
}

func TestValueSetLike(t *testing.T) {
	got, err := Value(map[string]struct{}{"x": {}, "y": {}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.ArrayType || len(got.Values) != 2 {
		t.Fatalf("expected a 2-element array, got %+v", got)
	}
}

func TestValueStruct(t *testing.T) {
	type Person struct {
		Name string `con:"name"`
		Age  int    `con:"age"`
		secr string
	}
	got, err := Value(Person{Name: "Alice", Age: 30, secr: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Fields) != 2 || got.Fields[0] != "name" || got.Fields[1] != "age" {
		t.Fatalf("got %+v", got)
	}
}

func TestValueTime(t *testing.T) {
	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got, err := Value(tm)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType {
		t.Fatalf("expected string, got %v", got.Type)
	}
}

func TestValueCycleDetection(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	if _, err := Value(m); err != ir.ErrCycleDetected {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
}

func TestValueCycleViaSlice(t *testing.T) {
	s := make([]any, 1)
	s[0] = s
	if _, err := Value(s); err != ir.ErrCycleDetected {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
}

func TestFromJSONPreservesOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range want {
		if node.Fields[i] != f {
			t.Fatalf("got fields %v, want %v", node.Fields, want)
		}
	}
}

func TestFromJSONEmptyInput(t *testing.T) {
	if _, err := FromJSON([]byte("")); err != ir.ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}
