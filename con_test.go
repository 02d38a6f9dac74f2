package con

import "testing"

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	in := map[string]any{"name": "atlas", "version": float64(2)}
	text, err := Serialize(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Deserialize(text)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", out)
	}
	if m["name"] != "atlas" || m["version"] != float64(2) {
		t.Fatalf("got %+v", m)
	}
}

func TestSerializeSlice(t *testing.T) {
	text, err := Serialize([]any{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	out, err := Deserialize(text)
	if err != nil {
		t.Fatal(err)
	}
	vals, ok := out.([]any)
	if !ok || len(vals) != 3 {
		t.Fatalf("got %+v", out)
	}
}

func TestDeserializeInvalidTextErrors(t *testing.T) {
	if _, err := Deserialize(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestCountTokens(t *testing.T) {
	conText, err := Serialize(map[string]any{"name": "atlas"})
	if err != nil {
		t.Fatal(err)
	}
	result, err := CountTokens(conText, `{"name":"atlas"}`)
	if err != nil {
		t.Fatal(err)
	}
	if result.CON.Chars == 0 || result.JSON.Chars == 0 {
		t.Fatalf("got %+v", result)
	}
}
