package services

import (
	"encoding/json"
	"testing"
)

func TestDecodeOrderedObject_KeepsFileOrder(t *testing.T) {
	entries, err := decodeOrderedObject([]byte(`{"z": 1, "a": {"x": [1, 2]}, "m": "s"}`))
	if err != nil {
		t.Fatalf("decodeOrderedObject error: %v", err)
	}
	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Errorf("keys = %v, want [z a m]", keys)
	}
	if string(entries[1].Value) != `{"x": [1, 2]}` {
		t.Errorf("value = %s", entries[1].Value)
	}
}

func TestDecodeOrderedObject_Errors(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `{"a": 1`, `{"a": 1} {"b": 2}`, ``} {
		if _, err := decodeOrderedObject([]byte(input)); err == nil {
			t.Errorf("decodeOrderedObject(%q) expected error", input)
		}
	}
}

func TestFlexID(t *testing.T) {
	tests := []struct {
		input string
		want  FlexID
		str   string
	}{
		{`3`, FlexID{Value: 3, Valid: true}, "3"},
		{`"12"`, FlexID{Value: 12, Valid: true}, "12"},
		{`" 7 "`, FlexID{Value: 7, Valid: true}, "7"},
		{`4.0`, FlexID{Value: 4, Valid: true}, "4"},
		{`4.5`, FlexID{}, "-"},
		{`"abc"`, FlexID{}, "-"},
		{`null`, FlexID{}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var id FlexID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if id != tt.want {
				t.Errorf("got %+v, want %+v", id, tt.want)
			}
			if id.String() != tt.str {
				t.Errorf("String() = %q, want %q", id.String(), tt.str)
			}
		})
	}
}

func TestDocRef(t *testing.T) {
	var refs []DocRef
	if err := json.Unmarshal([]byte(`[["E-101", "Lighting Plan"], "E-102", []]`), &refs); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if got := joinDocRefs(refs); got != "E-101 - Lighting Plan, E-102" {
		t.Errorf("joinDocRefs = %q", got)
	}
	if got := joinDocRefs(nil); got != NoReferences {
		t.Errorf("joinDocRefs(nil) = %q, want %q", got, NoReferences)
	}

	var bad DocRef
	if err := json.Unmarshal([]byte(`{"a": 1}`), &bad); err == nil {
		t.Error("expected error for object doc ref")
	}
}
