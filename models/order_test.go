package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOrderItemsUnmarshalArray(t *testing.T) {
	var items OrderItems
	err := json.Unmarshal([]byte(`[{"id":1,"name":"Empanada","quantity":3}]`), &items)
	if err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Empanada" || items[0].Quantity != 3 {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestOrderItemsUnmarshalEncodedString(t *testing.T) {
	var items OrderItems
	err := json.Unmarshal([]byte(`"[{\"id\":2,\"name\":\"Locro\",\"quantity\":1}]"`), &items)
	if err != nil {
		t.Fatalf("unmarshal encoded string: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestOrderItemsUnmarshalNull(t *testing.T) {
	var items OrderItems
	if err := json.Unmarshal([]byte(`null`), &items); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if items != nil {
		t.Errorf("null should yield nil items, got %+v", items)
	}
}

func TestOrderItemsUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, payload := range []string{`5`, `{"id":1}`, `"not json"`, `true`} {
		var items OrderItems
		err := json.Unmarshal([]byte(payload), &items)
		if !errors.Is(err, ErrInvalidItems) {
			t.Errorf("unmarshal %s: err = %v, want ErrInvalidItems", payload, err)
		}
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	in := OrderItems{{ID: 1, Name: "Empanada", Quantity: 3}}
	blob, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out OrderItems
	if err := json.Unmarshal(blob, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
