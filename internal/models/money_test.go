package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyMarshalFixedTwoDecimals(t *testing.T) {
	m := MustMoney("49.9")
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"49.90"` {
		t.Fatalf("expected \"49.90\", got %s", string(data))
	}
}

func TestMoneyUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"29.99"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.String() != "29.99" {
		t.Fatalf("expected 29.99, got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`29.99`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "29.99" {
		t.Fatalf("expected 29.99, got %s", fromNumber.String())
	}
}

func TestMoneyUnmarshalRejectsGarbage(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"not-a-price"`), &m); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRatingZeroValueRendersAsZeroString(t *testing.T) {
	var r Rating
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"0.00"` {
		t.Fatalf("expected \"0.00\", got %s", string(data))
	}
}

func TestNextIDMonotonic(t *testing.T) {
	first := NextID()
	second := NextID()
	if second <= first {
		t.Fatalf("expected increasing ids, got %d then %d", first, second)
	}
}
