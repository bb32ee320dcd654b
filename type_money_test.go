package matapan

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a, b := EUR(10.50), EUR(2.25)

	if got := a.Add(b); !got.Equal(EUR(12.75)) {
		t.Errorf("Add = %s, want %s", got, EUR(12.75))
	}
	if got := a.Sub(b); !got.Equal(EUR(8.25)) {
		t.Errorf("Sub = %s, want %s", got, EUR(8.25))
	}
	if got := EUR(-3).Abs(); !got.Equal(EUR(3)) {
		t.Errorf("Abs = %s, want %s", got, EUR(3))
	}
	if got := a.Scale(2); !got.Equal(EUR(21)) {
		t.Errorf("Scale = %s, want %s", got, EUR(21))
	}
}

func TestMoney_Convert(t *testing.T) {
	// 100 USD at 0.9 base units per USD.
	got := USD(100).Convert(0.9, "EUR")
	if !got.Equal(EUR(90)) {
		t.Errorf("Convert = %s, want %s", got, EUR(90))
	}
	if got.Currency() != "EUR" {
		t.Errorf("Convert currency = %q, want EUR", got.Currency())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD should panic")
		}
	}()
	EUR(1).Add(USD(1))
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	if got := M(0, "").Add(EUR(5)); got.Currency() != "EUR" {
		t.Errorf("empty currency should be weak, got %q", got.Currency())
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(EUR(833.33))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// Amounts serialize as bare numbers.
	if string(data) != "833.33" {
		t.Errorf("Marshal() = %s, want 833.33", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("12.5"), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m.AsFloat() != 12.5 {
		t.Errorf("Unmarshal() = %f, want 12.5", m.AsFloat())
	}
}
