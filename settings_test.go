package matapan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeSettings(t *testing.T) {
	in := `{
		"base_currency": "USD",
		"hicp_base": 100,
		"adjust_inflation": true,
		"ecli_weights": {"rent": 0.4, "groceries": 0.35, "cost_of_living": 0.25},
		"assets": {"cash": ["checking"], "crypto": ["btc", "eth"]},
		"portfolio_buckets": ["crypto"]
	}`

	s, err := DecodeSettings(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	if s.BaseCurrency != "USD" {
		t.Errorf("base currency = %q, want USD", s.BaseCurrency)
	}
	if !s.AdjustInflation || s.AdjustECLI {
		t.Errorf("flags = %v/%v, want true/false", s.AdjustInflation, s.AdjustECLI)
	}

	// Dynamically named buckets replace the canonical ones.
	ix := newCategoryIndex(s)
	if bucket, _, ok := ix.resolveNetWorth("BTC"); !ok || bucket != "crypto" {
		t.Errorf("resolveNetWorth(BTC) = %q, %v, want crypto", bucket, ok)
	}
	if _, _, ok := ix.resolveNetWorth("etf"); ok {
		t.Error("etf should not resolve with custom asset lists")
	}
	if !ix.isPortfolio("crypto") {
		t.Error("crypto should count toward the portfolio value")
	}
}

func TestDecodeSettings_MissingBaseCurrency(t *testing.T) {
	if _, err := DecodeSettings(strings.NewReader(`{"adjust_inflation": true}`)); err == nil {
		t.Fatal("DecodeSettings() should fail without a base currency")
	}
}

func TestDecodeSettings_DefaultsForAbsentLists(t *testing.T) {
	s, err := DecodeSettings(strings.NewReader(`{"base_currency": "EUR"}`))
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	ix := newCategoryIndex(s)
	if bucket, _, ok := ix.resolveNetWorth("checking"); !ok || bucket != BucketCash {
		t.Errorf("default lists should map checking to cash, got %q, %v", bucket, ok)
	}
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.BaseCurrency != "EUR" {
		t.Errorf("default base currency = %q, want EUR", s.BaseCurrency)
	}
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"base_currency": "CHF"}`), 0644); err != nil {
		t.Fatalf("could not write settings: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.BaseCurrency != "CHF" {
		t.Errorf("base currency = %q, want CHF", s.BaseCurrency)
	}
}

func TestECLIWeights_Sum(t *testing.T) {
	w := ECLIWeights{Rent: 0.4, Groceries: 0.35, CostOfLiving: 0.25}
	if !near(w.Sum(), 1.0) {
		t.Errorf("Sum() = %f, want 1.0", w.Sum())
	}

	s := DefaultSettings()
	if !s.weightsLookSane() {
		t.Error("default weights should look sane")
	}
	s.ECLIWeights = ECLIWeights{Rent: 0.9, Groceries: 0.9}
	if s.weightsLookSane() {
		t.Error("weights summing to 1.8 should not look sane")
	}
}
