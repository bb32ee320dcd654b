package matapan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("could not write %s: %v", name, err)
	}
	return path
}

func TestDecodeDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2025-01.json", `{
		"month": "2025-01",
		"hicp": 110,
		"fx_rates": {"USD": 0.9},
		"net_worth_entries": [
			{"name": "Main account", "kind": "checking", "currency": "EUR", "balance": 2500}
		],
		"cash_flow_entries": [
			{"name": "Employer", "kind": "salary", "currency": "EUR", "amount": 3000}
		]
	}`)
	writeFile(t, dir, "2025-02.json", `{"month": "2025-02", "net_worth_entries": [], "cash_flow_entries": []}`)
	writeFile(t, dir, "notes.txt", "not a document")

	docs, err := DecodeDocuments(dir)
	if err != nil {
		t.Fatalf("DecodeDocuments() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}

	var jan *MonthlyDocument
	for _, d := range docs {
		if d.Month == MustParseMonth("2025-01") {
			jan = d
		}
	}
	if jan == nil {
		t.Fatal("2025-01 not loaded")
	}
	if jan.HICP != 110 {
		t.Errorf("HICP = %f, want 110", jan.HICP)
	}
	if rate := jan.FXRates["USD"]; rate != 0.9 {
		t.Errorf("USD rate = %f, want 0.9", rate)
	}
	if len(jan.NetWorthEntries) != 1 || jan.NetWorthEntries[0].Name != "Main account" {
		t.Errorf("unexpected net worth entries: %+v", jan.NetWorthEntries)
	}
}

func TestDecodeDocuments_DuplicateMonth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"month": "2025-01"}`)
	writeFile(t, dir, "b.json", `{"month": "2025-01"}`)

	_, err := DecodeDocuments(dir)
	if err == nil {
		t.Fatal("DecodeDocuments() should fail on a duplicate month")
	}
	if !strings.Contains(err.Error(), "2025-01") {
		t.Errorf("error should name the month: %v", err)
	}
}

func TestDecodeDocument_Invalid(t *testing.T) {
	// An unparseable date is a fatal error, not a warning.
	if _, err := DecodeDocument("x.json", strings.NewReader(`{"month": "soon"}`)); err == nil {
		t.Error("DecodeDocument() should fail on an unparseable month")
	}
	if _, err := DecodeDocument("x.json", strings.NewReader(`{}`)); err == nil {
		t.Error("DecodeDocument() should fail on a missing month")
	}
	if _, err := DecodeDocument("x.json", strings.NewReader(`{&`)); err == nil {
		t.Error("DecodeDocument() should fail on malformed JSON")
	}
}

func TestSaveDocument_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := &MonthlyDocument{
		Month:   MustParseMonth("2025-07"),
		HICP:    128.02,
		FXRates: map[string]float64{"USD": 0.86},
		NetWorthEntries: []NetWorthEntry{
			{Name: "Main account", Kind: "checking", Currency: "EUR", Balance: dec(2500.55)},
		},
	}

	if err := SaveDocument(dir, doc); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}

	docs, err := DecodeDocuments(dir)
	if err != nil {
		t.Fatalf("DecodeDocuments() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	got := docs[0]
	if got.Month != doc.Month || got.HICP != doc.HICP {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if !got.NetWorthEntries[0].Balance.Equal(doc.NetWorthEntries[0].Balance) {
		t.Errorf("round trip balance = %s, want %s", got.NetWorthEntries[0].Balance, doc.NetWorthEntries[0].Balance)
	}
}

func TestEncodeDocument_Canonical(t *testing.T) {
	var buf bytes.Buffer
	doc := &MonthlyDocument{Month: MustParseMonth("2025-07")}
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"month": "2025-07"`) {
		t.Errorf("canonical form should carry the month key:\n%s", buf.String())
	}
}
