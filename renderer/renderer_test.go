package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/silvio-dacol/matapan"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// dec is a helper for tests to build decimal amounts from constants.
func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testDashboard(t *testing.T) *matapan.Dashboard {
	t.Helper()

	settings := matapan.DefaultSettings()
	settings.AdjustInflation = true
	settings.HICPBase = 100

	docs := []*matapan.MonthlyDocument{
		{
			Month:   matapan.MustParseMonth("2025-01"),
			HICP:    110,
			FXRates: map[string]float64{"USD": 0.9},
			NetWorthEntries: []matapan.NetWorthEntry{
				{Name: "Main account", Kind: "checking", Currency: "EUR", Balance: dec(2500)},
				{Name: "Brokerage", Kind: "etf", Currency: "USD", Balance: dec(10000)},
				{Name: "Student loan", Kind: "loan", Currency: "EUR", Balance: dec(4000)},
			},
			CashFlowEntries: []matapan.CashFlowEntry{
				{Name: "Employer", Kind: "salary", Currency: "EUR", Amount: dec(3000)},
				{Name: "Flat", Kind: "rent", Currency: "EUR", Amount: dec(1200)},
			},
		},
		{
			Month: matapan.MustParseMonth("2025-02"),
			HICP:  111,
			NetWorthEntries: []matapan.NetWorthEntry{
				{Name: "Main account", Kind: "checking", Currency: "EUR", Balance: dec(2800)},
				{Name: "Teleporter", Kind: "gadget", Currency: "EUR", Balance: dec(1)},
			},
		},
	}

	d, err := matapan.NewDashboard(docs, settings)
	if err != nil {
		t.Fatalf("NewDashboard() error = %v", err)
	}
	return d
}

func TestSnapshotMarkdown(t *testing.T) {
	d := testDashboard(t)
	out := SnapshotMarkdown(d.Latest)

	for _, want := range []string{
		"# Net Worth on 2025-02",
		"## Breakdown",
		"## Cash Flow",
		"## Performance",
		"## Inflation Adjusted",
		"## Warnings",
		"gadget",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SnapshotMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestYearlyMarkdown(t *testing.T) {
	d := testDashboard(t)
	out := YearlyMarkdown(d.YearlyStats, d.BaseCurrency)

	if !strings.Contains(out, "2025") {
		t.Errorf("YearlyMarkdown() missing year in:\n%s", out)
	}
	if !strings.Contains(out, "Save Rate") {
		t.Errorf("YearlyMarkdown() missing table header in:\n%s", out)
	}
}

// TestMarkdownStructure parses the generated report with goldmark and
// checks it contains proper heading nodes, not just text that looks like
// markdown.
func TestMarkdownStructure(t *testing.T) {
	d := testDashboard(t)
	content := []byte(SnapshotMarkdown(d.Latest))

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var headings int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.Heading); ok {
				headings++
			}
		}
		return ast.WalkContinue, nil
	})

	if headings < 4 {
		t.Errorf("got %d headings, want at least 4", headings)
	}
}
