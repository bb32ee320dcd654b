// Package renderer turns computed pipeline artifacts into markdown
// reports. It holds no I/O policy of its own: callers decide where the
// markdown goes.
package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/silvio-dacol/matapan"
)

// SnapshotMarkdown renders one snapshot: breakdown, totals, cash flow,
// performance, the adjusted views that were computed, and any warnings.
func SnapshotMarkdown(s *matapan.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth on %s", s.Month))
	doc.PlainText(fmt.Sprintf("Net worth: %s (assets %s, liabilities %s)",
		s.Totals.NetWorth, s.Totals.Assets, s.Totals.Liabilities))

	doc.H2("Breakdown")
	rows := make([][]string, 0, len(s.Breakdown.Assets)+1)
	for _, bucket := range sortedBuckets(s.Breakdown) {
		rows = append(rows, []string{bucket, s.Breakdown.Assets[bucket].String()})
	}
	rows = append(rows, []string{"liabilities", s.Breakdown.Liabilities.Neg().String()})
	doc.Table(md.TableSet{
		Header: []string{"Bucket", "Value"},
		Rows:   rows,
	})

	doc.H2("Cash Flow")
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expenses", "Net", "Save Rate"},
		Rows: [][]string{{
			s.CashFlow.Income.String(),
			s.CashFlow.Expenses.String(),
			s.CashFlow.NetCashFlow.SignedString(),
			formatPct(s.CashFlow.SaveRate),
		}},
	})

	doc.H2("Performance")
	doc.Table(md.TableSet{
		Header: []string{"Nominal", "Real", "Cumulative TWR", "Real NW Change"},
		Rows: [][]string{{
			formatPct(s.Performance.NominalReturn),
			formatPct(s.Performance.RealReturn),
			fmt.Sprintf("%.4f", s.Performance.TWRCumulative),
			formatPct(s.Performance.ChangePctFromPrev),
		}},
	})

	renderAdjustment(doc, "Inflation Adjusted", s.InflationAdjusted)
	renderAdjustment(doc, "Cost of Living Adjusted", s.CostOfLivingAdjusted)
	renderAdjustment(doc, "Real Purchasing Power", s.RealPurchasingPower)

	if len(s.Warnings) > 0 {
		doc.H2("Warnings")
		for _, w := range s.Warnings {
			doc.PlainText("- " + w)
		}
	}

	doc.Build()
	return buf.String()
}

func renderAdjustment(doc *md.Markdown, title string, adj *matapan.Adjustment) {
	if adj == nil {
		return
	}
	doc.H2(title)
	doc.Table(md.TableSet{
		Header: []string{"Net Worth", "Scale", "Advantage"},
		Rows: [][]string{{
			adj.Totals.NetWorth.String(),
			fmt.Sprintf("%.4f", adj.Scale),
			fmt.Sprintf("%+.2f%%", adj.AdvantagePct),
		}},
	})
	if adj.Notes != "" {
		doc.PlainText(adj.Notes)
	}
	for _, w := range adj.Warnings {
		doc.PlainText("- " + w)
	}
}

func formatPct(ratio float64) string {
	return fmt.Sprintf("%+.2f%%", ratio*100)
}

func sortedBuckets(b matapan.Breakdown) []string {
	buckets := make([]string, 0, len(b.Assets))
	for bucket := range b.Assets {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)
	return buckets
}
