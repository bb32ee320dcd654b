package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/silvio-dacol/matapan"
)

// YearlyMarkdown renders the yearly rollup table of a dashboard.
func YearlyMarkdown(stats []matapan.YearlyStats, baseCurrency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Yearly Statistics (%s)", baseCurrency))

	rows := make([][]string, 0, len(stats))
	for _, y := range stats {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			fmt.Sprintf("%d", y.Months),
			y.Income.String(),
			y.Expenses.String(),
			y.TotalSavings.SignedString(),
			formatPct(y.AverageSaveRate),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Months", "Income", "Expenses", "Savings", "Avg Save Rate"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
