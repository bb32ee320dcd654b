package matapan

import (
	"fmt"
	"sort"
	"time"
)

// YearlyStats aggregates the finalized snapshots of one calendar year.
type YearlyStats struct {
	Year            int     `json:"year"`
	Months          int     `json:"months"`
	Income          Money   `json:"income"`
	Expenses        Money   `json:"expenses"`
	TotalSavings    Money   `json:"total_savings"`
	AverageSaveRate float64 `json:"average_save_rate"`
}

// Dashboard is the final artifact of one pipeline run: the chronologically
// ordered snapshots, their yearly rollup, and a pointer to the latest one.
// It is created fresh on every run and never partially updated.
type Dashboard struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	BaseCurrency string        `json:"base_currency"`
	Snapshots    []*Snapshot   `json:"snapshots"`
	YearlyStats  []YearlyStats `json:"yearly_stats"`
	Latest       *Snapshot     `json:"latest,omitempty"`
}

// NewDashboard runs the whole pipeline over a batch of monthly documents:
// sort, build, track performance, adjust, finalize, roll up. A run with no
// documents is an error, not an empty dashboard.
func NewDashboard(docs []*MonthlyDocument, settings *Settings) (*Dashboard, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no monthly documents to process")
	}

	// The performance tracker carries state month to month, so the fold
	// must run in strictly ascending chronological order.
	ordered := make([]*MonthlyDocument, len(docs))
	copy(ordered, docs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Month.Before(ordered[j].Month) })
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Month == ordered[i-1].Month {
			return nil, fmt.Errorf("duplicate document for month %s", ordered[i].Month)
		}
	}
	// Snapshots aggregate across months (yearly rollup, real net worth
	// deltas), so every document must resolve to the run's base currency.
	for _, doc := range ordered {
		if base := doc.baseCurrency(settings); base != settings.BaseCurrency {
			return nil, fmt.Errorf("document %s uses base currency %s, run uses %s", doc.Month, base, settings.BaseCurrency)
		}
	}

	baseHICP := settings.HICPBase
	baseHICPFallback := false
	if baseHICP <= 0 {
		// Preserved fallback: the first document's current-period index
		// doubles as the base, which collapses the first month's inflation
		// scale to 1.0. Flagged so operators see the ambiguity.
		baseHICP = ordered[0].HICP
		baseHICPFallback = baseHICP > 0
	}

	ix := newCategoryIndex(settings)
	t := newTracker(baseHICP)

	d := &Dashboard{
		GeneratedAt:  time.Now(),
		BaseCurrency: settings.BaseCurrency,
		Snapshots:    make([]*Snapshot, 0, len(ordered)),
	}
	for i, doc := range ordered {
		s := buildSnapshot(doc, settings, ix)
		if i == 0 && baseHICPFallback {
			s.warnf("No base HICP configured, using %s's index %.2f as base", doc.Month, baseHICP)
		}
		t.step(s, doc, ix)
		adjust(s, doc, settings, baseHICP)
		s.finalize()
		d.Snapshots = append(d.Snapshots, s)
	}

	d.YearlyStats = yearlyRollup(d.Snapshots, settings.BaseCurrency)
	d.Latest = d.Snapshots[len(d.Snapshots)-1]
	return d, nil
}

// yearlyRollup groups finalized snapshots by calendar year. The average
// save rate is a simple mean of the monthly rates, not income-weighted.
func yearlyRollup(snapshots []*Snapshot, baseCurrency string) []YearlyStats {
	byYear := make(map[int]*YearlyStats)
	saveRates := make(map[int]float64)
	var years []int

	for _, s := range snapshots {
		y := s.Month.Year()
		stats, ok := byYear[y]
		if !ok {
			stats = &YearlyStats{
				Year:     y,
				Income:   M(0, baseCurrency),
				Expenses: M(0, baseCurrency),
			}
			byYear[y] = stats
			years = append(years, y)
		}
		stats.Months++
		stats.Income = stats.Income.Add(s.CashFlow.Income)
		stats.Expenses = stats.Expenses.Add(s.CashFlow.Expenses)
		saveRates[y] += s.CashFlow.SaveRate
	}

	sort.Ints(years)
	rollup := make([]YearlyStats, 0, len(years))
	for _, y := range years {
		stats := byYear[y]
		stats.TotalSavings = stats.Income.Sub(stats.Expenses)
		stats.AverageSaveRate = round4(saveRates[y] / float64(stats.Months))
		rollup = append(rollup, *stats)
	}
	return rollup
}
