package matapan

import (
	"fmt"
)

// Breakdown holds the per-bucket totals of one month, in base currency.
// Asset buckets and the liabilities bucket are kept apart so totals can be
// derived without knowing which names are assets.
type Breakdown struct {
	Assets      map[string]Money `json:"assets"`
	Liabilities Money            `json:"liabilities"`
}

// Asset returns the total of one asset bucket.
func (b Breakdown) Asset(bucket string) Money { return b.Assets[bucket] }

// Totals derives the snapshot totals algebraically from the breakdown.
// They are never computed independently, so breakdown and totals cannot
// drift apart.
func (b Breakdown) Totals() Totals {
	assets := M(0, b.Liabilities.Currency())
	for _, v := range b.Assets {
		assets = assets.Add(v)
	}
	return Totals{
		Assets:      assets,
		Liabilities: b.Liabilities,
		NetWorth:    assets.Sub(b.Liabilities),
	}
}

// Scale returns a new breakdown with every bucket, liabilities included,
// multiplied by the given factor. The receiver is left untouched.
func (b Breakdown) Scale(f float64) Breakdown {
	scaled := Breakdown{
		Assets:      make(map[string]Money, len(b.Assets)),
		Liabilities: b.Liabilities.Scale(f),
	}
	for bucket, v := range b.Assets {
		scaled.Assets[bucket] = v.Scale(f)
	}
	return scaled
}

// Totals holds the aggregate figures of a snapshot or of an adjusted view
// of it. The invariant NetWorth = Assets - Liabilities holds for both.
type Totals struct {
	Assets      Money `json:"assets"`
	Liabilities Money `json:"liabilities"`
	NetWorth    Money `json:"net_worth"`
}

// CashFlowSummary aggregates the month's cash-flow entries. Income and
// Expenses are sign-normalized to be non-negative.
type CashFlowSummary struct {
	Income      Money   `json:"income"`
	Expenses    Money   `json:"expenses"`
	NetCashFlow Money   `json:"net_cash_flow"`
	SaveRate    float64 `json:"save_rate"`
}

// PerformanceMetrics holds the month's returns. TWRCumulative is carried
// across the whole chronological sequence of one run, seeded at 1.0.
type PerformanceMetrics struct {
	NominalReturn     float64 `json:"nominal_return"`
	RealReturn        float64 `json:"real_return"`
	TWRCumulative     float64 `json:"twr_cumulative"`
	NetWorthReal      Money   `json:"net_worth_real"`
	ChangePctFromPrev float64 `json:"change_pct_from_prev"`
}

// Adjustment is a derived, parallel view of a snapshot scaled by an
// inflation deflator, a cost-of-living normalization, or both. It never
// mutates its source snapshot.
type Adjustment struct {
	Breakdown    Breakdown `json:"breakdown"`
	Totals       Totals    `json:"totals"`
	Scale        float64   `json:"scale"`
	Deflator     float64   `json:"deflator,omitempty"`
	ECLINorm     float64   `json:"ecli_norm,omitempty"`
	AdvantagePct float64   `json:"advantage_pct,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Warnings     []string  `json:"warnings,omitempty"`
}

// Snapshot is the computed state of net worth, cash flow and performance
// for a single calendar month, plus any adjusted views of it.
type Snapshot struct {
	Month       Month              `json:"month"`
	Breakdown   Breakdown          `json:"breakdown"`
	Totals      Totals             `json:"totals"`
	CashFlow    CashFlowSummary    `json:"cash_flow"`
	Performance PerformanceMetrics `json:"performance"`

	InflationAdjusted    *Adjustment `json:"inflation_adjusted,omitempty"`
	CostOfLivingAdjusted *Adjustment `json:"cost_of_living_adjusted,omitempty"`
	RealPurchasingPower  *Adjustment `json:"real_purchasing_power,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

func (s *Snapshot) warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// buildSnapshot classifies one document's entries, converts currencies and
// accumulates the breakdown and cash-flow summary. Unknown kinds and
// missing FX rates degrade to warnings, never to errors.
func buildSnapshot(doc *MonthlyDocument, settings *Settings, ix *categoryIndex) *Snapshot {
	base := doc.baseCurrency(settings)
	s := &Snapshot{Month: doc.Month}

	s.Breakdown = Breakdown{
		Assets:      make(map[string]Money, len(ix.buckets)),
		Liabilities: M(0, base),
	}
	for _, bucket := range ix.buckets {
		s.Breakdown.Assets[bucket] = M(0, base)
	}

	for _, e := range doc.NetWorthEntries {
		bucket, liability, ok := ix.resolveNetWorth(e.Kind)
		if !ok {
			s.warnf("Unknown type '%s' for entry '%s', skipped", e.Kind, e.Name)
			continue
		}
		rate, found := fxRate(e.Currency, base, doc.FXRates)
		if !found {
			s.warnf("Missing FX rate %s->%s for entry '%s', assuming 1.0", e.Currency, base, e.Name)
		}
		value := M(e.Balance, e.Currency).Convert(rate, base)
		if liability {
			s.Breakdown.Liabilities = s.Breakdown.Liabilities.Add(value)
		} else {
			s.Breakdown.Assets[bucket] = s.Breakdown.Assets[bucket].Add(value)
		}
	}

	income, expenses := M(0, base), M(0, base)
	for _, e := range doc.CashFlowEntries {
		isIncome, ok := ix.resolveCashFlow(e.Kind)
		if !ok {
			s.warnf("Unknown type '%s' for entry '%s', skipped", e.Kind, e.Name)
			continue
		}
		rate, found := fxRate(e.Currency, base, doc.FXRates)
		if !found {
			s.warnf("Missing FX rate %s->%s for entry '%s', assuming 1.0", e.Currency, base, e.Name)
		}
		// Amounts are stored as the user wrote them; both directions are
		// sign-normalized so income and expenses stay non-negative.
		value := M(e.Amount, e.Currency).Convert(rate, base)
		if isIncome {
			income = income.Add(value.Abs())
		} else {
			expenses = expenses.Add(value.Abs())
		}
	}

	net := income.Sub(expenses)
	saveRate := 0.0
	if income.IsPositive() {
		saveRate = net.AsFloat() / income.AsFloat()
	}
	s.CashFlow = CashFlowSummary{
		Income:      income,
		Expenses:    expenses,
		NetCashFlow: net,
		SaveRate:    saveRate,
	}

	s.Totals = s.Breakdown.Totals()
	return s
}

// portfolioValue sums the investment-like asset buckets, the base of the
// return computations.
func (s *Snapshot) portfolioValue(ix *categoryIndex) Money {
	total := M(0, s.Totals.Assets.Currency())
	for bucket, v := range s.Breakdown.Assets {
		if ix.isPortfolio(bucket) {
			total = total.Add(v)
		}
	}
	return total
}
