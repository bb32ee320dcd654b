package matapan

import "math"

// round4 rounds a ratio, percentage or scale to 4 decimals. It is
// idempotent: round4(round4(x)) == round4(x).
func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}

// finalize applies display rounding once, at the output boundary: monetary
// values to the currency fraction, ratios to 4 decimals. It must never run
// on intermediate accumulator state, only on fully computed snapshots.
func (s *Snapshot) finalize() {
	s.Breakdown = s.Breakdown.rounded()
	s.Totals = s.Totals.rounded()
	s.CashFlow = CashFlowSummary{
		Income:      s.CashFlow.Income.Round(),
		Expenses:    s.CashFlow.Expenses.Round(),
		NetCashFlow: s.CashFlow.NetCashFlow.Round(),
		SaveRate:    round4(s.CashFlow.SaveRate),
	}
	s.Performance = PerformanceMetrics{
		NominalReturn:     round4(s.Performance.NominalReturn),
		RealReturn:        round4(s.Performance.RealReturn),
		TWRCumulative:     round4(s.Performance.TWRCumulative),
		NetWorthReal:      s.Performance.NetWorthReal.Round(),
		ChangePctFromPrev: round4(s.Performance.ChangePctFromPrev),
	}
	for _, adj := range []*Adjustment{s.InflationAdjusted, s.CostOfLivingAdjusted, s.RealPurchasingPower} {
		if adj == nil {
			continue
		}
		adj.Breakdown = adj.Breakdown.rounded()
		adj.Totals = adj.Totals.rounded()
		adj.Scale = round4(adj.Scale)
		adj.Deflator = round4(adj.Deflator)
		adj.ECLINorm = round4(adj.ECLINorm)
		adj.AdvantagePct = round4(adj.AdvantagePct)
	}
}

func (b Breakdown) rounded() Breakdown {
	r := Breakdown{
		Assets:      make(map[string]Money, len(b.Assets)),
		Liabilities: b.Liabilities.Round(),
	}
	for bucket, v := range b.Assets {
		r.Assets[bucket] = v.Round()
	}
	return r
}

func (t Totals) rounded() Totals {
	return Totals{
		Assets:      t.Assets.Round(),
		Liabilities: t.Liabilities.Round(),
		NetWorth:    t.NetWorth.Round(),
	}
}
