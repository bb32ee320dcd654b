package matapan

// tracker is the accumulator threaded through the chronological fold over
// snapshots. It is the only state that survives from one month to the next
// inside a run; nothing here is shared across runs.
type tracker struct {
	baseHICP float64 // inflation index of the base period

	prevPortfolio       float64 // previous month's portfolio value
	hasPrevPortfolio    bool
	prevNetWorthReal    float64
	hasPrevNetWorthReal bool
	prevInflationFactor float64

	twr float64 // cumulative time-weighted return, multiplicative
}

// newTracker seeds the accumulator. The cumulative TWR starts at 1.0 so the
// multiplicative chain is well defined from the first month.
func newTracker(baseHICP float64) *tracker {
	return &tracker{baseHICP: baseHICP, twr: 1.0}
}

// step computes the performance metrics for one snapshot and advances the
// carried state. Snapshots must arrive in strictly ascending month order.
func (t *tracker) step(s *Snapshot, doc *MonthlyDocument, ix *categoryIndex) {
	portfolio := s.portfolioValue(ix).AsFloat()

	inflationFactor := 1.0
	if t.baseHICP > 0 && doc.HICP > 0 {
		inflationFactor = doc.HICP / t.baseHICP
	}
	prevInflationFactor := t.prevInflationFactor
	if prevInflationFactor == 0 {
		// First month: no inflation drift recorded yet.
		prevInflationFactor = inflationFactor
	}

	var nominal, real float64
	if t.hasPrevPortfolio && t.prevPortfolio > 0 {
		nominal = (portfolio - t.prevPortfolio) / t.prevPortfolio
		real = (1+nominal)/(inflationFactor/prevInflationFactor) - 1
	}
	t.twr *= 1 + nominal

	netWorthReal := s.Totals.NetWorth.Scale(1 / inflationFactor)
	var changePct float64
	if t.hasPrevNetWorthReal && t.prevNetWorthReal > 0 {
		changePct = (netWorthReal.AsFloat() - t.prevNetWorthReal) / t.prevNetWorthReal
	}

	s.Performance = PerformanceMetrics{
		NominalReturn:     nominal,
		RealReturn:        real,
		TWRCumulative:     t.twr,
		NetWorthReal:      netWorthReal,
		ChangePctFromPrev: changePct,
	}

	t.prevPortfolio, t.hasPrevPortfolio = portfolio, true
	t.prevNetWorthReal, t.hasPrevNetWorthReal = netWorthReal.AsFloat(), true
	t.prevInflationFactor = inflationFactor
}
