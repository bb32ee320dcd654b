package matapan

import (
	"fmt"
	"math"
	"strings"
)

// referenceMonthlySalary is the fixed reference used by the combined
// adjuster to fold a local-salary purchasing-power ratio into the scale,
// in base-currency units per month.
const referenceMonthlySalary = 6000.0

// ecliEpsilon guards the division by the normalized cost-of-living index.
const ecliEpsilon = 1e-9

// inflationAdjust computes the inflation-only scaled view of a snapshot.
// It returns nil when the feature is disabled or an index is missing:
// absence of the adjustment is the signal that it was not computed, the
// scale never silently defaults to 1.0.
func inflationAdjust(s *Snapshot, doc *MonthlyDocument, settings *Settings, baseHICP float64) *Adjustment {
	if !doc.inflationEnabled(settings) {
		return nil
	}
	if baseHICP <= 0 || doc.HICP <= 0 {
		return nil
	}
	scale := baseHICP / doc.HICP
	breakdown := s.Breakdown.Scale(scale)
	return &Adjustment{
		Breakdown: breakdown,
		Totals:    breakdown.Totals(),
		Scale:     scale,
		Deflator:  scale,
		Notes:     fmt.Sprintf("deflated to base period prices (HICP %.2f -> %.2f)", baseHICP, doc.HICP),
	}
}

// costOfLivingAdjust computes the location-normalized view of a snapshot
// using the weighted ECLI of the month's location. Indices are relative to
// the reference city at 100. Returns nil when disabled or indices are
// missing.
func costOfLivingAdjust(s *Snapshot, doc *MonthlyDocument, settings *Settings) *Adjustment {
	if !doc.ecliEnabled(settings) || doc.ECLI == nil {
		return nil
	}
	w := settings.ECLIWeights
	if w.Sum() == 0 {
		return nil
	}

	ecli := w.Rent*doc.ECLI.Rent + w.Groceries*doc.ECLI.Groceries + w.CostOfLiving*doc.ECLI.CostOfLiving
	norm := 1.0
	if math.Abs(ecli) >= ecliEpsilon {
		norm = ecli / 100
	}
	scale := 1 / norm

	breakdown := s.Breakdown.Scale(scale)
	adj := &Adjustment{
		Breakdown:    breakdown,
		Totals:       breakdown.Totals(),
		Scale:        scale,
		ECLINorm:     norm,
		AdvantagePct: (scale - 1) * 100,
		Notes:        fmt.Sprintf("normalized to reference-city purchasing power (ECLI %.2f)", ecli),
	}
	if !settings.weightsLookSane() {
		adj.Warnings = append(adj.Warnings, fmt.Sprintf("ECLI weights sum to %.2f, expected 1.0", w.Sum()))
	}
	if norm < 0.2 {
		adj.Warnings = append(adj.Warnings, fmt.Sprintf("ECLI norm %.4f looks implausibly low, check basic indices", norm))
	}
	return adj
}

// combinedAdjust composes the inflation and cost-of-living adjustments into
// a single real-purchasing-power view, optionally folding in the ratio of
// the month's local salary to the reference monthly salary. It runs only
// when both source adjustments were computed.
func combinedAdjust(s *Snapshot, doc *MonthlyDocument, settings *Settings, inflation, costOfLiving *Adjustment) *Adjustment {
	if inflation == nil || costOfLiving == nil {
		return nil
	}

	deflator := inflation.Deflator
	if deflator == 0 {
		deflator = inflation.Scale
	}
	norm := costOfLiving.ECLINorm
	if norm == 0 {
		norm = 1.0
	}
	combined := deflator / norm

	base := doc.baseCurrency(settings)
	localSalary := M(0, base)
	for _, e := range doc.CashFlowEntries {
		if !strings.EqualFold(e.Kind, "salary") {
			continue
		}
		rate, _ := fxRate(e.Currency, base, doc.FXRates)
		localSalary = localSalary.Add(M(e.Amount, e.Currency).Convert(rate, base))
	}

	effective := combined
	notes := "inflation and cost-of-living composed with local salary ratio"
	if localSalary.IsPositive() {
		effective = combined * (localSalary.AsFloat() / referenceMonthlySalary)
	} else {
		notes = "no local salary entry found, salary ratio not applied"
	}

	breakdown := s.Breakdown.Scale(effective)
	adj := &Adjustment{
		Breakdown:    breakdown,
		Totals:       breakdown.Totals(),
		Scale:        effective,
		Deflator:     deflator,
		ECLINorm:     norm,
		AdvantagePct: (effective - 1) * 100,
		Notes:        notes,
	}
	if combined > 5.0 {
		adj.Warnings = append(adj.Warnings, fmt.Sprintf("combined scale %.4f looks implausibly high", combined))
	}
	return adj
}

// adjust attaches all applicable adjusted views to the snapshot.
func adjust(s *Snapshot, doc *MonthlyDocument, settings *Settings, baseHICP float64) {
	s.InflationAdjusted = inflationAdjust(s, doc, settings, baseHICP)
	s.CostOfLivingAdjusted = costOfLivingAdjust(s, doc, settings)
	s.RealPurchasingPower = combinedAdjust(s, doc, settings, s.InflationAdjusted, s.CostOfLivingAdjusted)
}
