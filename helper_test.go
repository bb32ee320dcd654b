package matapan

import (
	"math"

	"github.com/shopspring/decimal"
)

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// dec is a helper for tests to build decimal amounts from constants.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// near reports whether two ratios are equal within test precision.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

// boolPtr is a helper for tests to set per-document overrides.
func boolPtr(b bool) *bool { return &b }

// testSettings returns default settings tuned for tests: EUR base, both
// adjustments enabled, HICP base 100.
func testSettings() *Settings {
	s := DefaultSettings()
	s.AdjustInflation = true
	s.AdjustECLI = true
	s.HICPBase = 100
	return s
}
