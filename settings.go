package matapan

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// ECLIWeights holds the coefficients of the composite cost-of-living index.
// They are expected to sum to 1.0 but the pipeline does not enforce it; a
// warning is emitted when they visibly do not.
type ECLIWeights struct {
	Rent         float64 `json:"rent"`
	Groceries    float64 `json:"groceries"`
	CostOfLiving float64 `json:"cost_of_living"`
}

// Sum returns the sum of the coefficients.
func (w ECLIWeights) Sum() float64 { return w.Rent + w.Groceries + w.CostOfLiving }

// Settings holds the run-wide configuration of the pipeline: reporting
// currency, adjustment defaults, and the category membership lists. It is
// loaded once per run and shared read-only across all snapshots.
type Settings struct {
	BaseCurrency string `json:"base_currency"`

	// HICPBase is the inflation index of the base period. When zero the
	// pipeline falls back to the first document's HICP value, which makes
	// the inflation scale collapse to 1.0 for the first month.
	HICPBase float64 `json:"hicp_base,omitempty"`

	AdjustInflation bool        `json:"adjust_inflation"`
	AdjustECLI      bool        `json:"adjust_ecli"`
	ECLIWeights     ECLIWeights `json:"ecli_weights"`

	// Assets maps asset bucket names to the entry kinds they contain.
	// Liabilities, Income and Expenses are flat kind lists.
	Assets      map[string][]string `json:"assets"`
	Liabilities []string            `json:"liabilities"`
	Income      []string            `json:"income"`
	Expenses    []string            `json:"expenses"`

	// PortfolioBuckets names the asset buckets whose sum is the portfolio
	// value used by the performance tracker.
	PortfolioBuckets []string `json:"portfolio_buckets"`
}

// Canonical asset bucket names used when settings do not configure any.
const (
	BucketCash        = "cash"
	BucketInvestments = "investments"
	BucketPersonal    = "personal"
	BucketPension     = "pension"
	BucketLiabilities = "liabilities"
)

// DefaultSettings returns settings with the canonical buckets and a small
// set of common kinds, EUR reporting, and both adjustments disabled.
func DefaultSettings() *Settings {
	return &Settings{
		BaseCurrency: "EUR",
		ECLIWeights:  ECLIWeights{Rent: 0.4, Groceries: 0.35, CostOfLiving: 0.25},
		Assets: map[string][]string{
			BucketCash:        {"checking", "savings", "cash"},
			BucketInvestments: {"stocks", "etf", "bonds", "crypto"},
			BucketPersonal:    {"car", "belongings"},
			BucketPension:     {"pension", "retirement"},
		},
		Liabilities:      []string{"loan", "mortgage", "credit card"},
		Income:           []string{"salary", "bonus", "dividends", "interest"},
		Expenses:         []string{"rent", "groceries", "utilities", "transport", "leisure", "other"},
		PortfolioBuckets: []string{BucketInvestments, BucketPension},
	}
}

// DecodeSettings reads settings from a JSON stream. Absent category lists
// fall back to the defaults so a minimal settings file stays useful;
// configured lists replace the defaults entirely, they never merge.
func DecodeSettings(r io.Reader) (*Settings, error) {
	var s Settings
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode settings: %w", err)
	}
	if s.BaseCurrency == "" {
		return nil, fmt.Errorf("settings must declare a base currency")
	}

	def := DefaultSettings()
	if s.ECLIWeights == (ECLIWeights{}) {
		s.ECLIWeights = def.ECLIWeights
	}
	if len(s.Assets) == 0 {
		s.Assets = def.Assets
	}
	if len(s.Liabilities) == 0 {
		s.Liabilities = def.Liabilities
	}
	if len(s.Income) == 0 {
		s.Income = def.Income
	}
	if len(s.Expenses) == 0 {
		s.Expenses = def.Expenses
	}
	if len(s.PortfolioBuckets) == 0 {
		s.PortfolioBuckets = def.PortfolioBuckets
	}
	return &s, nil
}

// weightsLookSane reports whether the ECLI weights sum close enough to 1.
func (s *Settings) weightsLookSane() bool {
	return math.Abs(s.ECLIWeights.Sum()-1.0) <= 0.05
}
