package matapan

import (
	"github.com/shopspring/decimal"
)

// NetWorthEntry is one raw holding or debt line in a monthly document.
type NetWorthEntry struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Comment  string          `json:"comment,omitempty"`
}

// CashFlowEntry is one raw income or expense line in a monthly document.
type CashFlowEntry struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Comment  string          `json:"comment,omitempty"`
}

// BasicIndices holds the raw cost-of-living indices of the month's
// location, relative to the reference city (New York = 100).
type BasicIndices struct {
	Rent         float64 `json:"rent"`
	Groceries    float64 `json:"groceries"`
	CostOfLiving float64 `json:"cost_of_living"`
}

// MonthlyDocument is one month's worth of raw input: holdings, cash flows,
// FX rates and inflation indices. Documents are immutable once loaded; the
// month key is unique per run.
type MonthlyDocument struct {
	Month        Month  `json:"month"`
	BaseCurrency string `json:"base_currency,omitempty"`

	// FXRates maps a currency code to its rate expressed as units of base
	// currency per one unit of that currency.
	FXRates map[string]float64 `json:"fx_rates,omitempty"`

	// HICP is the inflation index of the document's period.
	HICP float64 `json:"hicp,omitempty"`

	// ECLI holds the location's basic cost-of-living indices, when known.
	ECLI *BasicIndices `json:"ecli,omitempty"`

	// Per-document overrides of the settings adjustment defaults.
	AdjustInflation *bool `json:"adjust_inflation,omitempty"`
	AdjustECLI      *bool `json:"adjust_ecli,omitempty"`

	NetWorthEntries []NetWorthEntry `json:"net_worth_entries"`
	CashFlowEntries []CashFlowEntry `json:"cash_flow_entries"`
}

// inflationEnabled resolves the effective inflation flag: the document
// override when present, the settings default otherwise.
func (d *MonthlyDocument) inflationEnabled(s *Settings) bool {
	if d.AdjustInflation != nil {
		return *d.AdjustInflation
	}
	return s.AdjustInflation
}

// ecliEnabled resolves the effective cost-of-living flag.
func (d *MonthlyDocument) ecliEnabled(s *Settings) bool {
	if d.AdjustECLI != nil {
		return *d.AdjustECLI
	}
	return s.AdjustECLI
}

// baseCurrency resolves the document's reporting currency, falling back to
// the settings one.
func (d *MonthlyDocument) baseCurrency(s *Settings) string {
	if d.BaseCurrency != "" {
		return d.BaseCurrency
	}
	return s.BaseCurrency
}
