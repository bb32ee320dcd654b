package matapan

import "strings"

// fxRate resolves the rate of a currency against the base currency from the
// document's FX table. The rate is expressed as units of base per one unit
// of currency, so converting is a plain multiplication.
//
// A currency equal to the base (case-insensitive) is 1.0 without a lookup.
// A missing rate degrades to 1.0 with ok=false so the caller can record a
// warning: one bad entry must not abort the whole month.
func fxRate(currency, base string, table map[string]float64) (rate float64, ok bool) {
	if strings.EqualFold(currency, base) {
		return 1.0, true
	}
	if rate, ok := table[currency]; ok {
		return rate, true
	}
	// Tables are keyed by upper-case codes; retry folded before giving up.
	for code, rate := range table {
		if strings.EqualFold(code, currency) {
			return rate, true
		}
	}
	return 1.0, false
}
