package matapan

import (
	"sort"
	"strings"
)

// categoryIndex is the compiled form of the settings category lists: a
// case-folded map from entry kind to its bucket, built once per run instead
// of re-scanning the lists for every entry.
type categoryIndex struct {
	assets      map[string]string // folded kind -> asset bucket name
	liabilities map[string]struct{}
	income      map[string]struct{}
	expenses    map[string]struct{}

	buckets   []string // asset bucket names, sorted for stable output
	portfolio map[string]struct{}
}

func fold(kind string) string { return strings.ToLower(strings.TrimSpace(kind)) }

// newCategoryIndex compiles the settings lists into lookup maps.
func newCategoryIndex(s *Settings) *categoryIndex {
	ix := &categoryIndex{
		assets:      make(map[string]string),
		liabilities: make(map[string]struct{}),
		income:      make(map[string]struct{}),
		expenses:    make(map[string]struct{}),
		portfolio:   make(map[string]struct{}),
	}
	for bucket, kinds := range s.Assets {
		ix.buckets = append(ix.buckets, bucket)
		for _, kind := range kinds {
			ix.assets[fold(kind)] = bucket
		}
	}
	sort.Strings(ix.buckets)
	for _, kind := range s.Liabilities {
		ix.liabilities[fold(kind)] = struct{}{}
	}
	for _, kind := range s.Income {
		ix.income[fold(kind)] = struct{}{}
	}
	for _, kind := range s.Expenses {
		ix.expenses[fold(kind)] = struct{}{}
	}
	for _, bucket := range s.PortfolioBuckets {
		ix.portfolio[fold(bucket)] = struct{}{}
	}
	return ix
}

// resolveNetWorth maps a net-worth entry kind to its bucket. The second
// return distinguishes liability buckets from asset buckets. Unmapped kinds
// return ok=false and must be skipped, never defaulted to a bucket.
func (ix *categoryIndex) resolveNetWorth(kind string) (bucket string, liability, ok bool) {
	k := fold(kind)
	if bucket, ok := ix.assets[k]; ok {
		return bucket, false, true
	}
	if _, ok := ix.liabilities[k]; ok {
		return BucketLiabilities, true, true
	}
	return "", false, false
}

// resolveCashFlow maps a cash-flow entry kind to its direction.
func (ix *categoryIndex) resolveCashFlow(kind string) (income, ok bool) {
	k := fold(kind)
	if _, ok := ix.income[k]; ok {
		return true, true
	}
	if _, ok := ix.expenses[k]; ok {
		return false, true
	}
	return false, false
}

// isPortfolio reports whether an asset bucket counts toward the portfolio
// value used for return computations.
func (ix *categoryIndex) isPortfolio(bucket string) bool {
	_, ok := ix.portfolio[fold(bucket)]
	return ok
}
