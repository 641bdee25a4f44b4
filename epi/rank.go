package epi

import (
	"sort"

	"github.com/openepi/mpox-analytics-api/schema"
)

// Order returns the indices 0..n-1 sorted by the given optional key.
// Undefined (nil) keys always sort last regardless of direction; ties keep
// input order, so ranking the same input twice gives identical output.
func Order(n int, key func(int) *float64, desc bool) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := key(idx[a]), key(idx[b])
		if ka == nil {
			return false
		}
		if kb == nil {
			return true
		}
		if desc {
			return *ka > *kb
		}
		return *ka < *kb
	})
	return idx
}

// DenseRanks assigns 1-based dense ranks to keys already in sorted order.
// Equality is judged at 2-decimal display precision. Nil keys extend the
// rank of a trailing undefined block: the first nil after the defined keys
// starts a new rank and all following nils share it.
func DenseRanks(sorted []*float64) []int {
	ranks := make([]int, len(sorted))
	rank := 0
	for i, k := range sorted {
		switch {
		case i == 0:
			rank = 1
		case k == nil:
			if sorted[i-1] != nil {
				rank++
			}
		case sorted[i-1] == nil || Round2(*k) != Round2(*sorted[i-1]):
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}

// CountrySortKey resolves a sort-key name to a summary accessor. Unknown
// names report false so callers can fall back to a default.
func CountrySortKey(name string) (func(schema.CountrySummary) *float64, bool) {
	keys := map[string]func(schema.CountrySummary) *float64{
		"confirmed_cases":     func(s schema.CountrySummary) *float64 { return s.ConfirmedCases },
		"deaths":              func(s schema.CountrySummary) *float64 { return s.Deaths },
		"cfr":                 func(s schema.CountrySummary) *float64 { return s.CFRPct },
		"uptake":              func(s schema.CountrySummary) *float64 { return s.UptakeRatePct },
		"deployment":          func(s schema.CountrySummary) *float64 { return s.DeploymentRatePct },
		"coverage":            func(s schema.CountrySummary) *float64 { return s.LatestCoveragePct },
		"chws_per_case":       func(s schema.CountrySummary) *float64 { return s.DeployedCHWsPerCase },
		"labs_per_case":       func(s schema.CountrySummary) *float64 { return s.LabsPerCase },
		"allocation_per_1000": func(s schema.CountrySummary) *float64 { return s.AllocationPer1000 },
	}
	k, ok := keys[name]
	return k, ok
}

// RankCountries orders summaries by the key, assigns dense ranks and
// truncates to the first topN when topN > 0.
func RankCountries(sums []schema.CountrySummary, key func(schema.CountrySummary) *float64, desc bool, topN int) []schema.CountrySummary {
	order := Order(len(sums), func(i int) *float64 { return key(sums[i]) }, desc)

	sortedKeys := make([]*float64, len(order))
	for i, j := range order {
		sortedKeys[i] = key(sums[j])
	}
	ranks := DenseRanks(sortedKeys)

	out := make([]schema.CountrySummary, len(order))
	for i, j := range order {
		out[i] = sums[j]
		out[i].Rank = ranks[i]
	}
	if topN > 0 && topN < len(out) {
		out = out[:topN]
	}
	return out
}

// RankCountryClades orders country-clade pairs by CFR descending and keeps
// the first topN, the "top clade-country combinations" table.
func RankCountryClades(pairs []schema.CountryCladeSummary, topN int) []schema.CountryCladeSummary {
	order := Order(len(pairs), func(i int) *float64 { return pairs[i].CFRPct }, true)

	sortedKeys := make([]*float64, len(order))
	for i, j := range order {
		sortedKeys[i] = pairs[j].CFRPct
	}
	ranks := DenseRanks(sortedKeys)

	out := make([]schema.CountryCladeSummary, len(order))
	for i, j := range order {
		out[i] = pairs[j]
		out[i].Rank = ranks[i]
	}
	if topN > 0 && topN < len(out) {
		out = out[:topN]
	}
	return out
}
