package epi

import (
	"sort"

	"github.com/openepi/mpox-analytics-api/schema"
)

const (
	PriorityCaseWeight        = 0.4
	PriorityDeathWeight       = 0.3
	PriorityCoverageGapWeight = 0.1
	PriorityCHWGapWeight      = 0.1
	PriorityLabGapWeight      = 0.1
)

// DefaultPriorityWeights returns the composite index coefficients.
func DefaultPriorityWeights() schema.PriorityWeights {
	return schema.PriorityWeights{
		Cases:       PriorityCaseWeight,
		Deaths:      PriorityDeathWeight,
		CoverageGap: PriorityCoverageGapWeight,
		CHWGap:      PriorityCHWGapWeight,
		LabGap:      PriorityLabGapWeight,
	}
}

// PriorityScore computes the composite intervention-priority index for one
// aggregated country record:
//
//	w.Cases·cases + w.Deaths·deaths + w.CoverageGap·(100−coverage)
//	+ w.CHWGap·(1/deployedCHWsPerCase) + w.LabGap·(1/labsPerCase)
//
// A term whose input is missing, or whose per-case denominator is zero, is
// excluded from the sum entirely. The weight is dropped, not redistributed
// and not replaced by a cap: the inverted per-case terms are unbounded as
// the ratio approaches zero, and a country with no cases carries no signal
// for those terms.
func PriorityScoreOf(s schema.CountrySummary, w schema.PriorityWeights) schema.PriorityScore {
	p := schema.PriorityScore{Country: s.Country}

	var score float64
	if s.ConfirmedCases != nil {
		p.CaseTerm = ptr(Round2(w.Cases * *s.ConfirmedCases))
		score += *p.CaseTerm
	}
	if s.Deaths != nil {
		p.DeathTerm = ptr(Round2(w.Deaths * *s.Deaths))
		score += *p.DeathTerm
	}
	if s.LatestCoveragePct != nil {
		p.CoverageGapTerm = ptr(Round2(w.CoverageGap * (100 - *s.LatestCoveragePct)))
		score += *p.CoverageGapTerm
	}
	if s.DeployedCHWsPerCase != nil && *s.DeployedCHWsPerCase != 0 {
		p.CHWGapTerm = ptr(Round2(w.CHWGap / *s.DeployedCHWsPerCase))
		score += *p.CHWGapTerm
	}
	if s.LabsPerCase != nil && *s.LabsPerCase != 0 {
		p.LabGapTerm = ptr(Round2(w.LabGap / *s.LabsPerCase))
		score += *p.LabGapTerm
	}

	p.Score = Round2(score)
	return p
}

// Prioritize scores every aggregated country record and returns the
// scoreboard sorted by score descending with dense ranks. Highest score is
// highest intervention priority.
func Prioritize(sums []schema.CountrySummary, w schema.PriorityWeights) []schema.PriorityScore {
	scores := make([]schema.PriorityScore, len(sums))
	for i, s := range sums {
		scores[i] = PriorityScoreOf(s, w)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	rank := 0
	for i := range scores {
		if i == 0 || Round2(scores[i].Score) != Round2(scores[i-1].Score) {
			rank++
		}
		scores[i].Rank = rank
	}
	return scores
}
