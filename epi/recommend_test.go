package epi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/schema"
)

func codes(r schema.CountryRecommendation) []string {
	out := make([]string, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		out[i] = rec.Code
	}
	return out
}

func TestRecommendAllRulesBreached(t *testing.T) {
	s := schema.CountrySummary{
		Country:             "A",
		CFRPct:              ptr(5),
		DeployedCHWsPerCase: ptr(0.1),
		SurveillancePerCase: ptr(0.001),
		AllocationPer1000:   ptr(500),
		UptakeRatePct:       ptr(40),
		LatestCoveragePct:   nil,
	}
	r := Recommend(s, 99)

	assert.Equal(t, []string{
		"CLINICAL_CFR",
		"WORKFORCE_SURGE",
		"SURVEILLANCE_EXPAND",
		"ALLOCATION_ADVOCATE",
		"UPTAKE_LASTMILE",
		"DATA_COVERAGE",
	}, codes(r))
	assert.Equal(t, 99.0, r.PriorityScore)
}

func TestRecommendMaintain(t *testing.T) {
	s := schema.CountrySummary{
		Country:             "B",
		CFRPct:              ptr(1),
		DeployedCHWsPerCase: ptr(2),
		SurveillancePerCase: ptr(0.5),
		AllocationPer1000:   ptr(5000),
		UptakeRatePct:       ptr(90),
		LatestCoveragePct:   ptr(80),
	}
	r := Recommend(s, 10)
	assert.Equal(t, []string{"MAINTAIN"}, codes(r))
}

func TestRecommendUndefinedMetricsDoNotTrigger(t *testing.T) {
	s := schema.CountrySummary{Country: "C", LatestCoveragePct: ptr(50)}
	r := Recommend(s, 0)
	assert.Equal(t, []string{"MAINTAIN"}, codes(r), "nil metrics never breach thresholds")
}
