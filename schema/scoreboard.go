package schema

import "time"

// PriorityWeights are the composite index coefficients. Terms whose input is
// missing or whose denominator is zero are excluded from the sum; their
// weight is dropped rather than capped or treated as maximal.
type PriorityWeights struct {
	Cases       float64 `json:"cases" bson:"cases"`
	Deaths      float64 `json:"deaths" bson:"deaths"`
	CoverageGap float64 `json:"coverage_gap" bson:"coverage_gap"`
	CHWGap      float64 `json:"chw_gap" bson:"chw_gap"`
	LabGap      float64 `json:"lab_gap" bson:"lab_gap"`
}

// PriorityScore is the composite intervention-priority index for a country,
// with the individual term contributions retained for drill-down.
type PriorityScore struct {
	Country string  `json:"country" bson:"country"`
	Score   float64 `json:"score" bson:"score"`
	Rank    int     `json:"rank" bson:"rank"`

	CaseTerm        *float64 `json:"case_term" bson:"case_term"`
	DeathTerm       *float64 `json:"death_term" bson:"death_term"`
	CoverageGapTerm *float64 `json:"coverage_gap_term" bson:"coverage_gap_term"`
	CHWGapTerm      *float64 `json:"chw_gap_term" bson:"chw_gap_term"`
	LabGapTerm      *float64 `json:"lab_gap_term" bson:"lab_gap_term"`
}

// Scoreboard is the persisted priority snapshot refreshed by the background
// worker after each dataset upload.
type Scoreboard struct {
	DatasetID  string          `json:"dataset_id" bson:"dataset_id"`
	ComputedAt time.Time       `json:"computed_at" bson:"computed_at"`
	Weights    PriorityWeights `json:"weights" bson:"weights"`
	Scores     []PriorityScore `json:"scores" bson:"scores"`
}

// Recommendation is one coded advisory produced by the threshold rules.
type Recommendation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CountryRecommendation pairs a country's advisories with the metrics that
// triggered them.
type CountryRecommendation struct {
	Country             string           `json:"country"`
	PriorityScore       float64          `json:"priority_score"`
	CFRPct              *float64         `json:"cfr_percent"`
	DeployedCHWsPerCase *float64         `json:"deployed_chws_per_case"`
	SurveillancePerCase *float64         `json:"surveillance_per_case"`
	AllocationPer1000   *float64         `json:"allocation_per_1000_cases"`
	UptakeRatePct       *float64         `json:"uptake_rate_percent"`
	Recommendations     []Recommendation `json:"recommendations"`
}
