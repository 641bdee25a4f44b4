package schema

import (
	"strings"
	"time"
)

const (
	ReportRowCollection  = "reportRows"
	ScoreboardCollection = "scoreboards"
)

// UnknownClade is the closed-enumeration bucket for rows whose clade is
// missing or reported with an explicit "unknown" sentinel.
const UnknownClade = "Unknown"

// ReportRow is one outbreak report for a country on a report date. Numeric
// fields are pointers: nil means the source cell was empty or unparseable
// and the value is excluded from sums, never coerced to zero.
type ReportRow struct {
	DatasetID string     `json:"dataset_id" bson:"dataset_id"`
	Country   string     `json:"country" bson:"country"`
	ReportAt  *time.Time `json:"report_date" bson:"report_date"`

	ConfirmedCases  *float64 `json:"confirmed_cases" bson:"confirmed_cases"`
	SuspectedCases  *float64 `json:"suspected_cases" bson:"suspected_cases"`
	Deaths          *float64 `json:"deaths" bson:"deaths"`
	WeeklyNewCases  *float64 `json:"weekly_new_cases" bson:"weekly_new_cases"`
	CaseFatalityPct *float64 `json:"case_fatality_rate" bson:"case_fatality_rate"`

	Clade string `json:"clade" bson:"clade"`

	DoseAllocated *float64 `json:"vaccine_dose_allocated" bson:"vaccine_dose_allocated"`
	DoseDeployed  *float64 `json:"vaccine_dose_deployed" bson:"vaccine_dose_deployed"`
	Administered  *float64 `json:"vaccinations_administered" bson:"vaccinations_administered"`
	CoveragePct   *float64 `json:"vaccine_coverage" bson:"vaccine_coverage"`

	SurveillanceSites *float64 `json:"active_surveillance_sites" bson:"active_surveillance_sites"`
	TestingLabs       *float64 `json:"testing_laboratries" bson:"testing_laboratries"`
	TrainedCHWs       *float64 `json:"trained_chws" bson:"trained_chws"`
	DeployedCHWs      *float64 `json:"deployed_chws" bson:"deployed_chws"`

	SurveillanceNotes string `json:"surveillance_notes" bson:"surveillance_notes"`
}

// NormalizedClade folds empty and case-insensitive "unknown" labels into the
// UnknownClade bucket so grouping works over a closed set of labels.
func (r ReportRow) NormalizedClade() string {
	return NormalizeClade(r.Clade)
}

func NormalizeClade(clade string) string {
	c := strings.TrimSpace(clade)
	if c == "" || strings.EqualFold(c, UnknownClade) {
		return UnknownClade
	}
	return c
}

// RowFilter is the pre-aggregation row selection: all active conditions are
// ANDed. Date bounds are inclusive. Clade values are matched after
// normalization, so filtering on UnknownClade selects null-clade rows too.
type RowFilter struct {
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	Countries []string   `json:"countries"`
	Clades    []string   `json:"clades"`
	Notes     []string   `json:"notes"`
}

// Empty reports whether no condition is active.
func (f RowFilter) Empty() bool {
	return f.Start == nil && f.End == nil &&
		len(f.Countries) == 0 && len(f.Clades) == 0 && len(f.Notes) == 0
}

// FilterOptions enumerates the filterable values present in a dataset, used
// to populate the dashboard filter controls.
type FilterOptions struct {
	Countries []string   `json:"countries"`
	Clades    []string   `json:"clades"`
	Notes     []string   `json:"notes"`
	MinDate   *time.Time `json:"min_date"`
	MaxDate   *time.Time `json:"max_date"`
}
