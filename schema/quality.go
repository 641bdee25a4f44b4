package schema

// QualityReport summarizes completeness of the current selection. A missing
// or malformed column degrades the dependent views; this report is how that
// degradation is surfaced.
type QualityReport struct {
	Rows               int64              `json:"rows"`
	FreshnessDays      *int               `json:"data_freshness_days"`
	FreshnessStatus    string             `json:"data_freshness_status"`
	UnknownCladePct    float64            `json:"unknown_clade_percent"`
	MissingPctByColumn map[string]float64 `json:"missing_percent_by_column"`
	Alerts             []string           `json:"alerts"`
}
