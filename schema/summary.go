package schema

import "time"

// CountrySummary is the aggregated country record: sums of every numeric
// column over the contributing rows plus the derived rates. It is produced
// fresh on each query and never persisted with identity.
type CountrySummary struct {
	Country string `json:"country" bson:"country"`
	ISO3    string `json:"iso3" bson:"iso3"`
	Rows    int64  `json:"rows" bson:"rows"`

	ConfirmedCases    *float64 `json:"confirmed_cases" bson:"confirmed_cases"`
	SuspectedCases    *float64 `json:"suspected_cases" bson:"suspected_cases"`
	Deaths            *float64 `json:"deaths" bson:"deaths"`
	WeeklyNewCases    *float64 `json:"weekly_new_cases" bson:"weekly_new_cases"`
	DoseAllocated     *float64 `json:"vaccine_dose_allocated" bson:"vaccine_dose_allocated"`
	DoseDeployed      *float64 `json:"vaccine_dose_deployed" bson:"vaccine_dose_deployed"`
	Administered      *float64 `json:"vaccinations_administered" bson:"vaccinations_administered"`
	SurveillanceSites *float64 `json:"active_surveillance_sites" bson:"active_surveillance_sites"`
	TestingLabs       *float64 `json:"testing_laboratries" bson:"testing_laboratries"`
	TrainedCHWs       *float64 `json:"trained_chws" bson:"trained_chws"`
	DeployedCHWs      *float64 `json:"deployed_chws" bson:"deployed_chws"`

	AvgCaseFatalityPct *float64 `json:"avg_case_fatality_rate" bson:"avg_case_fatality_rate"`

	// Derived rates. Nil means undefined (zero or missing denominator).
	CFRPct                *float64 `json:"cfr_percent" bson:"cfr_percent"`
	DeploymentRatePct     *float64 `json:"deployment_rate_percent" bson:"deployment_rate_percent"`
	AdministrationRatePct *float64 `json:"administration_rate_percent" bson:"administration_rate_percent"`
	UptakeRatePct         *float64 `json:"uptake_rate_percent" bson:"uptake_rate_percent"`

	LatestCoveragePct *float64   `json:"latest_coverage_percent" bson:"latest_coverage_percent"`
	LatestCoverageAt  *time.Time `json:"latest_coverage_at" bson:"latest_coverage_at"`
	LastReportAt      *time.Time `json:"last_report_at" bson:"last_report_at"`

	DeployedCHWsPerCase *float64 `json:"deployed_chws_per_case" bson:"deployed_chws_per_case"`
	TrainedCHWsPerCase  *float64 `json:"trained_chws_per_case" bson:"trained_chws_per_case"`
	LabsPerCase         *float64 `json:"labs_per_case" bson:"labs_per_case"`
	SitesPerCase        *float64 `json:"sites_per_case" bson:"sites_per_case"`
	SurveillancePerCase *float64 `json:"surveillance_per_case" bson:"surveillance_per_case"`
	AllocationPer1000   *float64 `json:"allocation_per_1000_cases" bson:"allocation_per_1000_cases"`

	Rank int `json:"rank" bson:"rank"`
}

// CladeSummary aggregates by normalized clade label.
type CladeSummary struct {
	Clade          string   `json:"clade" bson:"clade"`
	Rows           int64    `json:"rows" bson:"rows"`
	ConfirmedCases *float64 `json:"confirmed_cases" bson:"confirmed_cases"`
	Deaths         *float64 `json:"deaths" bson:"deaths"`
	WeeklyNewCases *float64 `json:"weekly_new_cases" bson:"weekly_new_cases"`
	CFRPct         *float64 `json:"cfr_percent" bson:"cfr_percent"`
}

// CountryCladeSummary aggregates by country and normalized clade.
type CountryCladeSummary struct {
	Country        string   `json:"country" bson:"country"`
	Clade          string   `json:"clade" bson:"clade"`
	Rows           int64    `json:"rows" bson:"rows"`
	ConfirmedCases *float64 `json:"confirmed_cases" bson:"confirmed_cases"`
	Deaths         *float64 `json:"deaths" bson:"deaths"`
	CFRPct         *float64 `json:"cfr_percent" bson:"cfr_percent"`
	Rank           int      `json:"rank" bson:"rank"`
}

// TimePoint is one bucket of a time series keyed by report date or week.
type TimePoint struct {
	Date           time.Time `json:"date" bson:"date"`
	Clade          string    `json:"clade,omitempty" bson:"clade,omitempty"`
	ConfirmedCases *float64  `json:"confirmed_cases" bson:"confirmed_cases"`
	Deaths         *float64  `json:"deaths" bson:"deaths"`
	WeeklyNewCases *float64  `json:"weekly_new_cases" bson:"weekly_new_cases"`
	Rows           int64     `json:"rows" bson:"rows"`
}

// VaccinationSummary is the allocation→deployment→administration funnel for
// one country.
type VaccinationSummary struct {
	Country               string   `json:"country"`
	Allocated             *float64 `json:"allocated"`
	Deployed              *float64 `json:"deployed"`
	Administered          *float64 `json:"administered"`
	DeploymentRatePct     *float64 `json:"deployment_rate_percent"`
	AdministrationRatePct *float64 `json:"administration_rate_percent"`
	UptakeRatePct         *float64 `json:"uptake_rate_percent"`
	UndeployedStock       *float64 `json:"undeployed_stock"`
	NotAdministered       *float64 `json:"in_country_not_administered"`
	Alerts                []string `json:"alerts,omitempty"`
}

// WorkforceSummary carries per-case workforce and surveillance ratios for
// one country.
type WorkforceSummary struct {
	Country             string   `json:"country"`
	ConfirmedCases      *float64 `json:"confirmed_cases"`
	TrainedCHWs         *float64 `json:"trained_chws"`
	DeployedCHWs        *float64 `json:"deployed_chws"`
	TrainedCHWsPerCase  *float64 `json:"trained_chws_per_case"`
	DeployedCHWsPerCase *float64 `json:"deployed_chws_per_case"`
	SurveillancePerCase *float64 `json:"surveillance_per_case"`
}

// GeoPoint is one choropleth datum. Countries that do not resolve against
// the gazetteer keep an empty ISO3 and are skipped by the map, not dropped
// from tabular output.
type GeoPoint struct {
	Country        string   `json:"country"`
	ISO3           string   `json:"iso3"`
	ConfirmedCases *float64 `json:"confirmed_cases"`
	Deaths         *float64 `json:"deaths"`
	CFRPct         *float64 `json:"cfr_percent"`
}

// ExecutiveSummary is the dataset-wide rollup shown at the top of the
// dashboard.
type ExecutiveSummary struct {
	TotalCases        *float64   `json:"total_cases"`
	TotalDeaths       *float64   `json:"total_deaths"`
	OverallCFRPct     *float64   `json:"overall_cfr_percent"`
	TotalVaccinations *float64   `json:"total_vaccinations"`
	TotalAllocated    *float64   `json:"total_allocated"`
	UptakeRatePct     *float64   `json:"uptake_rate_percent"`
	TotalDeployedCHWs *float64   `json:"total_deployed_chws"`
	Countries         int        `json:"countries"`
	Rows              int64      `json:"rows"`
	PeakCountry       string     `json:"peak_country"`
	PeakCountryCases  *float64   `json:"peak_country_cases"`
	LastReportAt      *time.Time `json:"last_report_at"`
	FreshnessDays     *int       `json:"data_freshness_days"`
}
