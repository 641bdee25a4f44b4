package epi

import (
	"time"

	"github.com/openepi/mpox-analytics-api/schema"
)

const (
	freshnessCurrentDays = 7
	freshnessRecentDays  = 30
)

// Rollup computes the dataset-wide executive summary over the selection.
// now anchors the freshness calculation.
func Rollup(rows []schema.ReportRow, now time.Time) schema.ExecutiveSummary {
	sums := AggregateCountries(rows)

	out := schema.ExecutiveSummary{
		Countries: len(sums),
		Rows:      int64(len(rows)),
	}

	var cases, deaths, vax, allocated, chws acc
	for _, s := range sums {
		cases.add(s.ConfirmedCases)
		deaths.add(s.Deaths)
		vax.add(s.Administered)
		allocated.add(s.DoseAllocated)
		chws.add(s.DeployedCHWs)

		if s.ConfirmedCases != nil &&
			(out.PeakCountryCases == nil || *s.ConfirmedCases > *out.PeakCountryCases) {
			out.PeakCountry = s.Country
			out.PeakCountryCases = s.ConfirmedCases
		}
		if s.LastReportAt != nil &&
			(out.LastReportAt == nil || s.LastReportAt.After(*out.LastReportAt)) {
			out.LastReportAt = s.LastReportAt
		}
	}

	out.TotalCases = cases.total()
	out.TotalDeaths = deaths.total()
	out.TotalVaccinations = vax.total()
	out.TotalAllocated = allocated.total()
	out.TotalDeployedCHWs = chws.total()
	out.OverallCFRPct = Percent(out.TotalDeaths, out.TotalCases)
	out.UptakeRatePct = Percent(out.TotalVaccinations, out.TotalAllocated)

	if out.LastReportAt != nil {
		days := int(now.Sub(*out.LastReportAt).Hours() / 24)
		out.FreshnessDays = &days
	}
	return out
}

// VaccinationFunnel projects the allocation→deployment→administration funnel
// out of aggregated country records, with stock gaps and plausibility
// alerts. Funnel ordering (allocated ≥ deployed ≥ administered) is not
// enforced; violations surface as alerts.
func VaccinationFunnel(sums []schema.CountrySummary) []schema.VaccinationSummary {
	out := make([]schema.VaccinationSummary, 0, len(sums))
	for _, s := range sums {
		v := schema.VaccinationSummary{
			Country:               s.Country,
			Allocated:             s.DoseAllocated,
			Deployed:              s.DoseDeployed,
			Administered:          s.Administered,
			DeploymentRatePct:     s.DeploymentRatePct,
			AdministrationRatePct: s.AdministrationRatePct,
			UptakeRatePct:         s.UptakeRatePct,
		}
		if s.DoseAllocated != nil && s.DoseDeployed != nil {
			v.UndeployedStock = ptr(*s.DoseAllocated - *s.DoseDeployed)
		}
		if s.DoseDeployed != nil && s.Administered != nil {
			v.NotAdministered = ptr(*s.DoseDeployed - *s.Administered)
		}

		if v.NotAdministered != nil && *v.NotAdministered < 0 {
			v.Alerts = append(v.Alerts, "administered exceeds deployed doses")
		}
		if v.UndeployedStock != nil && *v.UndeployedStock < 0 {
			v.Alerts = append(v.Alerts, "deployed exceeds allocated doses")
		}
		if v.DeploymentRatePct != nil && *v.DeploymentRatePct > 110 {
			v.Alerts = append(v.Alerts, "deployment rate exceeds 110%")
		}
		if v.AdministrationRatePct != nil && *v.AdministrationRatePct > 110 {
			v.Alerts = append(v.Alerts, "administration rate exceeds 110%")
		}
		out = append(out, v)
	}
	return out
}

// WorkforceCapacity projects per-case workforce and surveillance ratios out
// of aggregated country records.
func WorkforceCapacity(sums []schema.CountrySummary) []schema.WorkforceSummary {
	out := make([]schema.WorkforceSummary, 0, len(sums))
	for _, s := range sums {
		out = append(out, schema.WorkforceSummary{
			Country:             s.Country,
			ConfirmedCases:      s.ConfirmedCases,
			TrainedCHWs:         s.TrainedCHWs,
			DeployedCHWs:        s.DeployedCHWs,
			TrainedCHWsPerCase:  s.TrainedCHWsPerCase,
			DeployedCHWsPerCase: s.DeployedCHWsPerCase,
			SurveillancePerCase: s.SurveillancePerCase,
		})
	}
	return out
}

// Quality reports per-column missing fractions, unknown-clade share, and
// freshness over the selection.
func Quality(rows []schema.ReportRow, now time.Time) schema.QualityReport {
	out := schema.QualityReport{
		Rows:               int64(len(rows)),
		MissingPctByColumn: map[string]float64{},
	}
	if len(rows) == 0 {
		return out
	}

	missing := map[string]int{}
	columns := map[string]func(schema.ReportRow) *float64{
		"confirmed_cases":           func(r schema.ReportRow) *float64 { return r.ConfirmedCases },
		"suspected_cases":           func(r schema.ReportRow) *float64 { return r.SuspectedCases },
		"deaths":                    func(r schema.ReportRow) *float64 { return r.Deaths },
		"case_fatality_rate":        func(r schema.ReportRow) *float64 { return r.CaseFatalityPct },
		"weekly_new_cases":          func(r schema.ReportRow) *float64 { return r.WeeklyNewCases },
		"vaccine_dose_allocated":    func(r schema.ReportRow) *float64 { return r.DoseAllocated },
		"vaccine_dose_deployed":     func(r schema.ReportRow) *float64 { return r.DoseDeployed },
		"vaccinations_administered": func(r schema.ReportRow) *float64 { return r.Administered },
		"vaccine_coverage":          func(r schema.ReportRow) *float64 { return r.CoveragePct },
		"active_surveillance_sites": func(r schema.ReportRow) *float64 { return r.SurveillanceSites },
		"testing_laboratries":       func(r schema.ReportRow) *float64 { return r.TestingLabs },
		"trained_chws":              func(r schema.ReportRow) *float64 { return r.TrainedCHWs },
		"deployed_chws":             func(r schema.ReportRow) *float64 { return r.DeployedCHWs },
	}

	unknownClade := 0
	var lastReport *time.Time
	for _, r := range rows {
		for name, get := range columns {
			if get(r) == nil {
				missing[name]++
			}
		}
		if r.NormalizedClade() == schema.UnknownClade {
			unknownClade++
		}
		if r.ReportAt != nil && (lastReport == nil || r.ReportAt.After(*lastReport)) {
			lastReport = r.ReportAt
		}
	}

	n := float64(len(rows))
	for name, count := range missing {
		if count > 0 {
			out.MissingPctByColumn[name] = Round2(float64(count) * 100 / n)
		}
	}
	out.UnknownCladePct = Round2(float64(unknownClade) * 100 / n)

	if lastReport != nil {
		days := int(now.Sub(*lastReport).Hours() / 24)
		out.FreshnessDays = &days
		switch {
		case days <= freshnessCurrentDays:
			out.FreshnessStatus = "Current"
		case days <= freshnessRecentDays:
			out.FreshnessStatus = "Recent"
		default:
			out.FreshnessStatus = "Stale"
			out.Alerts = append(out.Alerts, "dataset is stale")
		}
	}
	return out
}
