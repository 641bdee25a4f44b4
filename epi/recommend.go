package epi

import "github.com/openepi/mpox-analytics-api/schema"

// Intervention thresholds from the surveillance playbook: breaching one adds
// the paired advisory to the country's recommendation list.
const (
	highCFRPct             = 3.0
	lowDeployedCHWsPerCase = 0.5
	lowSurveillancePerCase = 0.02
	lowAllocationPer1000   = 2000.0
	lowUptakePct           = 70.0
)

var (
	recClinical = schema.Recommendation{
		Code:    "CLINICAL_CFR",
		Message: "Investigate drivers of high CFR; ensure rapid referral, oxygen, antivirals, IPC training.",
	}
	recWorkforce = schema.Recommendation{
		Code:    "WORKFORCE_SURGE",
		Message: "Surge deploy CHWs; target under 500 cases per deployed CHW; mobile teams for hotspots.",
	}
	recSurveillance = schema.Recommendation{
		Code:    "SURVEILLANCE_EXPAND",
		Message: "Expand active sites and labs; improve sample transport and reporting cadence.",
	}
	recAllocation = schema.Recommendation{
		Code:    "ALLOCATION_ADVOCATE",
		Message: "Advocate for doses aligned to burden; prioritize high-risk geographies.",
	}
	recUptake = schema.Recommendation{
		Code:    "UPTAKE_LASTMILE",
		Message: "Address last-mile constraints; microplanning, outreach, community engagement.",
	}
	recCoverageData = schema.Recommendation{
		Code:    "DATA_COVERAGE",
		Message: "Improve vaccine coverage reporting frequency and completeness.",
	}
	recMaintain = schema.Recommendation{
		Code:    "MAINTAIN",
		Message: "Maintain current response; continue monitoring trends and capacity.",
	}
)

// Recommend evaluates the threshold rules against one aggregated country
// record. Undefined metrics never trigger a rule; a country breaching
// nothing gets the maintain advisory.
func Recommend(s schema.CountrySummary, score float64) schema.CountryRecommendation {
	recs := []schema.Recommendation{}

	if s.CFRPct != nil && *s.CFRPct > highCFRPct {
		recs = append(recs, recClinical)
	}
	if s.DeployedCHWsPerCase != nil && *s.DeployedCHWsPerCase < lowDeployedCHWsPerCase {
		recs = append(recs, recWorkforce)
	}
	if s.SurveillancePerCase != nil && *s.SurveillancePerCase < lowSurveillancePerCase {
		recs = append(recs, recSurveillance)
	}
	if s.AllocationPer1000 != nil && *s.AllocationPer1000 < lowAllocationPer1000 {
		recs = append(recs, recAllocation)
	}
	if s.UptakeRatePct != nil && *s.UptakeRatePct < lowUptakePct {
		recs = append(recs, recUptake)
	}
	if s.LatestCoveragePct == nil {
		recs = append(recs, recCoverageData)
	}
	if len(recs) == 0 {
		recs = append(recs, recMaintain)
	}

	return schema.CountryRecommendation{
		Country:             s.Country,
		PriorityScore:       score,
		CFRPct:              s.CFRPct,
		DeployedCHWsPerCase: s.DeployedCHWsPerCase,
		SurveillancePerCase: s.SurveillancePerCase,
		AllocationPer1000:   s.AllocationPer1000,
		UptakeRatePct:       s.UptakeRatePct,
		Recommendations:     recs,
	}
}
