package ingest

import (
	"sort"
	"strings"
)

// Canonical column identifiers of the outbreak report sheet.
const (
	ColCountry           = "country"
	ColReportDate        = "report_date"
	ColConfirmedCases    = "confirmed_cases"
	ColSuspectedCases    = "suspected_cases"
	ColDeaths            = "deaths"
	ColWeeklyNewCases    = "weekly_new_cases"
	ColCaseFatalityRate  = "case_fatality_rate"
	ColClade             = "clade"
	ColDoseAllocated     = "vaccine_dose_allocated"
	ColDoseDeployed      = "vaccine_dose_deployed"
	ColAdministered      = "vaccinations_administered"
	ColCoverage          = "vaccine_coverage"
	ColSurveillanceSites = "active_surveillance_sites"
	ColTestingLabs       = "testing_laboratries"
	ColTrainedCHWs       = "trained_chws"
	ColDeployedCHWs      = "deployed_chws"
	ColSurveillanceNotes = "surveillance_notes"
)

// columnSynonyms maps each canonical column to the header spellings seen in
// the wild. Headers are compared case-insensitively with surrounding space
// stripped. The "laboratries" misspelling is canonical because the upstream
// sheets ship with it.
var columnSynonyms = map[string][]string{
	ColCountry:           {"country"},
	ColReportDate:        {"report_date", "date", "reportdate"},
	ColConfirmedCases:    {"confirmed_cases", "confirmed", "cases"},
	ColDeaths:            {"deaths", "fatalities"},
	ColAdministered:      {"vaccinations_administered", "vax_administered", "administered"},
	ColSurveillanceSites: {"active_surveillance_sites", "active_sites", "surveillance_sites"},
	ColSuspectedCases:    {"suspected_cases", "suspected"},
	ColCaseFatalityRate:  {"case_fatality_rate", "cfr", "cfr_percent"},
	ColClade:             {"clade", "strain"},
	ColWeeklyNewCases:    {"weekly_new_cases", "weekly_cases"},
	ColDoseAllocated:     {"vaccine_dose_allocated", "allocated"},
	ColDoseDeployed:      {"vaccine_dose_deployed", "deployed"},
	ColCoverage:          {"vaccine_coverage", "coverage_percent", "coverage"},
	ColTestingLabs:       {"testing_laboratries", "testing_labs", "laboratories", "labs"},
	ColTrainedCHWs:       {"trained_chws", "trained_chw"},
	ColDeployedCHWs:      {"deployed_chws", "deployed_chw"},
	ColSurveillanceNotes: {"surveillance_notes", "notes", "surveillance_note"},
}

// numericColumns are coerced with parseNumber; anything else stays text.
var numericColumns = map[string]bool{
	ColConfirmedCases:    true,
	ColSuspectedCases:    true,
	ColDeaths:            true,
	ColWeeklyNewCases:    true,
	ColCaseFatalityRate:  true,
	ColDoseAllocated:     true,
	ColDoseDeployed:      true,
	ColAdministered:      true,
	ColCoverage:          true,
	ColSurveillanceSites: true,
	ColTestingLabs:       true,
	ColTrainedCHWs:       true,
	ColDeployedCHWs:      true,
}

// MatchHeader resolves raw sheet headers to canonical columns. The result
// maps column index to canonical name; unknown headers are simply ignored.
// The first header claiming a canonical name wins.
func MatchHeader(headers []string) map[int]string {
	bySynonym := map[string]string{}
	for canonical, candidates := range columnSynonyms {
		for _, c := range candidates {
			bySynonym[c] = canonical
		}
	}

	matched := map[int]string{}
	claimed := map[string]bool{}
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		canonical, ok := bySynonym[key]
		if !ok || claimed[canonical] {
			continue
		}
		matched[i] = canonical
		claimed[canonical] = true
	}
	return matched
}

// MissingColumns lists canonical columns absent from a matched header. The
// dependent views degrade; ingestion itself never fails on a missing column.
func MissingColumns(matched map[int]string) []string {
	present := map[string]bool{}
	for _, canonical := range matched {
		present[canonical] = true
	}
	missing := []string{}
	for canonical := range columnSynonyms {
		if !present[canonical] {
			missing = append(missing, canonical)
		}
	}
	sort.Strings(missing)
	return missing
}
