package epi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/schema"
)

func TestRollup(t *testing.T) {
	now := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)

	r1 := row("Kenya", date(2024, 8, 1), ptr(100), ptr(5))
	r1.Administered = ptr(700)
	r1.DoseAllocated = ptr(1000)
	r2 := row("Uganda", date(2024, 8, 10), ptr(300), ptr(15))
	r2.Administered = ptr(100)
	r2.DoseAllocated = ptr(1000)

	sum := Rollup([]schema.ReportRow{r1, r2}, now)

	assert.Equal(t, 400.0, *sum.TotalCases)
	assert.Equal(t, 20.0, *sum.TotalDeaths)
	assert.Equal(t, 5.0, *sum.OverallCFRPct)
	assert.Equal(t, 40.0, *sum.UptakeRatePct)
	assert.Equal(t, "Uganda", sum.PeakCountry)
	assert.Equal(t, 2, sum.Countries)
	assert.Equal(t, 10, *sum.FreshnessDays)
}

func TestRollupEmpty(t *testing.T) {
	sum := Rollup(nil, time.Now())
	assert.Nil(t, sum.TotalCases)
	assert.Nil(t, sum.OverallCFRPct)
	assert.Equal(t, 0, sum.Countries)
	assert.Nil(t, sum.FreshnessDays)
}

func TestVaccinationFunnelAlerts(t *testing.T) {
	sums := []schema.CountrySummary{
		{
			Country:       "A",
			DoseAllocated: ptr(1000),
			DoseDeployed:  ptr(400),
			Administered:  ptr(600), // more administered than deployed
		},
	}
	funnel := VaccinationFunnel(sums)

	assert.Equal(t, 600.0, *funnel[0].UndeployedStock)
	assert.Equal(t, -200.0, *funnel[0].NotAdministered)
	assert.Contains(t, funnel[0].Alerts, "administered exceeds deployed doses")
}

func TestQuality(t *testing.T) {
	now := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	r1 := row("A", date(2024, 8, 1), ptr(10), nil)
	r1.Clade = "unknown"
	r2 := row("A", date(2024, 8, 2), nil, ptr(1))
	r2.Clade = "IIb"
	r2.SuspectedCases = ptr(3)
	r2.CaseFatalityPct = ptr(2)

	q := Quality([]schema.ReportRow{r1, r2}, now)

	assert.Equal(t, int64(2), q.Rows)
	assert.Equal(t, 50.0, q.MissingPctByColumn["confirmed_cases"])
	assert.Equal(t, 50.0, q.MissingPctByColumn["deaths"])
	assert.Equal(t, 50.0, q.MissingPctByColumn["suspected_cases"])
	assert.Equal(t, 50.0, q.MissingPctByColumn["case_fatality_rate"])
	assert.Equal(t, 50.0, q.UnknownCladePct)
	assert.Equal(t, "Stale", q.FreshnessStatus)
	assert.Contains(t, q.Alerts, "dataset is stale")
}
