package epi

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/schema"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func row(country string, at *time.Time, confirmed, deaths *float64) schema.ReportRow {
	return schema.ReportRow{
		Country:        country,
		ReportAt:       at,
		ConfirmedCases: confirmed,
		Deaths:         deaths,
	}
}

func TestAggregateCountriesCFR(t *testing.T) {
	rows := []schema.ReportRow{
		row("A", date(2024, 8, 1), ptr(10), ptr(1)),
		row("A", date(2024, 8, 8), ptr(20), ptr(2)),
		row("A", date(2024, 8, 15), ptr(0), ptr(0)),
	}

	sums := AggregateCountries(rows)
	assert.Len(t, sums, 1)

	s := sums[0]
	assert.Equal(t, "A", s.Country)
	assert.Equal(t, int64(3), s.Rows)
	assert.Equal(t, 30.0, *s.ConfirmedCases)
	assert.Equal(t, 3.0, *s.Deaths)
	assert.Equal(t, 10.0, *s.CFRPct)
}

func TestAggregateCountriesUndefinedCFR(t *testing.T) {
	rows := []schema.ReportRow{
		row("B", date(2024, 8, 1), ptr(0), ptr(0)),
	}
	sums := AggregateCountries(rows)
	assert.Nil(t, sums[0].CFRPct, "CFR over zero confirmed cases must be undefined")
}

func TestAggregateCountriesNullsExcluded(t *testing.T) {
	rows := []schema.ReportRow{
		row("C", date(2024, 8, 1), ptr(5), nil),
		row("C", date(2024, 8, 2), nil, nil),
	}
	sums := AggregateCountries(rows)
	s := sums[0]

	assert.Equal(t, 5.0, *s.ConfirmedCases, "nil cells are excluded, not zeroed")
	assert.Nil(t, s.Deaths, "a column with no non-null contribution stays nil")
	assert.Equal(t, int64(2), s.Rows)
}

func TestAggregateCountriesDeterministic(t *testing.T) {
	rows := []schema.ReportRow{
		row("Uganda", date(2024, 8, 1), ptr(7), ptr(1)),
		row("Kenya", date(2024, 8, 1), ptr(3), ptr(0)),
		row("Uganda", date(2024, 8, 2), ptr(2), nil),
	}
	first := AggregateCountries(rows)
	second := AggregateCountries(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("aggregating the same input twice must give identical output")
	}
	assert.Equal(t, "Kenya", first[0].Country, "output sorted by country")
}

func TestAggregateCountriesFilteredSelection(t *testing.T) {
	all := []schema.ReportRow{
		row("Kenya", date(2024, 8, 1), ptr(3), nil),
		row("Uganda", date(2024, 8, 1), ptr(7), nil),
		row("Nigeria", date(2024, 8, 1), ptr(9), nil),
		row("Uganda", date(2024, 8, 8), ptr(1), nil),
	}
	wanted := map[string]bool{"Kenya": true, "Uganda": true}
	filtered := []schema.ReportRow{}
	for _, r := range all {
		if wanted[r.Country] {
			filtered = append(filtered, r)
		}
	}

	sums := AggregateCountries(filtered)
	assert.Len(t, sums, 2, "exactly the filtered countries, each once")
	assert.Equal(t, "Kenya", sums[0].Country)
	assert.Equal(t, "Uganda", sums[1].Country)
}

func TestAggregateCountriesEmptyInput(t *testing.T) {
	sums := AggregateCountries(nil)
	assert.Empty(t, sums)
}

func TestLatestCoverage(t *testing.T) {
	cov := func(c string, at *time.Time, coverage *float64) schema.ReportRow {
		r := row(c, at, nil, nil)
		r.CoveragePct = coverage
		return r
	}

	rows := []schema.ReportRow{
		cov("A", date(2024, 8, 10), ptr(40)),
		cov("A", date(2024, 8, 20), nil), // newest row has no coverage
		cov("A", date(2024, 8, 15), ptr(55)),
		cov("A", date(2024, 8, 15), ptr(60)), // same date, later input wins
	}

	s := AggregateCountries(rows)[0]
	assert.Equal(t, 60.0, *s.LatestCoveragePct)
	assert.Equal(t, *date(2024, 8, 15), *s.LatestCoverageAt)
	assert.Equal(t, *date(2024, 8, 20), *s.LastReportAt)
}

func TestAvgCaseFatalityRounding(t *testing.T) {
	r1 := row("A", date(2024, 8, 1), nil, nil)
	r1.CaseFatalityPct = ptr(1)
	r2 := row("A", date(2024, 8, 2), nil, nil)
	r2.CaseFatalityPct = ptr(2)
	r3 := row("A", date(2024, 8, 3), nil, nil)
	r3.CaseFatalityPct = ptr(2)

	s := AggregateCountries([]schema.ReportRow{r1, r2, r3})[0]
	assert.Equal(t, 1.67, *s.AvgCaseFatalityPct)
}

func TestAggregateCladesUnknownBucket(t *testing.T) {
	clade := func(c string, confirmed *float64) schema.ReportRow {
		return schema.ReportRow{Country: "A", Clade: c, ConfirmedCases: confirmed}
	}

	rows := []schema.ReportRow{
		clade("IIb", ptr(10)),
		clade("", ptr(1)),
		clade("unknown", ptr(2)),
		clade("UNKNOWN", ptr(3)),
		clade("Ia", ptr(4)),
	}

	sums := AggregateClades(rows)
	assert.Len(t, sums, 3)
	assert.Equal(t, "Ia", sums[0].Clade)
	assert.Equal(t, "IIb", sums[1].Clade)
	assert.Equal(t, schema.UnknownClade, sums[2].Clade, "unknown bucket sorts last")
	assert.Equal(t, 6.0, *sums[2].ConfirmedCases, "null and sentinel clades share one bucket")
	assert.Equal(t, int64(3), sums[2].Rows)
}

func TestAggregateCladesCaseInsensitiveOrder(t *testing.T) {
	rows := []schema.ReportRow{
		{Country: "A", Clade: "IIb", ConfirmedCases: ptr(1)},
		{Country: "A", Clade: "Ia", ConfirmedCases: ptr(2)},
		{Country: "A", Clade: "hMPXV-1", ConfirmedCases: ptr(3)},
		{Country: "A", ConfirmedCases: ptr(4)},
	}

	sums := AggregateClades(rows)
	got := make([]string, len(sums))
	for i, s := range sums {
		got[i] = s.Clade
	}
	assert.Equal(t, []string{"hMPXV-1", "Ia", "IIb", schema.UnknownClade}, got,
		"labels fold before comparing; byte order would put IIb first")

	matrix := AggregateCountryClades(rows)
	assert.Equal(t, "hMPXV-1", matrix[0].Clade)
	assert.Equal(t, schema.UnknownClade, matrix[3].Clade)
}

func TestAggregateSeries(t *testing.T) {
	rows := []schema.ReportRow{
		row("A", date(2024, 8, 5), ptr(3), nil),  // Monday
		row("B", date(2024, 8, 7), ptr(4), nil),  // same week
		row("A", date(2024, 8, 12), ptr(5), nil), // next Monday
		row("A", nil, ptr(100), nil),             // no date, excluded
	}

	daily := AggregateSeries(rows, IntervalDaily, false)
	assert.Len(t, daily, 3)

	weekly := AggregateSeries(rows, IntervalWeekly, false)
	assert.Len(t, weekly, 2)
	assert.Equal(t, *date(2024, 8, 5), weekly[0].Date)
	assert.Equal(t, 7.0, *weekly[0].ConfirmedCases)
	assert.Equal(t, 5.0, *weekly[1].ConfirmedCases)
}

func TestWeekStart(t *testing.T) {
	// 2024-08-07 is a Wednesday; its week starts Monday 2024-08-05.
	assert.Equal(t, *date(2024, 8, 5), weekStart(*date(2024, 8, 7)))
	// A Sunday belongs to the week starting the previous Monday.
	assert.Equal(t, *date(2024, 8, 5), weekStart(*date(2024, 8, 11)))
	assert.Equal(t, *date(2024, 8, 5), weekStart(*date(2024, 8, 5)))
}
