package epi

import (
	"sort"
	"strings"
	"time"

	"github.com/openepi/mpox-analytics-api/schema"
)

// cladeLess orders clade labels case-insensitively, raw compare on folded
// ties. UnknownClade always sorts last.
func cladeLess(a, b string) bool {
	if a == schema.UnknownClade {
		return false
	}
	if b == schema.UnknownClade {
		return true
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// acc accumulates one numeric column. Nil inputs are excluded; a group whose
// every input was nil reports a nil sum rather than zero.
type acc struct {
	sum float64
	n   int64
}

func (a *acc) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.n++
}

func (a acc) total() *float64 {
	if a.n == 0 {
		return nil
	}
	v := a.sum
	return &v
}

func (a acc) mean() *float64 {
	if a.n == 0 {
		return nil
	}
	v := Round2(a.sum / float64(a.n))
	return &v
}

type countryTotals struct {
	rows int64

	confirmed, suspected, deaths, weekly   acc
	allocated, deployed, administered      acc
	sites, labs, trainedCHWs, deployedCHWs acc
	cfr                                    acc

	coverage     *float64
	coverageAt   *time.Time
	lastReportAt *time.Time
}

func (t *countryTotals) add(r schema.ReportRow) {
	t.rows++
	t.confirmed.add(r.ConfirmedCases)
	t.suspected.add(r.SuspectedCases)
	t.deaths.add(r.Deaths)
	t.weekly.add(r.WeeklyNewCases)
	t.allocated.add(r.DoseAllocated)
	t.deployed.add(r.DoseDeployed)
	t.administered.add(r.Administered)
	t.sites.add(r.SurveillanceSites)
	t.labs.add(r.TestingLabs)
	t.trainedCHWs.add(r.TrainedCHWs)
	t.deployedCHWs.add(r.DeployedCHWs)
	t.cfr.add(r.CaseFatalityPct)

	if r.ReportAt != nil {
		if t.lastReportAt == nil || r.ReportAt.After(*t.lastReportAt) {
			at := *r.ReportAt
			t.lastReportAt = &at
		}
		// Latest coverage: maximum report date among rows carrying a
		// coverage value; equal dates resolved by input order, last wins.
		if r.CoveragePct != nil {
			if t.coverageAt == nil || !r.ReportAt.Before(*t.coverageAt) {
				at := *r.ReportAt
				cov := *r.CoveragePct
				t.coverageAt = &at
				t.coverage = &cov
			}
		}
	}
}

func (t countryTotals) summary(country string) schema.CountrySummary {
	s := schema.CountrySummary{
		Country:            country,
		Rows:               t.rows,
		ConfirmedCases:     t.confirmed.total(),
		SuspectedCases:     t.suspected.total(),
		Deaths:             t.deaths.total(),
		WeeklyNewCases:     t.weekly.total(),
		DoseAllocated:      t.allocated.total(),
		DoseDeployed:       t.deployed.total(),
		Administered:       t.administered.total(),
		SurveillanceSites:  t.sites.total(),
		TestingLabs:        t.labs.total(),
		TrainedCHWs:        t.trainedCHWs.total(),
		DeployedCHWs:       t.deployedCHWs.total(),
		AvgCaseFatalityPct: t.cfr.mean(),
		LatestCoveragePct:  t.coverage,
		LatestCoverageAt:   t.coverageAt,
		LastReportAt:       t.lastReportAt,
	}

	s.CFRPct = Percent(s.Deaths, s.ConfirmedCases)
	s.DeploymentRatePct = Percent(s.DoseDeployed, s.DoseAllocated)
	s.AdministrationRatePct = Percent(s.Administered, s.DoseDeployed)
	s.UptakeRatePct = Percent(s.Administered, s.DoseAllocated)

	s.DeployedCHWsPerCase = PerCase(s.DeployedCHWs, s.ConfirmedCases)
	s.TrainedCHWsPerCase = PerCase(s.TrainedCHWs, s.ConfirmedCases)
	s.LabsPerCase = PerCase(s.TestingLabs, s.ConfirmedCases)
	s.SitesPerCase = PerCase(s.SurveillanceSites, s.ConfirmedCases)
	s.SurveillancePerCase = PerCase(SumOf(s.SurveillanceSites, s.TestingLabs), s.ConfirmedCases)
	s.AllocationPer1000 = Per1000(s.DoseAllocated, s.ConfirmedCases)

	return s
}

// AggregateCountries groups rows by country and sums every numeric column,
// deriving the rate metrics from the grouped sums. Output is sorted by
// country name so repeated runs over the same input are identical.
func AggregateCountries(rows []schema.ReportRow) []schema.CountrySummary {
	groups := map[string]*countryTotals{}
	order := []string{}
	for _, r := range rows {
		t, ok := groups[r.Country]
		if !ok {
			t = &countryTotals{}
			groups[r.Country] = t
			order = append(order, r.Country)
		}
		t.add(r)
	}
	sort.Strings(order)

	out := make([]schema.CountrySummary, 0, len(order))
	for _, country := range order {
		out = append(out, groups[country].summary(country))
	}
	return out
}

// AggregateClades groups rows by normalized clade. Missing and sentinel
// "unknown" labels share the UnknownClade bucket, which sorts last.
func AggregateClades(rows []schema.ReportRow) []schema.CladeSummary {
	type cladeTotals struct {
		rows                      int64
		confirmed, deaths, weekly acc
	}
	groups := map[string]*cladeTotals{}
	for _, r := range rows {
		clade := r.NormalizedClade()
		t, ok := groups[clade]
		if !ok {
			t = &cladeTotals{}
			groups[clade] = t
		}
		t.rows++
		t.confirmed.add(r.ConfirmedCases)
		t.deaths.add(r.Deaths)
		t.weekly.add(r.WeeklyNewCases)
	}

	order := make([]string, 0, len(groups))
	for clade := range groups {
		order = append(order, clade)
	}
	sort.Slice(order, func(i, j int) bool {
		return cladeLess(order[i], order[j])
	})

	out := make([]schema.CladeSummary, 0, len(order))
	for _, clade := range order {
		t := groups[clade]
		s := schema.CladeSummary{
			Clade:          clade,
			Rows:           t.rows,
			ConfirmedCases: t.confirmed.total(),
			Deaths:         t.deaths.total(),
			WeeklyNewCases: t.weekly.total(),
		}
		s.CFRPct = Percent(s.Deaths, s.ConfirmedCases)
		out = append(out, s)
	}
	return out
}

// AggregateCountryClades groups rows by country and normalized clade.
func AggregateCountryClades(rows []schema.ReportRow) []schema.CountryCladeSummary {
	type key struct{ country, clade string }
	type pairTotals struct {
		rows              int64
		confirmed, deaths acc
	}
	groups := map[key]*pairTotals{}
	for _, r := range rows {
		k := key{r.Country, r.NormalizedClade()}
		t, ok := groups[k]
		if !ok {
			t = &pairTotals{}
			groups[k] = t
		}
		t.rows++
		t.confirmed.add(r.ConfirmedCases)
		t.deaths.add(r.Deaths)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].country != keys[j].country {
			return keys[i].country < keys[j].country
		}
		return cladeLess(keys[i].clade, keys[j].clade)
	})

	out := make([]schema.CountryCladeSummary, 0, len(keys))
	for _, k := range keys {
		t := groups[k]
		s := schema.CountryCladeSummary{
			Country:        k.country,
			Clade:          k.clade,
			Rows:           t.rows,
			ConfirmedCases: t.confirmed.total(),
			Deaths:         t.deaths.total(),
		}
		s.CFRPct = Percent(s.Deaths, s.ConfirmedCases)
		out = append(out, s)
	}
	return out
}

// TimeInterval selects the bucket width of a time series.
type TimeInterval string

const (
	IntervalDaily  TimeInterval = "daily"
	IntervalWeekly TimeInterval = "weekly"
)

// AggregateSeries buckets rows by report date (or by the Monday of the
// report week) and sums the case columns. Rows without a parseable date are
// excluded from the series. With byClade set, each bucket is split by
// normalized clade.
func AggregateSeries(rows []schema.ReportRow, interval TimeInterval, byClade bool) []schema.TimePoint {
	type key struct {
		date  time.Time
		clade string
	}
	type seriesTotals struct {
		rows                      int64
		confirmed, deaths, weekly acc
	}
	groups := map[key]*seriesTotals{}
	for _, r := range rows {
		if r.ReportAt == nil {
			continue
		}
		date := dayOf(*r.ReportAt)
		if interval == IntervalWeekly {
			date = weekStart(date)
		}
		k := key{date: date}
		if byClade {
			k.clade = r.NormalizedClade()
		}
		t, ok := groups[k]
		if !ok {
			t = &seriesTotals{}
			groups[k] = t
		}
		t.rows++
		t.confirmed.add(r.ConfirmedCases)
		t.deaths.add(r.Deaths)
		t.weekly.add(r.WeeklyNewCases)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].date.Equal(keys[j].date) {
			return keys[i].date.Before(keys[j].date)
		}
		return cladeLess(keys[i].clade, keys[j].clade)
	})

	out := make([]schema.TimePoint, 0, len(keys))
	for _, k := range keys {
		t := groups[k]
		out = append(out, schema.TimePoint{
			Date:           k.date,
			Clade:          k.clade,
			Rows:           t.rows,
			ConfirmedCases: t.confirmed.total(),
			Deaths:         t.deaths.total(),
			WeeklyNewCases: t.weekly.total(),
		})
	}
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	d := dayOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
