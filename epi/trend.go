package epi

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/openepi/mpox-analytics-api/schema"
)

const (
	// A per-country daily series whose diffs are non-decreasing at least
	// this often is treated as cumulative and differenced into incident
	// counts.
	cumulativeDetectRatio = 0.8

	// Weekly buckets needed before anomaly flags are computed.
	anomalyMinWeeks = 6

	// |z| at or above this flags a weekly point.
	anomalyZScore = 3.0

	// Recent-to-base mean ratio bounds for the trend classification.
	trendIncreaseRatio = 1.1
	trendDecreaseRatio = 0.9
)

const (
	TrendIncreasing = "Increasing"
	TrendDecreasing = "Decreasing"
	TrendStable     = "Stable"
)

// WeekPoint is one weekly bucket of new cases for a country.
type WeekPoint struct {
	Country   string    `json:"country"`
	WeekStart time.Time `json:"week_start"`
	NewCases  float64   `json:"new_cases"`
}

// WeeklySeries builds per-country weekly new-case series. When the
// weekly_new_cases column is populated it is summed per week directly.
// Otherwise the series is derived from daily confirmed-case sums: a country
// series that is mostly non-decreasing is treated as cumulative and
// differenced (floored at zero), anything else is summed as incident counts.
func WeeklySeries(rows []schema.ReportRow) []WeekPoint {
	hasWeekly := false
	for _, r := range rows {
		if r.WeeklyNewCases != nil {
			hasWeekly = true
			break
		}
	}

	buckets := map[string]map[time.Time]float64{}
	add := func(country string, week time.Time, v float64) {
		m, ok := buckets[country]
		if !ok {
			m = map[time.Time]float64{}
			buckets[country] = m
		}
		m[week] += v
	}

	if hasWeekly {
		for _, r := range rows {
			if r.ReportAt == nil || r.WeeklyNewCases == nil {
				continue
			}
			add(r.Country, weekStart(*r.ReportAt), *r.WeeklyNewCases)
		}
	} else {
		for country, daily := range dailyConfirmed(rows) {
			incident := incidentSeries(daily)
			for _, d := range incident {
				add(country, weekStart(d.date), d.value)
			}
		}
	}

	out := []WeekPoint{}
	for country, weeks := range buckets {
		for week, v := range weeks {
			out = append(out, WeekPoint{Country: country, WeekStart: week, NewCases: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].WeekStart.Before(out[j].WeekStart)
	})
	return out
}

type datedValue struct {
	date  time.Time
	value float64
}

func dailyConfirmed(rows []schema.ReportRow) map[string][]datedValue {
	sums := map[string]map[time.Time]float64{}
	for _, r := range rows {
		if r.ReportAt == nil || r.ConfirmedCases == nil {
			continue
		}
		day := dayOf(*r.ReportAt)
		m, ok := sums[r.Country]
		if !ok {
			m = map[time.Time]float64{}
			sums[r.Country] = m
		}
		m[day] += *r.ConfirmedCases
	}

	out := map[string][]datedValue{}
	for country, days := range sums {
		series := make([]datedValue, 0, len(days))
		for d, v := range days {
			series = append(series, datedValue{date: d, value: v})
		}
		sort.Slice(series, func(i, j int) bool { return series[i].date.Before(series[j].date) })
		out[country] = series
	}
	return out
}

func incidentSeries(daily []datedValue) []datedValue {
	if len(daily) < 2 {
		return daily
	}
	nonDecreasing := 0
	for i := 1; i < len(daily); i++ {
		if daily[i].value >= daily[i-1].value {
			nonDecreasing++
		}
	}
	if float64(nonDecreasing)/float64(len(daily)-1) < cumulativeDetectRatio {
		return daily
	}

	out := make([]datedValue, len(daily))
	out[0] = datedValue{date: daily[0].date, value: 0}
	for i := 1; i < len(daily); i++ {
		diff := daily[i].value - daily[i-1].value
		if diff < 0 {
			diff = 0
		}
		out[i] = datedValue{date: daily[i].date, value: diff}
	}
	return out
}

// Growth4W returns the relative change over the last four points of each
// country's weekly series: (last − first) / max(first, 1).
func Growth4W(series []WeekPoint) map[string]float64 {
	byCountry := map[string][]WeekPoint{}
	for _, p := range series {
		byCountry[p.Country] = append(byCountry[p.Country], p)
	}

	out := map[string]float64{}
	for country, points := range byCountry {
		if len(points) < 2 {
			continue
		}
		recent := points
		if len(recent) > 4 {
			recent = recent[len(recent)-4:]
		}
		first := recent[0].NewCases
		if first < 1 {
			first = 1
		}
		out[country] = Round2((recent[len(recent)-1].NewCases - recent[0].NewCases) / first)
	}
	return out
}

// MovingAverage returns the trailing window mean at every position with a
// full window; earlier positions are nil.
func MovingAverage(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = ptr(Round2(sum / float64(window)))
		}
	}
	return out
}

// CountryTrend classifies one country's weekly trajectory and names its
// peak week.
type CountryTrend struct {
	Country   string    `json:"country"`
	PeakWeek  time.Time `json:"peak_week"`
	PeakCases float64   `json:"peak_new_cases"`
	Trend     string    `json:"trend"`
}

// Trends compares the mean of each country's three most recent weekly
// buckets against the mean of the three before them: above
// trendIncreaseRatio is increasing, below trendDecreaseRatio decreasing,
// anything else stable. The peak is the earliest week holding the maximum
// value. Single-bucket countries are reported stable.
func Trends(series []WeekPoint) []CountryTrend {
	byCountry := map[string][]WeekPoint{}
	for _, p := range series {
		byCountry[p.Country] = append(byCountry[p.Country], p)
	}

	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	out := make([]CountryTrend, 0, len(countries))
	for _, country := range countries {
		points := byCountry[country]
		t := CountryTrend{
			Country:   country,
			PeakWeek:  points[0].WeekStart,
			PeakCases: points[0].NewCases,
			Trend:     TrendStable,
		}
		levels := make([]float64, len(points))
		for i, p := range points {
			levels[i] = p.NewCases
			if p.NewCases > t.PeakCases {
				t.PeakWeek = p.WeekStart
				t.PeakCases = p.NewCases
			}
		}

		if len(levels) >= 2 {
			split := len(levels) - 3
			if split < 1 {
				split = 1
			}
			lo := split - 3
			if lo < 0 {
				lo = 0
			}
			base := stat.Mean(levels[lo:split], nil)
			if base < 1 {
				base = 1
			}
			switch ratio := stat.Mean(levels[split:], nil) / base; {
			case ratio > trendIncreaseRatio:
				t.Trend = TrendIncreasing
			case ratio < trendDecreaseRatio:
				t.Trend = TrendDecreasing
			}
		}
		out = append(out, t)
	}
	return out
}

// Anomaly is a weekly point whose level or week-over-week change is a
// statistical outlier for its country.
type Anomaly struct {
	Country   string    `json:"country"`
	WeekStart time.Time `json:"week_start"`
	NewCases  float64   `json:"new_cases"`
	ZScore    float64   `json:"z_score"`
}

// Anomalies flags weekly points at least anomalyZScore standard deviations
// from their country's mean, on the level or on the weekly change. Countries
// with fewer than anomalyMinWeeks buckets are skipped. This is a prompt for
// review, not an alarm.
func Anomalies(series []WeekPoint) []Anomaly {
	byCountry := map[string][]WeekPoint{}
	for _, p := range series {
		byCountry[p.Country] = append(byCountry[p.Country], p)
	}

	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	out := []Anomaly{}
	for _, country := range countries {
		points := byCountry[country]
		if len(points) < anomalyMinWeeks {
			continue
		}
		levels := make([]float64, len(points))
		diffs := make([]float64, len(points))
		for i, p := range points {
			levels[i] = p.NewCases
			if i > 0 {
				diffs[i] = p.NewCases - points[i-1].NewCases
			}
		}
		lm, ls := stat.MeanStdDev(levels, nil)
		dm, ds := stat.MeanStdDev(diffs, nil)
		for i, p := range points {
			z := 0.0
			if ls > 0 {
				z = (levels[i] - lm) / ls
			}
			if i > 0 && ds > 0 {
				if dz := (diffs[i] - dm) / ds; abs(dz) > abs(z) {
					z = dz
				}
			}
			if abs(z) >= anomalyZScore {
				out = append(out, Anomaly{
					Country:   country,
					WeekStart: p.WeekStart,
					NewCases:  p.NewCases,
					ZScore:    Round2(z),
				})
			}
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
