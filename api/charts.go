package api

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/openepi/mpox-analytics-api/epi"
)

const chartDateLayout = "2006-01-02"

// timeseriesChart renders the confirmed-case time series as an HTML line
// chart, one series for cases and one for deaths.
func (s *Server) timeseriesChart(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	var interval epi.TimeInterval
	switch c.DefaultQuery("interval", "daily") {
	case "daily":
		interval = epi.IntervalDaily
	case "weekly":
		interval = epi.IntervalWeekly
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	points := epi.AggregateSeries(rows, interval, false)
	dates := make([]string, 0, len(points))
	cases := make([]opts.LineData, 0, len(points))
	deaths := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		dates = append(dates, p.Date.Format(chartDateLayout))
		cases = append(cases, lineDatum(p.ConfirmedCases))
		deaths = append(deaths, lineDatum(p.Deaths))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Mpox Case Trend", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Confirmed Cases and Deaths", Subtitle: string(interval)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates).
		AddSeries("confirmed cases", cases).
		AddSeries("deaths", deaths)

	renderChart(c, line.Render)
}

// vaccinationChart renders the per-country vaccination funnel as a grouped
// bar chart.
func (s *Server) vaccinationChart(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	funnel := epi.VaccinationFunnel(epi.AggregateCountries(rows))
	countries := make([]string, 0, len(funnel))
	allocated := make([]opts.BarData, 0, len(funnel))
	deployed := make([]opts.BarData, 0, len(funnel))
	administered := make([]opts.BarData, 0, len(funnel))
	for _, f := range funnel {
		countries = append(countries, f.Country)
		allocated = append(allocated, barDatum(f.Allocated))
		deployed = append(deployed, barDatum(f.Deployed))
		administered = append(administered, barDatum(f.Administered))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Mpox Vaccination Funnel", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Vaccine Allocation to Administration"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(countries).
		AddSeries("allocated", allocated).
		AddSeries("deployed", deployed).
		AddSeries("administered", administered)

	renderChart(c, bar.Render)
}

// mapChart renders confirmed cases on a world map. Countries without a
// gazetteer entry still draw, since echarts maps by name.
func (s *Server) mapChart(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	sums := epi.AggregateCountries(rows)
	data := make([]opts.MapData, 0, len(sums))
	maxCases := 1.0
	for _, sum := range sums {
		if sum.ConfirmedCases == nil {
			continue
		}
		if *sum.ConfirmedCases > maxCases {
			maxCases = *sum.ConfirmedCases
		}
		data = append(data, opts.MapData{Name: sum.Country, Value: *sum.ConfirmedCases})
	}

	mc := charts.NewMap()
	mc.RegisterMapType("world")
	mc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Mpox Case Map", Width: "1200px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Confirmed Cases by Country"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCases),
		}),
	)
	mc.AddSeries("confirmed cases", data)

	renderChart(c, mc.Render)
}

func renderChart(c *gin.Context, render func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func lineDatum(v *float64) opts.LineData {
	if v == nil {
		return opts.LineData{Value: nil}
	}
	return opts.LineData{Value: *v}
}

func barDatum(v *float64) opts.BarData {
	if v == nil {
		return opts.BarData{Value: nil}
	}
	return opts.BarData{Value: *v}
}
