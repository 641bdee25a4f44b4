package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/epi"
)

// timeseries buckets the selection by report date or ISO week. The weekly
// view additionally carries per-country new-case series with growth, trend
// classification and anomaly flags.
func (s *Server) timeseries(c *gin.Context) {
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
	byClade := c.Query("by") == "clade"

	resp := gin.H{
		"interval": interval,
		"points":   epi.AggregateSeries(rows, interval, byClade),
	}

	if interval == epi.IntervalWeekly && !byClade {
		weekly := epi.WeeklySeries(rows)
		resp["weekly_new_cases"] = weekly
		resp["growth_4w"] = epi.Growth4W(weekly)
		resp["trends"] = epi.Trends(weekly)
		resp["anomalies"] = epi.Anomalies(weekly)
	}

	c.JSON(http.StatusOK, resp)
}
