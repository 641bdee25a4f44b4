package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/consts"
	"github.com/openepi/mpox-analytics-api/epi"
	"github.com/openepi/mpox-analytics-api/schema"
)

func (s *Server) vaccination(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"funnel": epi.VaccinationFunnel(epi.AggregateCountries(rows)),
	})
}

func (s *Server) workforce(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workforce": epi.WorkforceCapacity(epi.AggregateCountries(rows)),
	})
}

// geography returns choropleth points. Countries missing from the gazetteer
// keep an empty ISO3 code; the map client skips them.
func (s *Server) geography(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	points := []schema.GeoPoint{}
	for _, sum := range epi.AggregateCountries(rows) {
		points = append(points, schema.GeoPoint{
			Country:        sum.Country,
			ISO3:           consts.CountryISO3(sum.Country),
			ConfirmedCases: sum.ConfirmedCases,
			Deaths:         sum.Deaths,
			CFRPct:         sum.CFRPct,
		})
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}
