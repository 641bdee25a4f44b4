package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/consts"
	"github.com/openepi/mpox-analytics-api/epi"
)

func (s *Server) summary(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": epi.Rollup(rows, time.Now().UTC()),
	})
}

// countries returns ranked country aggregates. The sort key defaults to
// confirmed cases; undefined values always rank last.
func (s *Server) countries(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	sortName := c.DefaultQuery("sort", "confirmed_cases")
	key, ok := epi.CountrySortKey(sortName)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	desc := c.DefaultQuery("order", "desc") != "asc"
	topN, _ := strconv.Atoi(c.DefaultQuery("top", "0"))

	sums := epi.RankCountries(epi.AggregateCountries(rows), key, desc, topN)
	for i := range sums {
		sums[i].ISO3 = consts.CountryISO3(sums[i].Country)
	}

	c.JSON(http.StatusOK, gin.H{
		"sort":      sortName,
		"countries": sums,
	})
}

// countryDetail returns the full metric set for one country: aggregate sums
// and rates, vaccination funnel, workforce ratios, priority score, and
// threshold recommendations. The path segment accepts aliases, e.g. "DRC".
func (s *Server) countryDetail(c *gin.Context) {
	name := c.Param("country")
	if canonical, err := consts.CountryName(name); err == nil {
		name = canonical
	}

	filter, err := parseRowFilter(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	filter.Countries = []string{name}

	rows, err := s.store.CurrentRows(filter)
	if err != nil {
		s.abortOnStoreError(c, err)
		return
	}

	sums := epi.AggregateCountries(rows)
	if len(sums) == 0 {
		abortWithEncoding(c, http.StatusNotFound, errorCountryNotFound)
		return
	}

	sum := sums[0]
	sum.ISO3 = consts.CountryISO3(sum.Country)
	score := epi.PriorityScoreOf(sum, epi.DefaultPriorityWeights())

	c.JSON(http.StatusOK, gin.H{
		"country":         sum,
		"vaccination":     epi.VaccinationFunnel(sums)[0],
		"workforce":       epi.WorkforceCapacity(sums)[0],
		"priority":        score,
		"recommendations": epi.Recommend(sum, score.Score),
	})
}

func (s *Server) clades(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clades": epi.AggregateClades(rows),
	})
}

func (s *Server) cladeMatrix(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matrix": epi.AggregateCountryClades(rows),
	})
}
