package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/epi"
	"github.com/openepi/mpox-analytics-api/schema"
	"github.com/openepi/mpox-analytics-api/store"
)

// priorities computes the composite priority index live over the current
// selection, so filters apply. The persisted snapshot is at /scoreboard.
func (s *Server) priorities(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	weights := epi.DefaultPriorityWeights()
	c.JSON(http.StatusOK, gin.H{
		"weights":    weights,
		"priorities": epi.Prioritize(epi.AggregateCountries(rows), weights),
	})
}

// scoreboard returns the snapshot persisted by the background refresh after
// the last upload.
func (s *Server) scoreboard(c *gin.Context) {
	scoreboard, err := s.store.CurrentScoreboard()
	switch err {
	case nil:
	case store.ErrNoActiveDataset:
		abortWithEncoding(c, http.StatusNotFound, errorNoActiveDataset)
		return
	case store.ErrScoreboardNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorScoreboardNotFound)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryMetrics, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scoreboard": scoreboard})
}

func (s *Server) recommendations(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	sums := epi.AggregateCountries(rows)
	scores := epi.Prioritize(sums, epi.DefaultPriorityWeights())
	scoreByCountry := map[string]float64{}
	for _, score := range scores {
		scoreByCountry[score.Country] = score.Score
	}

	recommendations := []schema.CountryRecommendation{}
	for _, sum := range sums {
		recommendations = append(recommendations, epi.Recommend(sum, scoreByCountry[sum.Country]))
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
