package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/epi"
)

func (s *Server) filterOptions(c *gin.Context) {
	options, err := s.store.FilterOptions()
	if err != nil {
		s.abortOnStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"filters": options})
}

func (s *Server) quality(c *gin.Context) {
	rows, _, ok := s.currentFilteredRows(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quality": epi.Quality(rows, time.Now().UTC()),
	})
}
