package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/schema"
	"github.com/openepi/mpox-analytics-api/store"
)

const filterDateLayout = "2006-01-02"

// parseRowFilter reads the shared filter query parameters. Both date bounds
// are inclusive; list parameters may repeat or hold comma-separated values.
func parseRowFilter(c *gin.Context) (schema.RowFilter, error) {
	var filter schema.RowFilter

	if v := c.Query("start"); v != "" {
		t, err := time.Parse(filterDateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid start date %q", v)
		}
		t = t.UTC()
		filter.Start = &t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse(filterDateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid end date %q", v)
		}
		t = t.UTC()
		filter.End = &t
	}
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return filter, fmt.Errorf("end date before start date")
	}

	filter.Countries = splitParams(c.QueryArray("country"))
	filter.Clades = splitParams(c.QueryArray("clade"))
	filter.Notes = splitParams(c.QueryArray("note"))

	return filter, nil
}

func splitParams(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// currentFilteredRows loads the filtered rows of the active dataset and
// writes the error response itself when that fails.
func (s *Server) currentFilteredRows(c *gin.Context) ([]schema.ReportRow, schema.RowFilter, bool) {
	filter, err := parseRowFilter(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil, filter, false
	}

	rows, err := s.store.CurrentRows(filter)
	if err != nil {
		s.abortOnStoreError(c, err)
		return nil, filter, false
	}
	return rows, filter, true
}

func (s *Server) abortOnStoreError(c *gin.Context, err error) {
	if err == store.ErrNoActiveDataset {
		abortWithEncoding(c, http.StatusNotFound, errorNoActiveDataset)
		return
	}
	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorQueryMetrics, err)
}
