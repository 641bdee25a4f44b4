package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/api/mocks"
	"github.com/openepi/mpox-analytics-api/schema"
)

func filterFor(t *testing.T, target string) (schema.RowFilter, int) {
	var captured schema.RowFilter
	var parseErr error

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		captured, parseErr = parseRowFilter(c)
		if parseErr != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return captured, w.Code
}

func TestParseRowFilter(t *testing.T) {
	filter, code := filterFor(t, "/?start=2024-08-01&end=2024-08-31&country=Nigeria,Uganda&clade=Clade%20IIb&note=alert")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), *filter.Start)
	assert.Equal(t, time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC), *filter.End)
	assert.Equal(t, []string{"Nigeria", "Uganda"}, filter.Countries)
	assert.Equal(t, []string{"Clade IIb"}, filter.Clades)
	assert.Equal(t, []string{"alert"}, filter.Notes)
}

func TestParseRowFilterRepeatedParams(t *testing.T) {
	filter, code := filterFor(t, "/?country=Nigeria&country=Kenya")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Nigeria", "Kenya"}, filter.Countries)
}

func TestParseRowFilterEmpty(t *testing.T) {
	filter, code := filterFor(t, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, filter.Empty())
	assert.Equal(t, schema.RowFilter{}, filter)
}

func TestParseRowFilterBadDates(t *testing.T) {
	_, code := filterFor(t, "/?start=yesterday")
	assert.Equal(t, http.StatusBadRequest, code)

	// end before start
	_, code = filterFor(t, "/?start=2024-08-31&end=2024-08-01")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthzStoreDown(t *testing.T) {
	// healthz reports 500 when a backing store fails its ping
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().Ping().Return(errors.New("connection refused")).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", s.healthz)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, int64(999), jResp.Code)
}
