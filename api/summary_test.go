package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/api/mocks"
	"github.com/openepi/mpox-analytics-api/schema"
	"github.com/openepi/mpox-analytics-api/store"
)

func testRows() []schema.ReportRow {
	at := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	f := func(v float64) *float64 { return &v }
	return []schema.ReportRow{
		{Country: "Nigeria", ReportAt: &at, ConfirmedCases: f(300), Deaths: f(9), Clade: "Clade IIb"},
		{Country: "Uganda", ReportAt: &at, ConfirmedCases: f(120), Deaths: f(6), Clade: "Clade Ia"},
	}
}

func TestCountries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().CurrentRows(schema.RowFilter{}).Return(testRows(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.countries)

	req := httptest.NewRequest("GET", "/?sort=deaths", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Sort      string                  `json:"sort"`
		Countries []schema.CountrySummary `json:"countries"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "deaths", jResp.Sort)
	assert.Equal(t, 2, len(jResp.Countries))
	assert.Equal(t, "Nigeria", jResp.Countries[0].Country)
	assert.Equal(t, "NGA", jResp.Countries[0].ISO3)
	assert.Equal(t, 1, jResp.Countries[0].Rank)
	assert.Equal(t, "Uganda", jResp.Countries[1].Country)
	assert.Equal(t, 2, jResp.Countries[1].Rank)
}

func TestCountriesBadSortKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().CurrentRows(gomock.Any()).Return(testRows(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.countries)

	req := httptest.NewRequest("GET", "/?sort=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, int64(1010), jResp.Code)
}

func TestCountryDetail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	rows := testRows()[:1]
	a.EXPECT().
		CurrentRows(schema.RowFilter{Countries: []string{"Nigeria"}}).
		Return(rows, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:country", s.countryDetail)

	req := httptest.NewRequest("GET", "/Nigeria", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Country         schema.CountrySummary        `json:"country"`
		Priority        schema.PriorityScore         `json:"priority"`
		Recommendations schema.CountryRecommendation `json:"recommendations"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, "Nigeria", jResp.Country.Country)
	assert.Equal(t, "NGA", jResp.Country.ISO3)
	assert.Equal(t, 300.0, *jResp.Country.ConfirmedCases)
	assert.Equal(t, jResp.Priority.Score, jResp.Recommendations.PriorityScore)
	assert.NotEmpty(t, jResp.Recommendations.Recommendations)
}

func TestCountryDetailAlias(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().
		CurrentRows(schema.RowFilter{Countries: []string{"Democratic Republic of the Congo"}}).
		Return(nil, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:country", s.countryDetail)

	req := httptest.NewRequest("GET", "/DRC", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, int64(1105), jResp.Code)
}

func TestSummaryNoActiveDataset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().CurrentRows(gomock.Any()).Return(nil, store.ErrNoActiveDataset).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.summary)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, int64(1102), jResp.Code)
}

func TestSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().CurrentRows(gomock.Any()).Return(testRows(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.summary)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Summary schema.ExecutiveSummary `json:"summary"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, 420.0, *jResp.Summary.TotalCases)
	assert.Equal(t, 15.0, *jResp.Summary.TotalDeaths)
	assert.Equal(t, "Nigeria", jResp.Summary.PeakCountry)
	assert.Equal(t, 2, jResp.Summary.Countries)
}
