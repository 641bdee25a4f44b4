package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/api/mocks"
	"github.com/openepi/mpox-analytics-api/schema"
)

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadDataset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	a.EXPECT().
		ReplaceDataset("report.csv", gomock.Any(), gomock.Any(), int64(0)).
		DoAndReturn(func(filename, uploadedBy string, rows []schema.ReportRow, issueCount int64) (*schema.Dataset, error) {
			assert.Equal(t, 2, len(rows))
			assert.Equal(t, "Nigeria", rows[0].Country)
			return &schema.Dataset{
				ID:       "d1",
				Filename: filename,
				RowCount: int64(len(rows)),
				Status:   schema.DatasetStatusActive,
			}, nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.uploadDataset)

	body, contentType := multipartUpload(t, "report.csv",
		"country,confirmed_cases,deaths\nNigeria,300,9\nUganda,120,6\n")
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code, "wrong status code")

	var jResp struct {
		Dataset schema.Dataset `json:"dataset"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, "d1", jResp.Dataset.ID)
	assert.Equal(t, int64(2), jResp.Dataset.RowCount)
}

func TestUploadDatasetUnsupportedFormat(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.uploadDataset)

	body, contentType := multipartUpload(t, "report.txt", "country\nNigeria\n")
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, int64(1100), jResp.Code)
}

func TestUploadDatasetMissingFile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnalyticsCore(ctl)
	s := Server{store: a}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.uploadDataset)

	req := httptest.NewRequest("POST", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, int64(1011), jResp.Code)
}
