package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/openepi/mpox-analytics-api/background"
	"github.com/openepi/mpox-analytics-api/ingest"
	"github.com/openepi/mpox-analytics-api/store"
)

// uploadDataset ingests an uploaded report sheet, makes it the active
// dataset, and enqueues a scoreboard refresh.
func (s *Server) uploadDataset(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	defer file.Close()

	result, err := ingest.Read(header.Filename, file)
	switch err {
	case nil:
	case ingest.ErrUnsupportedFormat:
		abortWithEncoding(c, http.StatusBadRequest, errorUnsupportedFormat)
		return
	case ingest.ErrEmptySheet:
		abortWithEncoding(c, http.StatusBadRequest, errorEmptySheet)
		return
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	dataset, err := s.store.ReplaceDataset(
		header.Filename,
		c.GetString("requester"),
		result.Rows,
		int64(len(result.Issues)))
	if shouldInterupt(err, c) {
		return
	}

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: background.TaskScoreboardRefresh,
			Args: []tasks.Arg{
				{Type: "string", Value: dataset.ID},
			},
		}); err != nil {
			// The upload itself succeeded; the scoreboard catches up on
			// the next refresh.
			log.WithError(err).Error("fail to enqueue scoreboard refresh")
		}
	}

	c.JSON(http.StatusAccepted, gin.H{
		"dataset":         dataset,
		"issues":          result.Issues,
		"missing_columns": result.MissingColumns,
	})
}

func (s *Server) listDatasets(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	datasets, err := s.store.ListDatasets(limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

func (s *Server) currentDataset(c *gin.Context) {
	dataset, err := s.store.ActiveDataset()
	if err == store.ErrNoActiveDataset {
		abortWithEncoding(c, http.StatusNotFound, errorNoActiveDataset)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"dataset": dataset})
}
