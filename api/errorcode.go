package api

import (
	"github.com/openepi/mpox-analytics-api/ingest"
	"github.com/openepi/mpox-analytics-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "invalid api key",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: ingest.ErrUnsupportedFormat.Error(),
		1101: ingest.ErrEmptySheet.Error(),
		1102: store.ErrNoActiveDataset.Error(),
		1103: store.ErrScoreboardNotFound.Error(),
		1104: "query metrics error",
		1105: "country not found",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidAPIKey              = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnsupportedFormat  = errorJSON(1100)
	errorEmptySheet         = errorJSON(1101)
	errorNoActiveDataset    = errorJSON(1102)
	errorScoreboardNotFound = errorJSON(1103)
	errorQueryMetrics       = errorJSON(1104)
	errorCountryNotFound    = errorJSON(1105)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
