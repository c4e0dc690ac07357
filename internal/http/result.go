package httpapi

import (
	"net/http"

	"tenant-directory/internal/apperror"

	"go.uber.org/zap"
)

// Error bodies use the {"detail": ...} shape the directory's clients consume.
type errorBody struct {
	Detail string `json:"detail"`
}

// listResult is the envelope for every list endpoint. Total counts the items
// in this window, not the full result set.
type listResult struct {
	Total  int   `json:"total"`
	Items  []any `json:"items"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// NotFound -> 404, Validation -> 422, everything else -> 500.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case apperror.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case apperror.IsValidation(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
