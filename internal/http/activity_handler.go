package httpapi

import (
	"net/http"
	"strconv"

	"tenant-directory/internal/service"

	"go.uber.org/zap"
)

type ActivityHandler struct {
	activities service.ActivityService
	logger     *zap.Logger
}

func NewActivityHandler(activities service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		logger:     logger,
	}
}

// Tree handles GET /api/v1/activities/tree?max_level=N.
func (h *ActivityHandler) Tree(w http.ResponseWriter, r *http.Request) {
	var maxLevel *int
	if s := r.URL.Query().Get("max_level"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(w, http.StatusUnprocessableEntity, "max_level must be a positive integer")
			return
		}
		maxLevel = &v
	}

	items, err := h.activities.Tree(r.Context(), maxLevel)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"max_level": maxLevel,
		"items":     items,
	})
}
