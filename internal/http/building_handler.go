package httpapi

import (
	"net/http"

	"tenant-directory/internal/domain"
	"tenant-directory/internal/service"

	"go.uber.org/zap"
)

type BuildingHandler struct {
	buildings service.BuildingService
	logger    *zap.Logger
}

func NewBuildingHandler(buildings service.BuildingService, logger *zap.Logger) *BuildingHandler {
	return &BuildingHandler{
		buildings: buildings,
		logger:    logger,
	}
}

// List handles GET /api/v1/buildings?limit=&offset=.
func (h *BuildingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paginationParams(w, r, 100)
	if !ok {
		return
	}

	buildings, err := h.buildings.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items := make([]any, 0, len(buildings))
	for _, b := range buildings {
		items = append(items, buildingToJSON(b))
	}
	writeJSON(w, http.StatusOK, listResult{Total: len(items), Items: items, Limit: limit, Offset: offset})
}

func buildingToJSON(b *domain.Building) map[string]any {
	if b == nil {
		return nil
	}
	return map[string]any{
		"id":      b.ID,
		"city":    b.City,
		"address": b.Address,
		"location": map[string]any{
			"lat": b.Latitude,
			"lon": b.Longitude,
		},
	}
}
