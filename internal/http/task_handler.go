package httpapi

import (
	"net/http"

	"tenant-directory/internal/domain"
	"tenant-directory/internal/service"

	"go.uber.org/zap"
)

type TaskHandler struct {
	tasks  service.TaskService
	logger *zap.Logger
}

func NewTaskHandler(tasks service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:  tasks,
		logger: logger,
	}
}

// List handles GET /api/v1/tasks?building_id=&limit=&offset=.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	buildingID, ok := positiveIDParam(w, r, "building_id")
	if !ok {
		return
	}
	limit, offset, ok := paginationParams(w, r, 200)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListForBuilding(r.Context(), buildingID, limit, offset)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items := make([]any, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskToJSON(t))
	}
	writeJSON(w, http.StatusOK, listResult{Total: len(items), Items: items, Limit: limit, Offset: offset})
}

func taskToJSON(t *domain.Task) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"building":    buildingToJSON(t.Building),
	}
}
