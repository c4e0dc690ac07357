package repository

import (
	"context"

	"tenant-directory/internal/domain"
)

// TasksRepository reads the tasks table.
type TasksRepository interface {
	// ListTasksForBuilding returns the building's tasks ordered by title
	// ascending, with the building eagerly loaded.
	ListTasksForBuilding(ctx context.Context, buildingID int64) ([]*domain.Task, error)
}
