package service

import (
	"context"

	"tenant-directory/internal/apperror"
	"tenant-directory/internal/domain"
	"tenant-directory/internal/repository"

	"go.uber.org/zap"
)

// TaskService lists the maintenance tasks scheduled for a building.
type TaskService interface {
	// ListForBuilding fails with NotFound when the building is unknown.
	ListForBuilding(ctx context.Context, buildingID int64, limit, offset int) ([]*domain.Task, error)
}

type taskService struct {
	tasks     repository.TasksRepository
	buildings repository.BuildingsRepository
	logger    *zap.Logger
}

func NewTaskService(tasks repository.TasksRepository, buildings repository.BuildingsRepository, logger *zap.Logger) TaskService {
	return &taskService{
		tasks:     tasks,
		buildings: buildings,
		logger:    logger,
	}
}

func (s *taskService) ListForBuilding(ctx context.Context, buildingID int64, limit, offset int) ([]*domain.Task, error) {
	building, err := s.buildings.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, apperror.NewNotFound("building", buildingID)
	}

	tasks, err := s.tasks.ListTasksForBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	return window(tasks, limit, offset), nil
}
