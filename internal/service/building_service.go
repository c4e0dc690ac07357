package service

import (
	"context"

	"tenant-directory/internal/domain"
	"tenant-directory/internal/repository"

	"go.uber.org/zap"
)

// BuildingService lists the directory's buildings.
type BuildingService interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Building, error)
}

type buildingService struct {
	buildings repository.BuildingsRepository
	logger    *zap.Logger
}

func NewBuildingService(buildings repository.BuildingsRepository, logger *zap.Logger) BuildingService {
	return &buildingService{
		buildings: buildings,
		logger:    logger,
	}
}

func (s *buildingService) List(ctx context.Context, limit, offset int) ([]*domain.Building, error) {
	return s.buildings.ListBuildings(ctx, limit, offset)
}
