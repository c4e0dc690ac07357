package repository

import (
	"context"

	"tenant-directory/internal/domain"
)

// BuildingsRepository reads the buildings table.
type BuildingsRepository interface {
	// GetBuilding returns nil (no error) when the id does not exist.
	GetBuilding(ctx context.Context, id int64) (*domain.Building, error)
	// ListBuildings returns a limit/offset window ordered by (city asc, address asc).
	ListBuildings(ctx context.Context, limit, offset int) ([]*domain.Building, error)
}
