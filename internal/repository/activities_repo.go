package repository

import (
	"context"

	"tenant-directory/internal/domain"
)

// ActivitiesRepository reads the activity taxonomy.
// The taxonomy is seeded out of band and read-only for the API.
type ActivitiesRepository interface {
	// GetActivity returns nil (no error) when the id does not exist.
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
	// ListActivities returns activities ordered by (level asc, name asc).
	// A non-nil maxLevel caps the depth: only rows with level <= maxLevel.
	ListActivities(ctx context.Context, maxLevel *int) ([]*domain.Activity, error)
	// ListChildActivityIDs returns the ids of direct children of any id in
	// parentIDs. Empty input yields an empty result without a query.
	ListChildActivityIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
}
