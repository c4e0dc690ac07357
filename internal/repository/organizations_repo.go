package repository

import (
	"context"

	"tenant-directory/internal/domain"
)

// OrganizationFilters narrows ListOrganizations. All fields are optional and
// combine with AND semantics.
type OrganizationFilters struct {
	// BuildingID restricts to tenants of one building.
	BuildingID *int64
	// ActivityIDs requires at least one tagged activity in the set
	// (callers pass a descendant closure). Empty means no activity filter.
	ActivityIDs []int64
	// NameQuery is a case-insensitive substring match against the name.
	NameQuery string
}

// OrganizationsRepository reads organizations with their building, phones
// and tagged activities eagerly loaded (phones ordered by phone string,
// activities by (level, name)).
type OrganizationsRepository interface {
	// ListOrganizations returns matches ordered by name ascending.
	ListOrganizations(ctx context.Context, filters OrganizationFilters) ([]*domain.Organization, error)
	// GetOrganization returns nil (no error) when the id does not exist.
	GetOrganization(ctx context.Context, id int64) (*domain.Organization, error)
}
