package service

import (
	"context"
	"sort"

	"tenant-directory/internal/apperror"
	"tenant-directory/internal/domain"
	"tenant-directory/internal/geo"
	"tenant-directory/internal/repository"

	"go.uber.org/zap"
)

// CircleFilter keeps organizations whose building lies within RadiusKm of
// (Lat, Lon) by great-circle distance, inclusive.
type CircleFilter struct {
	Lat      float64
	Lon      float64
	RadiusKm float64
}

// BoundsFilter keeps organizations whose building coordinates fall inside
// the box, inclusive on all four edges.
type BoundsFilter struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// SearchFilters narrows Search. A nil geo pointer means that mode is unset;
// a non-nil one is always fully specified, since the HTTP boundary validates
// group completeness before constructing it. Circle and Bounds may both be
// set (AND semantics).
type SearchFilters struct {
	Query      string
	ActivityID *int64
	Circle     *CircleFilter
	Bounds     *BoundsFilter
}

// OrganizationService lists and searches tenant organizations.
type OrganizationService interface {
	// ListForBuilding returns the building's tenants ordered by name, fails
	// with NotFound when the building (or the filter activity) is unknown.
	ListForBuilding(ctx context.Context, buildingID int64, activityID *int64, limit, offset int) ([]*domain.Organization, error)
	// Search combines activity-closure, name-substring and geo filters.
	// No filters at all returns every organization, ordered by name.
	Search(ctx context.Context, filters SearchFilters, limit, offset int) ([]*domain.Organization, error)
	// Get returns one organization or NotFound.
	Get(ctx context.Context, id int64) (*domain.Organization, error)
}

type organizationService struct {
	organizations repository.OrganizationsRepository
	buildings     repository.BuildingsRepository
	activities    ActivityService
	logger        *zap.Logger
}

func NewOrganizationService(
	organizations repository.OrganizationsRepository,
	buildings repository.BuildingsRepository,
	activities ActivityService,
	logger *zap.Logger,
) OrganizationService {
	return &organizationService{
		organizations: organizations,
		buildings:     buildings,
		activities:    activities,
		logger:        logger,
	}
}

func (s *organizationService) ListForBuilding(ctx context.Context, buildingID int64, activityID *int64, limit, offset int) ([]*domain.Organization, error) {
	building, err := s.buildings.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, apperror.NewNotFound("building", buildingID)
	}

	filters := repository.OrganizationFilters{BuildingID: &buildingID}
	if activityID != nil {
		closure, err := s.activities.ResolveDescendants(ctx, *activityID)
		if err != nil {
			return nil, err
		}
		filters.ActivityIDs = idSetToSlice(closure)
	}

	orgs, err := s.organizations.ListOrganizations(ctx, filters)
	if err != nil {
		return nil, err
	}
	return window(orgs, limit, offset), nil
}

func (s *organizationService) Search(ctx context.Context, f SearchFilters, limit, offset int) ([]*domain.Organization, error) {
	filters := repository.OrganizationFilters{NameQuery: f.Query}
	if f.ActivityID != nil {
		closure, err := s.activities.ResolveDescendants(ctx, *f.ActivityID)
		if err != nil {
			return nil, err
		}
		filters.ActivityIDs = idSetToSlice(closure)
	}

	orgs, err := s.organizations.ListOrganizations(ctx, filters)
	if err != nil {
		return nil, err
	}

	// Geo predicates are post-query filters over the building coordinates;
	// both modes must pass when both are supplied.
	if f.Circle != nil || f.Bounds != nil {
		matched := []*domain.Organization{}
		for _, org := range orgs {
			if matchesGeo(org.Building, f) {
				matched = append(matched, org)
			}
		}
		orgs = matched
	}

	return window(orgs, limit, offset), nil
}

func (s *organizationService) Get(ctx context.Context, id int64) (*domain.Organization, error) {
	org, err := s.organizations.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperror.NewNotFound("organization", id)
	}
	return org, nil
}

func matchesGeo(b *domain.Building, f SearchFilters) bool {
	if b == nil {
		return false
	}
	if f.Circle != nil {
		if geo.HaversineKm(f.Circle.Lat, f.Circle.Lon, b.Latitude, b.Longitude) > f.Circle.RadiusKm {
			return false
		}
	}
	if f.Bounds != nil {
		if b.Latitude < f.Bounds.MinLat || b.Latitude > f.Bounds.MaxLat ||
			b.Longitude < f.Bounds.MinLon || b.Longitude > f.Bounds.MaxLon {
			return false
		}
	}
	return true
}

func idSetToSlice(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// window applies the limit/offset slice over an already ordered result.
func window[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
