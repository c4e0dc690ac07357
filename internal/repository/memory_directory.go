package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tenant-directory/internal/domain"
)

// MemoryDirectoryRepo backs service and handler tests without postgres.
// It implements all four repository interfaces over plain maps and mirrors
// the SQL ordering rules (buildings by city/address, organizations by name,
// phones by string, activities by level/name, tasks by title).
type MemoryDirectoryRepo struct {
	mu sync.RWMutex

	buildings     map[int64]*domain.Building
	activities    map[int64]*domain.Activity
	organizations map[int64]*memOrganization
	tasks         map[int64]*domain.Task
}

type memOrganization struct {
	id          int64
	name        string
	buildingID  int64
	phones      []string
	activityIDs []int64
}

func NewMemoryDirectoryRepo() *MemoryDirectoryRepo {
	return &MemoryDirectoryRepo{
		buildings:     map[int64]*domain.Building{},
		activities:    map[int64]*domain.Activity{},
		organizations: map[int64]*memOrganization{},
		tasks:         map[int64]*domain.Task{},
	}
}

// ---- seeding helpers (tests only) ----

func (r *MemoryDirectoryRepo) AddBuilding(b domain.Building) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := b
	r.buildings[b.ID] = &copied
}

func (r *MemoryDirectoryRepo) AddActivity(a domain.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := a
	r.activities[a.ID] = &copied
}

func (r *MemoryDirectoryRepo) AddOrganization(id int64, name string, buildingID int64, phones []string, activityIDs []int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.organizations[id] = &memOrganization{
		id:          id,
		name:        name,
		buildingID:  buildingID,
		phones:      append([]string(nil), phones...),
		activityIDs: append([]int64(nil), activityIDs...),
	}
}

func (r *MemoryDirectoryRepo) AddTask(t domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := t
	r.tasks[t.ID] = &copied
}

// ---- ActivitiesRepository ----

func (r *MemoryDirectoryRepo) GetActivity(_ context.Context, id int64) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *MemoryDirectoryRepo) ListActivities(_ context.Context, maxLevel *int) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Activity{}
	for _, a := range r.activities {
		if maxLevel != nil && a.Level > *maxLevel {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MemoryDirectoryRepo) ListChildActivityIDs(_ context.Context, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	parents := map[int64]struct{}{}
	for _, id := range parentIDs {
		parents[id] = struct{}{}
	}
	out := []int64{}
	for _, a := range r.activities {
		if a.ParentID == nil {
			continue
		}
		if _, ok := parents[*a.ParentID]; ok {
			out = append(out, a.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// ---- BuildingsRepository ----

func (r *MemoryDirectoryRepo) GetBuilding(_ context.Context, id int64) (*domain.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buildings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *MemoryDirectoryRepo) ListBuildings(_ context.Context, limit, offset int) ([]*domain.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := []*domain.Building{}
	for _, b := range r.buildings {
		copied := *b
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].City != all[j].City {
			return all[i].City < all[j].City
		}
		return all[i].Address < all[j].Address
	})
	if offset >= len(all) {
		return []*domain.Building{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// ---- OrganizationsRepository ----

func (r *MemoryDirectoryRepo) ListOrganizations(_ context.Context, filters OrganizationFilters) ([]*domain.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	closure := map[int64]struct{}{}
	for _, id := range filters.ActivityIDs {
		closure[id] = struct{}{}
	}
	needle := strings.ToLower(filters.NameQuery)

	out := []*domain.Organization{}
	for _, org := range r.organizations {
		if filters.BuildingID != nil && org.buildingID != *filters.BuildingID {
			continue
		}
		if len(filters.ActivityIDs) > 0 && !r.taggedWithAny(org, closure) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(org.name), needle) {
			continue
		}
		out = append(out, r.assemble(org))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryDirectoryRepo) GetOrganization(_ context.Context, id int64) (*domain.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	org, ok := r.organizations[id]
	if !ok {
		return nil, nil
	}
	return r.assemble(org), nil
}

func (r *MemoryDirectoryRepo) taggedWithAny(org *memOrganization, closure map[int64]struct{}) bool {
	for _, id := range org.activityIDs {
		if _, ok := closure[id]; ok {
			return true
		}
	}
	return false
}

// assemble builds the eagerly loaded shape postgres returns. Callers hold
// at least the read lock.
func (r *MemoryDirectoryRepo) assemble(org *memOrganization) *domain.Organization {
	out := &domain.Organization{
		ID:         org.id,
		Name:       org.name,
		BuildingID: org.buildingID,
		Phones:     append([]string{}, org.phones...),
		Activities: []domain.Activity{},
	}
	if b, ok := r.buildings[org.buildingID]; ok {
		copied := *b
		out.Building = &copied
	}
	sort.Strings(out.Phones)
	for _, id := range org.activityIDs {
		if a, ok := r.activities[id]; ok {
			out.Activities = append(out.Activities, *a)
		}
	}
	sort.Slice(out.Activities, func(i, j int) bool {
		if out.Activities[i].Level != out.Activities[j].Level {
			return out.Activities[i].Level < out.Activities[j].Level
		}
		return out.Activities[i].Name < out.Activities[j].Name
	})
	return out
}

// ---- TasksRepository ----

func (r *MemoryDirectoryRepo) ListTasksForBuilding(_ context.Context, buildingID int64) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Task{}
	for _, t := range r.tasks {
		if t.BuildingID != buildingID {
			continue
		}
		copied := *t
		if b, ok := r.buildings[t.BuildingID]; ok {
			bc := *b
			copied.Building = &bc
		}
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}
