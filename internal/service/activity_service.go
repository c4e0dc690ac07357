package service

import (
	"context"
	"sort"

	"tenant-directory/internal/apperror"
	"tenant-directory/internal/domain"
	"tenant-directory/internal/repository"

	"go.uber.org/zap"
)

// ActivityService exposes the activity taxonomy: full-tree retrieval with
// depth truncation and descendant-closure expansion for activity filters.
type ActivityService interface {
	Tree(ctx context.Context, maxLevel *int) ([]*domain.ActivityNode, error)
	// ResolveDescendants returns rootID plus every activity id reachable via
	// child links. Fails with NotFound when rootID does not exist.
	ResolveDescendants(ctx context.Context, rootID int64) (map[int64]struct{}, error)
}

type activityService struct {
	activities repository.ActivitiesRepository
	logger     *zap.Logger
}

func NewActivityService(activities repository.ActivitiesRepository, logger *zap.Logger) ActivityService {
	return &activityService{
		activities: activities,
		logger:     logger,
	}
}

func (s *activityService) Tree(ctx context.Context, maxLevel *int) ([]*domain.ActivityNode, error) {
	rows, err := s.activities.ListActivities(ctx, maxLevel)
	if err != nil {
		return nil, err
	}
	return BuildActivityTree(rows), nil
}

// BuildActivityTree assembles the parent/child forest from flat rows.
// Two passes: index every node by id, then attach each non-root node to its
// parent. A node whose parent is absent from the input (cut by the level
// cap) is dropped, never promoted to root. Roots and every children list
// are ordered by name ascending.
func BuildActivityTree(activities []*domain.Activity) []*domain.ActivityNode {
	byID := make(map[int64]*domain.ActivityNode, len(activities))
	for _, a := range activities {
		byID[a.ID] = &domain.ActivityNode{
			ID:       a.ID,
			Name:     a.Name,
			Level:    a.Level,
			ParentID: a.ParentID,
			Children: []*domain.ActivityNode{},
		}
	}

	roots := []*domain.ActivityNode{}
	for _, a := range activities {
		node := byID[a.ID]
		if a.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[*a.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	for _, node := range byID {
		children := node.Children
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Name < roots[j].Name })
	return roots
}

func (s *activityService) ResolveDescendants(ctx context.Context, rootID int64) (map[int64]struct{}, error) {
	root, err := s.activities.GetActivity(ctx, rootID)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, apperror.NewNotFound("activity", rootID)
	}

	// Iterative breadth-first expansion: one repository round trip per tree
	// level. Terminates because the activity graph is a finite forest.
	collected := map[int64]struct{}{rootID: {}}
	frontier := []int64{rootID}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		childIDs, err := s.activities.ListChildActivityIDs(ctx, frontier)
		if err != nil {
			return nil, err
		}
		next := []int64{}
		for _, id := range childIDs {
			if _, seen := collected[id]; seen {
				continue
			}
			collected[id] = struct{}{}
			next = append(next, id)
		}
		frontier = next
	}
	return collected, nil
}
