package service

import (
	"context"
	"testing"

	"tenant-directory/internal/apperror"
	"tenant-directory/internal/domain"
	"tenant-directory/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptrID(v int64) *int64 { return &v }

func ptrInt(v int) *int { return &v }

// newDirectoryFixture seeds the demo dataset: two Moscow buildings, a food
// branch with a level-3 leaf, an auto root, and three tenant organizations.
func newDirectoryFixture() *repository.MemoryDirectoryRepo {
	repo := repository.NewMemoryDirectoryRepo()

	repo.AddBuilding(domain.Building{ID: 100, City: "Москва", Address: "Ленинский проспект, 10", Latitude: 55.751244, Longitude: 37.618423})
	repo.AddBuilding(domain.Building{ID: 200, City: "Москва", Address: "Тверская улица, 15", Latitude: 55.765140, Longitude: 37.605020})

	repo.AddActivity(domain.Activity{ID: 10, Name: "Продукты питания", Level: 1})
	repo.AddActivity(domain.Activity{ID: 11, Name: "Мясная продукция", ParentID: ptrID(10), Level: 2})
	repo.AddActivity(domain.Activity{ID: 12, Name: "Молочная продукция", ParentID: ptrID(10), Level: 2})
	repo.AddActivity(domain.Activity{ID: 13, Name: "Автомобили", Level: 1})
	repo.AddActivity(domain.Activity{ID: 14, Name: "Колбасные изделия", ParentID: ptrID(11), Level: 3})

	repo.AddOrganization(1000, "ООО Рога и Копыта", 100, []string{"+7-495-111-4455", "+7-495-111-2233"}, []int64{11})
	repo.AddOrganization(1001, "ООО АвтоМир", 100, []string{"+7-495-222-0001"}, []int64{13})
	repo.AddOrganization(1002, "ООО Молочная ферма", 200, []string{"+7-495-333-8888"}, []int64{12})

	return repo
}

func TestBuildActivityTree_SortsRootsAndChildren(t *testing.T) {
	activities := []*domain.Activity{
		{ID: 10, Name: "Food", Level: 1},
		{ID: 11, Name: "Meat", ParentID: ptrID(10), Level: 2},
		{ID: 12, Name: "Dairy", ParentID: ptrID(10), Level: 2},
		{ID: 13, Name: "Auto", Level: 1},
	}

	roots := BuildActivityTree(activities)

	require.Len(t, roots, 2)
	assert.Equal(t, "Auto", roots[0].Name)
	assert.Equal(t, "Food", roots[1].Name)
	assert.Empty(t, roots[0].Children)

	food := roots[1]
	require.Len(t, food.Children, 2)
	assert.Equal(t, "Dairy", food.Children[0].Name)
	assert.Equal(t, "Meat", food.Children[1].Name)

	// no duplication, no loss
	assert.Equal(t, len(activities), countNodes(roots))
}

func TestBuildActivityTree_Empty(t *testing.T) {
	roots := BuildActivityTree(nil)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}

func TestBuildActivityTree_DropsOrphans(t *testing.T) {
	// A level-2 node whose parent was cut by the level cap is omitted,
	// never promoted to root.
	activities := []*domain.Activity{
		{ID: 13, Name: "Auto", Level: 1},
		{ID: 21, Name: "Stray", ParentID: ptrID(99), Level: 2},
	}

	roots := BuildActivityTree(activities)

	require.Len(t, roots, 1)
	assert.Equal(t, "Auto", roots[0].Name)
	assert.Equal(t, 1, countNodes(roots))
}

func countNodes(nodes []*domain.ActivityNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Children)
	}
	return total
}

func TestTree_MaxLevelOneYieldsOnlyRoots(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	roots, err := svc.Tree(context.Background(), ptrInt(1))

	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "Автомобили", roots[0].Name)
	assert.Equal(t, "Продукты питания", roots[1].Name)
	for _, root := range roots {
		assert.Empty(t, root.Children)
	}
}

func TestTree_FullDepth(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	roots, err := svc.Tree(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, roots, 2)
	food := roots[1]
	require.Len(t, food.Children, 2)
	meat := food.Children[1]
	assert.Equal(t, "Мясная продукция", meat.Name)
	require.Len(t, meat.Children, 1)
	assert.Equal(t, "Колбасные изделия", meat.Children[0].Name)
	assert.Equal(t, 5, countNodes(roots))
}

func TestResolveDescendants_FullClosure(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	closure, err := svc.ResolveDescendants(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, closure, 4)
	for _, id := range []int64{10, 11, 12, 14} {
		assert.Contains(t, closure, id)
	}
}

func TestResolveDescendants_IncludesRootItself(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	closure, err := svc.ResolveDescendants(context.Background(), 13)

	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{13: {}}, closure)
}

func TestResolveDescendants_MidTreeRoot(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	closure, err := svc.ResolveDescendants(context.Background(), 11)

	require.NoError(t, err)
	assert.Len(t, closure, 2)
	assert.Contains(t, closure, int64(11))
	assert.Contains(t, closure, int64(14))
}

func TestResolveDescendants_UnknownID(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	_, err := svc.ResolveDescendants(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestResolveDescendants_StopsOnCancelledContext(t *testing.T) {
	svc := NewActivityService(newDirectoryFixture(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ResolveDescendants(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
