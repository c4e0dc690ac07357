package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListBuildings_OrderedByCityAndAddress(t *testing.T) {
	svc := NewBuildingService(newDirectoryFixture(), zap.NewNop())

	buildings, err := svc.List(context.Background(), 50, 0)

	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, int64(100), buildings[0].ID)
	assert.Equal(t, int64(200), buildings[1].ID)
}

func TestListBuildings_Window(t *testing.T) {
	svc := NewBuildingService(newDirectoryFixture(), zap.NewNop())

	buildings, err := svc.List(context.Background(), 1, 1)

	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, int64(200), buildings[0].ID)
}
