package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuilding(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, city, address, latitude, longitude FROM buildings WHERE id = $1`)).
		WithArgs(int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city", "address", "latitude", "longitude"}).
			AddRow(100, "Москва", "Ленинский проспект, 10", 55.751244, 37.618423))

	repo := NewPostgresBuildingsRepository(db)
	b, err := repo.GetBuilding(context.Background(), 100)

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "Москва", b.City)
	assert.InDelta(t, 55.751244, b.Latitude, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBuilding_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM buildings WHERE id = $1`)).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city", "address", "latitude", "longitude"}))

	repo := NewPostgresBuildingsRepository(db)
	b, err := repo.GetBuilding(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBuildings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY city ASC, address ASC`)).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city", "address", "latitude", "longitude"}).
			AddRow(100, "Москва", "Ленинский проспект, 10", 55.751244, 37.618423).
			AddRow(200, "Москва", "Тверская улица, 15", 55.765140, 37.605020))

	repo := NewPostgresBuildingsRepository(db)
	buildings, err := repo.ListBuildings(context.Background(), 50, 0)

	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, int64(100), buildings[0].ID)
	assert.Equal(t, int64(200), buildings[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
