package repository

import (
	"context"
	"database/sql"

	"tenant-directory/internal/domain"
)

type PostgresBuildingsRepository struct {
	db *sql.DB
}

func NewPostgresBuildingsRepository(db *sql.DB) *PostgresBuildingsRepository {
	return &PostgresBuildingsRepository{db: db}
}

func (r *PostgresBuildingsRepository) GetBuilding(ctx context.Context, id int64) (*domain.Building, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, city, address, latitude, longitude FROM buildings WHERE id = $1`, id)
	var b domain.Building
	err := row.Scan(&b.ID, &b.City, &b.Address, &b.Latitude, &b.Longitude)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBuildingsRepository) ListBuildings(ctx context.Context, limit, offset int) ([]*domain.Building, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, city, address, latitude, longitude
		 FROM buildings
		 ORDER BY city ASC, address ASC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Building{}
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.ID, &b.City, &b.Address, &b.Latitude, &b.Longitude); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
