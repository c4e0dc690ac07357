package repository

import (
	"context"
	"database/sql"

	"tenant-directory/internal/domain"
)

type PostgresTasksRepository struct {
	db *sql.DB
}

func NewPostgresTasksRepository(db *sql.DB) *PostgresTasksRepository {
	return &PostgresTasksRepository{db: db}
}

func (r *PostgresTasksRepository) ListTasksForBuilding(ctx context.Context, buildingID int64) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.title, t.description, t.building_id,
		        b.city, b.address, b.latitude, b.longitude
		 FROM tasks t
		 JOIN buildings b ON b.id = t.building_id
		 WHERE t.building_id = $1
		 ORDER BY t.title ASC`, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		var b domain.Building
		var description sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &description, &t.BuildingID,
			&b.City, &b.Address, &b.Latitude, &b.Longitude); err != nil {
			return nil, err
		}
		if description.Valid {
			t.Description = &description.String
		}
		b.ID = t.BuildingID
		t.Building = &b
		out = append(out, &t)
	}
	return out, rows.Err()
}
