package repository

import (
	"context"
	"database/sql"

	"tenant-directory/internal/domain"

	"github.com/lib/pq"
)

type PostgresActivitiesRepository struct {
	db *sql.DB
}

func NewPostgresActivitiesRepository(db *sql.DB) *PostgresActivitiesRepository {
	return &PostgresActivitiesRepository{db: db}
}

func (r *PostgresActivitiesRepository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, parent_id, level FROM activities WHERE id = $1`, id)
	a, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresActivitiesRepository) ListActivities(ctx context.Context, maxLevel *int) ([]*domain.Activity, error) {
	q := `SELECT id, name, parent_id, level FROM activities`
	args := []any{}
	if maxLevel != nil {
		q += ` WHERE level <= $1`
		args = append(args, *maxLevel)
	}
	q += ` ORDER BY level ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresActivitiesRepository) ListChildActivityIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM activities WHERE parent_id = ANY($1)`, pq.Array(parentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var parentID sql.NullInt64
	if err := row.Scan(&a.ID, &a.Name, &parentID, &a.Level); err != nil {
		return nil, err
	}
	if parentID.Valid {
		a.ParentID = &parentID.Int64
	}
	return &a, nil
}
