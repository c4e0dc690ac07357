package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tenant-directory/internal/domain"

	"github.com/lib/pq"
)

type PostgresOrganizationsRepository struct {
	db *sql.DB
}

func NewPostgresOrganizationsRepository(db *sql.DB) *PostgresOrganizationsRepository {
	return &PostgresOrganizationsRepository{db: db}
}

const organizationSelect = `
	SELECT o.id, o.name, o.building_id, b.city, b.address, b.latitude, b.longitude
	FROM organizations o
	JOIN buildings b ON b.id = o.building_id`

func (r *PostgresOrganizationsRepository) ListOrganizations(ctx context.Context, filters OrganizationFilters) ([]*domain.Organization, error) {
	where := []string{}
	args := []any{}
	argIdx := 1

	if filters.BuildingID != nil {
		where = append(where, fmt.Sprintf("o.building_id = $%d", argIdx))
		args = append(args, *filters.BuildingID)
		argIdx++
	}
	if len(filters.ActivityIDs) > 0 {
		where = append(where, fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM organization_activities oa
				WHERE oa.organization_id = o.id AND oa.activity_id = ANY($%d)
			)`, argIdx))
		args = append(args, pq.Array(filters.ActivityIDs))
		argIdx++
	}
	if filters.NameQuery != "" {
		where = append(where, fmt.Sprintf("o.name ILIKE '%%' || $%d || '%%'", argIdx))
		args = append(args, filters.NameQuery)
		argIdx++
	}

	q := organizationSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY o.name ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []*domain.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAssociations(ctx, orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *PostgresOrganizationsRepository) GetOrganization(ctx context.Context, id int64) (*domain.Organization, error) {
	row := r.db.QueryRowContext(ctx, organizationSelect+` WHERE o.id = $1`, id)
	org, err := scanOrganization(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadAssociations(ctx, []*domain.Organization{org}); err != nil {
		return nil, err
	}
	return org, nil
}

func scanOrganization(row rowScanner) (*domain.Organization, error) {
	var org domain.Organization
	var b domain.Building
	if err := row.Scan(&org.ID, &org.Name, &org.BuildingID,
		&b.City, &b.Address, &b.Latitude, &b.Longitude); err != nil {
		return nil, err
	}
	b.ID = org.BuildingID
	org.Building = &b
	org.Phones = []string{}
	org.Activities = []domain.Activity{}
	return &org, nil
}

// loadAssociations fills phones and tagged activities for the given
// organizations in two batched queries (the SQL ORDER BY fixes the
// phone and activity ordering the API exposes).
func (r *PostgresOrganizationsRepository) loadAssociations(ctx context.Context, orgs []*domain.Organization) error {
	if len(orgs) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Organization, len(orgs))
	ids := make([]int64, 0, len(orgs))
	for _, org := range orgs {
		byID[org.ID] = org
		ids = append(ids, org.ID)
	}

	phoneRows, err := r.db.QueryContext(ctx,
		`SELECT organization_id, phone
		 FROM organization_phones
		 WHERE organization_id = ANY($1)
		 ORDER BY phone ASC`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer phoneRows.Close()
	for phoneRows.Next() {
		var orgID int64
		var phone string
		if err := phoneRows.Scan(&orgID, &phone); err != nil {
			return err
		}
		if org, ok := byID[orgID]; ok {
			org.Phones = append(org.Phones, phone)
		}
	}
	if err := phoneRows.Err(); err != nil {
		return err
	}

	actRows, err := r.db.QueryContext(ctx,
		`SELECT oa.organization_id, a.id, a.name, a.parent_id, a.level
		 FROM organization_activities oa
		 JOIN activities a ON a.id = oa.activity_id
		 WHERE oa.organization_id = ANY($1)
		 ORDER BY a.level ASC, a.name ASC`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer actRows.Close()
	for actRows.Next() {
		var orgID int64
		var a domain.Activity
		var parentID sql.NullInt64
		if err := actRows.Scan(&orgID, &a.ID, &a.Name, &parentID, &a.Level); err != nil {
			return err
		}
		if parentID.Valid {
			a.ParentID = &parentID.Int64
		}
		if org, ok := byID[orgID]; ok {
			org.Activities = append(org.Activities, a)
		}
	}
	return actRows.Err()
}
