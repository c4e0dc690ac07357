// Package migrate owns the directory schema. EnsureSchema is idempotent so
// startup can run it unconditionally against an empty or existing database.
package migrate

import (
	"database/sql"
	"fmt"
)

func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS buildings (
			id BIGSERIAL PRIMARY KEY,
			city VARCHAR(120) NOT NULL,
			address VARCHAR(255) NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_buildings_latitude ON buildings(latitude)`,
		`CREATE INDEX IF NOT EXISTS idx_buildings_longitude ON buildings(longitude)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(120) NOT NULL,
			parent_id BIGINT REFERENCES activities(id) ON DELETE CASCADE,
			level INTEGER NOT NULL,
			CONSTRAINT ck_activities_level_range CHECK (level BETWEEN 1 AND 3),
			CONSTRAINT ck_activities_level_parent CHECK (
				(parent_id IS NULL AND level = 1) OR (parent_id IS NOT NULL AND level > 1)
			)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_parent_id ON activities(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_level ON activities(level)`,
		`CREATE TABLE IF NOT EXISTS organizations (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			building_id BIGINT NOT NULL REFERENCES buildings(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_organizations_building_id ON organizations(building_id)`,
		`CREATE TABLE IF NOT EXISTS organization_phones (
			id BIGSERIAL PRIMARY KEY,
			organization_id BIGINT NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			phone VARCHAR(32) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_organization_phones_org_id ON organization_phones(organization_id)`,
		`CREATE TABLE IF NOT EXISTS organization_activities (
			organization_id BIGINT NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			activity_id BIGINT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
			PRIMARY KEY (organization_id, activity_id)
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			building_id BIGINT NOT NULL REFERENCES buildings(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_building_id ON tasks(building_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
