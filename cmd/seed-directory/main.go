// Loads the demo directory dataset: two Moscow buildings, a small activity
// taxonomy and three tenant organizations. Wipes the directory tables first,
// so only point it at a development database.
package main

import (
	"database/sql"
	"fmt"
	"log"

	"tenant-directory/internal/config"
	"tenant-directory/internal/database"
	"tenant-directory/internal/migrate"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer database.Close(db)

	if err := migrate.EnsureSchema(db); err != nil {
		log.Fatalf("Schema init failed: %v", err)
	}
	if err := seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	fmt.Println("Demo dataset loaded")
}

func seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Cascades wipe organizations, phones, tags and tasks with their owners.
	if _, err := tx.Exec(`DELETE FROM buildings`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM activities`); err != nil {
		return err
	}

	buildings := []struct {
		id        int64
		city      string
		address   string
		latitude  float64
		longitude float64
	}{
		{100, "Москва", "Ленинский проспект, 10", 55.751244, 37.618423},
		{200, "Москва", "Тверская улица, 15", 55.765140, 37.605020},
	}
	for _, b := range buildings {
		if _, err := tx.Exec(
			`INSERT INTO buildings (id, city, address, latitude, longitude) VALUES ($1, $2, $3, $4, $5)`,
			b.id, b.city, b.address, b.latitude, b.longitude); err != nil {
			return err
		}
	}

	activities := []struct {
		id       int64
		name     string
		parentID *int64
		level    int
	}{
		{10, "Продукты питания", nil, 1},
		{11, "Мясная продукция", ptr(int64(10)), 2},
		{12, "Молочная продукция", ptr(int64(10)), 2},
		{13, "Автомобили", nil, 1},
	}
	for _, a := range activities {
		if _, err := tx.Exec(
			`INSERT INTO activities (id, name, parent_id, level) VALUES ($1, $2, $3, $4)`,
			a.id, a.name, a.parentID, a.level); err != nil {
			return err
		}
	}

	organizations := []struct {
		id         int64
		name       string
		buildingID int64
	}{
		{1000, "ООО Рога и Копыта", 100},
		{1001, "ООО АвтоМир", 100},
		{1002, "ООО Молочная ферма", 200},
	}
	for _, o := range organizations {
		if _, err := tx.Exec(
			`INSERT INTO organizations (id, name, building_id) VALUES ($1, $2, $3)`,
			o.id, o.name, o.buildingID); err != nil {
			return err
		}
	}

	phones := []struct {
		orgID int64
		phone string
	}{
		{1000, "+7-495-111-2233"},
		{1000, "+7-495-111-4455"},
		{1001, "+7-495-222-0001"},
		{1002, "+7-495-333-8888"},
	}
	for _, p := range phones {
		if _, err := tx.Exec(
			`INSERT INTO organization_phones (organization_id, phone) VALUES ($1, $2)`,
			p.orgID, p.phone); err != nil {
			return err
		}
	}

	tags := []struct {
		orgID      int64
		activityID int64
	}{
		{1000, 11},
		{1001, 13},
		{1002, 12},
	}
	for _, t := range tags {
		if _, err := tx.Exec(
			`INSERT INTO organization_activities (organization_id, activity_id) VALUES ($1, $2)`,
			t.orgID, t.activityID); err != nil {
			return err
		}
	}

	tasks := []struct {
		title       string
		description *string
		buildingID  int64
	}{
		{"Проверка лифтов", ptrStr("Плановый осмотр лифтового оборудования"), 100},
		{"Уборка территории", nil, 100},
		{"Ремонт фасада", nil, 200},
	}
	for _, t := range tasks {
		if _, err := tx.Exec(
			`INSERT INTO tasks (title, description, building_id) VALUES ($1, $2, $3)`,
			t.title, t.description, t.buildingID); err != nil {
			return err
		}
	}

	// Bump the sequences past the fixed demo ids.
	for _, stmt := range []string{
		`SELECT setval('buildings_id_seq', (SELECT MAX(id) FROM buildings))`,
		`SELECT setval('activities_id_seq', (SELECT MAX(id) FROM activities))`,
		`SELECT setval('organizations_id_seq', (SELECT MAX(id) FROM organizations))`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func ptr(v int64) *int64 { return &v }

func ptrStr(v string) *string { return &v }
