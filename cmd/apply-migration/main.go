// Applies the directory schema to the configured database. Safe to run
// repeatedly; every statement is idempotent.
package main

import (
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
		log.Fatalf("Migration failed: %v", err)
	}
	fmt.Printf("Schema applied to database %s\n", cfg.Database.Database)
}
