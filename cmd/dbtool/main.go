package main

import (
	"database/sql"
	"fmt"
	"freight-route-service/internal/adapters/repositories"
	"freight-route-service/internal/config"
	"freight-route-service/internal/platform/db"
	"log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.OpenDriver(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	err = initAndSeed(sqlDB, repositories.Dialect(cfg.DBDriver), cfg.SeedPath)
	sqlDB.Close()
	if err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(sqlDB *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqlDB); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromJSON(sqlDB, dialect, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
