package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. The DDL is shared by SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		name TEXT PRIMARY KEY,
		ordinal INTEGER NOT NULL
	);
	`

	createConnectionsQuery := `
	CREATE TABLE IF NOT EXISTS connections (
		ordinal INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		weight BIGINT NOT NULL CHECK (weight >= 0),
		from_location TEXT NOT NULL REFERENCES locations(name),
		to_location TEXT NOT NULL REFERENCES locations(name)
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		ordinal INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		capacity BIGINT NOT NULL CHECK (capacity >= 0),
		start_location TEXT NOT NULL REFERENCES locations(name)
	);
	`

	createCargoQuery := `
	CREATE TABLE IF NOT EXISTS cargo_items (
		ordinal INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		weight BIGINT NOT NULL CHECK (weight >= 0),
		origin TEXT NOT NULL REFERENCES locations(name),
		destination TEXT NOT NULL REFERENCES locations(name)
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        network TEXT NOT NULL,
        source TEXT NOT NULL,
        destination TEXT NOT NULL,
        route TEXT NOT NULL,
        PRIMARY KEY (network, source, destination)
    );
	`

	statements := []string{
		createLocationsQuery,
		createConnectionsQuery,
		createVehiclesQuery,
		createCargoQuery,
		createRouteCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
