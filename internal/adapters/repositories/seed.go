package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"os"
	"strings"
)

// Dialect selects the bind-parameter style. Values match database/sql driver names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "pgx"
)

// placeholders returns n bind parameters: "?, ?" or "$1, $2".
func (d Dialect) placeholders(n int) string {
	ph := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if d == DialectPostgres {
			ph = append(ph, fmt.Sprintf("$%d", i))
		} else {
			ph = append(ph, "?")
		}
	}
	return strings.Join(ph, ", ")
}

type LocationSeed struct {
	Name string `json:"name"`
}

type ConnectionSeed struct {
	Name   string `json:"name"`
	Weight uint32 `json:"weight"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type VehicleSeed struct {
	Name     string `json:"name"`
	Capacity uint32 `json:"capacity"`
	Start    string `json:"start"`
}

type CargoSeed struct {
	Name        string `json:"name"`
	Weight      uint32 `json:"weight"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// ScenarioSeed is the JSON shape of a scenario file.
type ScenarioSeed struct {
	Locations   []LocationSeed   `json:"locations"`
	Connections []ConnectionSeed `json:"connections"`
	Vehicles    []VehicleSeed    `json:"vehicles"`
	Cargo       []CargoSeed      `json:"cargo"`
}

// Read and parse a scenario JSON file.
func ReadScenarioSeed(jsonPath string) (ScenarioSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return ScenarioSeed{}, fmt.Errorf("read scenario: read %q: %w", jsonPath, err)
	}

	var seed ScenarioSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return ScenarioSeed{}, fmt.Errorf("read scenario: parse json: %w", err)
	}

	return seed, nil
}

// Scenario converts the seed into a validated domain scenario.
func (s ScenarioSeed) Scenario() (*domain.Scenario, error) {
	locations := make([]domain.Location, 0, len(s.Locations))
	for _, l := range s.Locations {
		locations = append(locations, domain.Location{Name: strings.TrimSpace(l.Name)})
	}

	connections := make([]domain.Connection, 0, len(s.Connections))
	for _, c := range s.Connections {
		connections = append(connections, domain.Connection{
			Name:   c.Name,
			Weight: c.Weight,
			From:   strings.TrimSpace(c.From),
			To:     strings.TrimSpace(c.To),
		})
	}

	vehicles := make([]domain.Vehicle, 0, len(s.Vehicles))
	for _, v := range s.Vehicles {
		vehicles = append(vehicles, domain.Vehicle{
			Name:     v.Name,
			Capacity: v.Capacity,
			Start:    strings.TrimSpace(v.Start),
		})
	}

	cargo := make([]domain.CargoItem, 0, len(s.Cargo))
	for _, c := range s.Cargo {
		cargo = append(cargo, domain.CargoItem{
			Name:        c.Name,
			Weight:      c.Weight,
			Origin:      strings.TrimSpace(c.Origin),
			Destination: strings.TrimSpace(c.Destination),
		})
	}

	return domain.NewScenario(locations, connections, vehicles, cargo)
}

// SeedFromScenario converts a domain scenario back into its JSON shape.
func SeedFromScenario(s *domain.Scenario) ScenarioSeed {
	var seed ScenarioSeed
	for _, l := range s.Network.Locations() {
		seed.Locations = append(seed.Locations, LocationSeed{Name: l.Name})
	}
	for _, c := range s.Network.Connections() {
		seed.Connections = append(seed.Connections, ConnectionSeed{Name: c.Name, Weight: c.Weight, From: c.From, To: c.To})
	}
	for _, v := range s.Vehicles {
		seed.Vehicles = append(seed.Vehicles, VehicleSeed{Name: v.Name, Capacity: v.Capacity, Start: v.Start})
	}
	for _, c := range s.Cargo {
		seed.Cargo = append(seed.Cargo, CargoSeed{Name: c.Name, Weight: c.Weight, Origin: c.Origin, Destination: c.Destination})
	}
	return seed
}

// Populate the database with scenario data from a JSON file.
// The file is validated as a whole before any row is written.
func SeedFromJSON(db *sql.DB, dialect Dialect, jsonPath string) error {
	seed, err := ReadScenarioSeed(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}

	scenario, err := seed.Scenario()
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}

	return SeedScenario(db, dialect, scenario)
}

// Replace the stored scenario with s in a single transaction.
func SeedScenario(db *sql.DB, dialect Dialect, s *domain.Scenario) error {
	if db == nil {
		return errors.New("seed scenario: DB is nil")
	}
	if s == nil {
		return errors.New("seed scenario: scenario is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed scenario: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Children first so location references stay valid.
	for _, table := range []string{"cargo_items", "vehicles", "connections", "locations"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("seed scenario: clear %s: %w", table, err)
		}
	}

	insert := func(table string, columns string, rows [][]any) error {
		if len(rows) == 0 {
			return nil
		}
		n := len(rows[0])
		stmt, err := tx.Prepare(fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s);", table, columns, dialect.placeholders(n),
		))
		if err != nil {
			return fmt.Errorf("seed scenario: prepare insert %s: %w", table, err)
		}
		defer stmt.Close()

		for i, args := range rows {
			if _, err := stmt.Exec(args...); err != nil {
				return fmt.Errorf("seed scenario: insert %s row #%d: %w", table, i+1, err)
			}
		}
		return nil
	}

	var locRows, connRows, vehicleRows, cargoRows [][]any
	for i, l := range s.Network.Locations() {
		locRows = append(locRows, []any{l.Name, i})
	}
	for i, c := range s.Network.Connections() {
		connRows = append(connRows, []any{i, c.Name, int64(c.Weight), c.From, c.To})
	}
	for i, v := range s.Vehicles {
		vehicleRows = append(vehicleRows, []any{i, v.Name, int64(v.Capacity), v.Start})
	}
	for i, c := range s.Cargo {
		cargoRows = append(cargoRows, []any{i, c.Name, int64(c.Weight), c.Origin, c.Destination})
	}

	if err := insert("locations", "name, ordinal", locRows); err != nil {
		return err
	}
	if err := insert("connections", "ordinal, name, weight, from_location, to_location", connRows); err != nil {
		return err
	}
	if err := insert("vehicles", "ordinal, name, capacity, start_location", vehicleRows); err != nil {
		return err
	}
	if err := insert("cargo_items", "ordinal, name, weight, origin, destination", cargoRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenario: commit tx: %w", err)
	}

	return nil
}
