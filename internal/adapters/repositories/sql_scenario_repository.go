package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"
	"math"
)

// SQL-backed implementation of the ScenarioRepository port.
// The queries are portable between the SQLite and Postgres drivers.
type SQLScenarioRepository struct{ DB *sql.DB }

func NewSQLScenarioRepository(db *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: db}
}

// Load the stored scenario, preserving input order through the ordinal columns.
func (s *SQLScenarioRepository) LoadScenario(ctx context.Context) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, "scenario.repository.LoadScenario")(&err)

	if s.DB == nil {
		return nil, errors.New("sql scenario repository: DB is nil")
	}

	var locations []domain.Location
	err = s.queryRows(ctx, "SELECT name FROM locations ORDER BY ordinal;", func(rows *sql.Rows) error {
		var l domain.Location
		if err := rows.Scan(&l.Name); err != nil {
			return err
		}
		locations = append(locations, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario: locations: %w", err)
	}

	var connections []domain.Connection
	err = s.queryRows(ctx, `
	SELECT name, weight, from_location, to_location
	FROM connections
	ORDER BY ordinal;
	`, func(rows *sql.Rows) error {
		var c domain.Connection
		var weight int64
		if err := rows.Scan(&c.Name, &weight, &c.From, &c.To); err != nil {
			return err
		}
		weight32, err := toUint32("connection "+c.Name+" weight", weight)
		if err != nil {
			return err
		}
		c.Weight = weight32
		connections = append(connections, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario: connections: %w", err)
	}

	var vehicles []domain.Vehicle
	err = s.queryRows(ctx, `
	SELECT name, capacity, start_location
	FROM vehicles
	ORDER BY ordinal;
	`, func(rows *sql.Rows) error {
		var v domain.Vehicle
		var capacity int64
		if err := rows.Scan(&v.Name, &capacity, &v.Start); err != nil {
			return err
		}
		capacity32, err := toUint32("vehicle "+v.Name+" capacity", capacity)
		if err != nil {
			return err
		}
		v.Capacity = capacity32
		vehicles = append(vehicles, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario: vehicles: %w", err)
	}

	var cargo []domain.CargoItem
	err = s.queryRows(ctx, `
	SELECT name, weight, origin, destination
	FROM cargo_items
	ORDER BY ordinal;
	`, func(rows *sql.Rows) error {
		var c domain.CargoItem
		var weight int64
		if err := rows.Scan(&c.Name, &weight, &c.Origin, &c.Destination); err != nil {
			return err
		}
		weight32, err := toUint32("cargo "+c.Name+" weight", weight)
		if err != nil {
			return err
		}
		c.Weight = weight32
		cargo = append(cargo, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario: cargo: %w", err)
	}

	scenario, err := domain.NewScenario(locations, connections, vehicles, cargo)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	return scenario, nil
}

// toUint32 rejects stored values that do not fit the domain's uint32 fields.
func toUint32(field string, v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%s %d out of range [0, %d]", field, v, uint32(math.MaxUint32))
	}
	return uint32(v), nil
}

func (s *SQLScenarioRepository) queryRows(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration: %w", err)
	}

	return nil
}
