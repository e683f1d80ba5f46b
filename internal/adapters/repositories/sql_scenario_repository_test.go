package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioJSON = `{
  "locations": [{"name": "A"}, {"name": "B"}, {"name": "C"}, {"name": "D"}],
  "connections": [
    {"name": "E1", "weight": 30, "from": "A", "to": "B"},
    {"name": "E2", "weight": 10, "from": "B", "to": "C"},
    {"name": "E3", "weight": 7, "from": "C", "to": "D"}
  ],
  "vehicles": [
    {"name": "Q2", "capacity": 10, "start": "C"},
    {"name": "Q1", "capacity": 6, "start": "B"}
  ],
  "cargo": [
    {"name": "K2", "weight": 8, "origin": "B", "destination": "A"},
    {"name": "K1", "weight": 5, "origin": "A", "destination": "C"}
  ]
}`

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitSchema(sqlDB))
	return sqlDB
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInitSchema_Idempotent(t *testing.T) {
	sqlDB := openTestDB(t)
	require.NoError(t, InitSchema(sqlDB))
}

func TestSeedAndLoadScenario_PreservesOrder(t *testing.T) {
	sqlDB := openTestDB(t)
	require.NoError(t, SeedFromJSON(sqlDB, DialectSQLite, writeSeed(t, scenarioJSON)))

	repo := NewSQLScenarioRepository(sqlDB)
	s, err := repo.LoadScenario(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Location{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}, s.Network.Locations())
	assert.Equal(t, []domain.Connection{
		{Name: "E1", Weight: 30, From: "A", To: "B"},
		{Name: "E2", Weight: 10, From: "B", To: "C"},
		{Name: "E3", Weight: 7, From: "C", To: "D"},
	}, s.Network.Connections())
	assert.Equal(t, []domain.Vehicle{
		{Name: "Q2", Capacity: 10, Start: "C"},
		{Name: "Q1", Capacity: 6, Start: "B"},
	}, s.Vehicles)
	assert.Equal(t, []domain.CargoItem{
		{Name: "K2", Weight: 8, Origin: "B", Destination: "A"},
		{Name: "K1", Weight: 5, Origin: "A", Destination: "C"},
	}, s.Cargo)
}

func TestSeedFromJSON_ReplacesPreviousScenario(t *testing.T) {
	sqlDB := openTestDB(t)
	require.NoError(t, SeedFromJSON(sqlDB, DialectSQLite, writeSeed(t, scenarioJSON)))

	small := `{
	  "locations": [{"name": "X"}, {"name": "Y"}],
	  "connections": [{"name": "XY", "weight": 1, "from": "X", "to": "Y"}],
	  "vehicles": [{"name": "V", "capacity": 1, "start": "X"}],
	  "cargo": []
	}`
	require.NoError(t, SeedFromJSON(sqlDB, DialectSQLite, writeSeed(t, small)))

	s, err := NewSQLScenarioRepository(sqlDB).LoadScenario(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Network.Len())
	assert.Len(t, s.Vehicles, 1)
	assert.Empty(t, s.Cargo)
}

func TestSeedFromJSON_RejectsUnknownLocation(t *testing.T) {
	sqlDB := openTestDB(t)

	bad := `{
	  "locations": [{"name": "A"}],
	  "connections": [{"name": "E", "weight": 1, "from": "A", "to": "NOWHERE"}],
	  "vehicles": [],
	  "cargo": []
	}`
	err := SeedFromJSON(sqlDB, DialectSQLite, writeSeed(t, bad))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownLocation))

	var n int
	require.NoError(t, sqlDB.QueryRow("SELECT COUNT(*) FROM locations").Scan(&n))
	assert.Zero(t, n, "nothing must be written for an invalid scenario")
}

func TestSeedFromJSON_MissingFile(t *testing.T) {
	sqlDB := openTestDB(t)
	err := SeedFromJSON(sqlDB, DialectSQLite, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadScenario_EmptyDatabase(t *testing.T) {
	sqlDB := openTestDB(t)

	s, err := NewSQLScenarioRepository(sqlDB).LoadScenario(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.Network.Len())
}

func TestSeedFromScenario_RoundTrip(t *testing.T) {
	seed, err := ReadScenarioSeed(writeSeed(t, scenarioJSON))
	require.NoError(t, err)

	s, err := seed.Scenario()
	require.NoError(t, err)
	assert.Equal(t, seed, SeedFromScenario(s))
}

func TestDialectPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", DialectSQLite.placeholders(3))
	assert.Equal(t, "$1, $2, $3", DialectPostgres.placeholders(3))
}

func TestLoadScenario_RejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name   string
		update string
	}{
		{"connection weight", "UPDATE connections SET weight = 4294967296 WHERE name = 'E1'"},
		{"vehicle capacity", "UPDATE vehicles SET capacity = 4294967296 WHERE name = 'Q1'"},
		{"cargo weight", "UPDATE cargo_items SET weight = 8589934592 WHERE name = 'K1'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB := openTestDB(t)
			require.NoError(t, SeedFromJSON(sqlDB, DialectSQLite, writeSeed(t, scenarioJSON)))

			_, err := sqlDB.Exec(tt.update)
			require.NoError(t, err)

			_, err = NewSQLScenarioRepository(sqlDB).LoadScenario(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "out of range")
		})
	}
}

func TestLoadScenario_AcceptsMaxUint32(t *testing.T) {
	sqlDB := openTestDB(t)
	require.NoError(t, SeedFromJSON(sqlDB, DialectSQLite, writeSeed(t, scenarioJSON)))

	_, err := sqlDB.Exec("UPDATE vehicles SET capacity = 4294967295 WHERE name = 'Q1'")
	require.NoError(t, err)

	s, err := NewSQLScenarioRepository(sqlDB).LoadScenario(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), s.Vehicles[1].Capacity)
}
