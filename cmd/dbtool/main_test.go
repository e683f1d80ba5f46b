package main

import (
	"context"
	"path/filepath"
	"testing"

	"freight-route-service/internal/adapters/repositories"
	"freight-route-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndSeed(t *testing.T) {
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	seed := filepath.Join("..", "..", "data", "seeds", "scenario.json")
	require.NoError(t, initAndSeed(sqlDB, repositories.DialectSQLite, seed))

	s, err := repositories.NewSQLScenarioRepository(sqlDB).LoadScenario(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Network.Len())
	assert.Len(t, s.Cargo, 1)
}

func TestInitAndSeed_MissingSeedReturnsError(t *testing.T) {
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = initAndSeed(sqlDB, repositories.DialectSQLite, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding failed")
}
