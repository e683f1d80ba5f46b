package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Fallback(t *testing.T) {
	t.Setenv("FREIGHT_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("FREIGHT_TEST_KEY", "fallback"))

	t.Setenv("FREIGHT_TEST_KEY", "value")
	assert.Equal(t, "value", Get("FREIGHT_TEST_KEY", "fallback"))
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"DB_DRIVER", "DB_PATH", "DATABASE_URL", "SEED_PATH", "PORT", "ROUTE_CACHE",
		"REDIS_ADDR", "PLANNER_WORKERS", "FAILURE_POLICY", "TRACING_ENABLED",
		"TRACING_EXPORTER", "OTLP_ENDPOINT", "TRACING_SAMPLE_RATIO",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "data/app.db", cfg.DSN())
	assert.Equal(t, "memory", cfg.RouteCache)
	assert.Equal(t, "abort", cfg.FailurePolicy)
	assert.Equal(t, 0, cfg.PlannerWorkers)
	assert.False(t, cfg.TracingEnabled)
	assert.InDelta(t, 1.0, cfg.TracingSampleRatio, 1e-9)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/freight")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/freight", cfg.DSN())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PLANNER_WORKERS", "many")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("PLANNER_WORKERS", "4")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load()
	require.Error(t, err)
}
