package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("SLOT_GRANULARITY_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 15, cfg.SlotGranularityMin)
	assert.Equal(t, 30, cfg.FallbackServiceMin)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("SLOT_GRANULARITY_MINUTES", "10")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 10, cfg.SlotGranularityMin)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("SLOT_GRANULARITY_MINUTES", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SLOT_GRANULARITY_MINUTES", "15")
	t.Setenv("DATABASE_DRIVER", "mysql")
	_, err = Load()
	assert.Error(t, err)
}
