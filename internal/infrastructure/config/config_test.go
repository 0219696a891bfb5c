package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "http://localhost:3000", cfg.Visa.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Visa.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Visa.CacheTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Same(t, cfg, Get())
}

func TestLoad_PlatformEnvAliases(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/calls")
	t.Setenv("PORT", "8081")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/calls", cfg.Database.URL)
	assert.Equal(t, "postgres://u:p@db:5432/calls", cfg.Database.GetDSN())
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestLoad_PrefixedEnvAndModeOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CALLCENTER_DATABASE_DRIVER", "sqlite")
	t.Setenv("CALLCENTER_VISA_TIMEOUT", "2s")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Visa.Timeout)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CALLCENTER_DATABASE_DRIVER", "oracle")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver must be one of [postgres mysql sqlite]")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
