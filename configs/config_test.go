package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "STORAGE_DRIVER", "DB_SOURCE", "DATA_FILE", "CORS_ORIGINS", "RATE_LIMIT",
	"OIDC_ISSUER", "OIDC_CLIENT_ID", "LOG_LEVEL", "SEED_DEMO_DATA",
}

// clearEnv unsets every key for the test and restores it afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, StorageJSON, cfg.StorageDriver)
	assert.Equal(t, "data/restaurant-data.json", cfg.DataFile)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "600-M", cfg.RateLimit)
	assert.False(t, cfg.SeedDemoData)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=8080\nSTORAGE_DRIVER=SQLite\nDB_SOURCE=pos.db\nCORS_ORIGINS=http://a.test, http://b.test\n" +
		"OIDC_ISSUER=https://issuer.test\nOIDC_CLIENT_ID=pos\nSEED_DEMO_DATA=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "pos.db", cfg.DBSource)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.SeedDemoData)
	assert.True(t, cfg.AuthEnabled())
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8080\n"), 0o644))
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "unsupported STORAGE_DRIVER")

	clearEnv(t)
	t.Setenv("SEED_DEMO_DATA", "sometimes")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "SEED_DEMO_DATA")
}
