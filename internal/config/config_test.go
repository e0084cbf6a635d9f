package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storedesk/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STORE_DB", "STORE_FOREIGN_KEYS", "STORE_SEED"} {
		t.Setenv(k, "")
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		os.Unsetenv("LOG_FILE")
		t.Cleanup(func() { os.Setenv("LOG_FILE", v) })
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "store.db", cfg.DBDSN)
	assert.False(t, cfg.ForeignKeys)
	assert.True(t, cfg.Seed)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "storedesk.yml")
	require.NoError(t, os.WriteFile(path, []byte("db: shop.db\nforeign_keys: true\nseed: false\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shop.db", cfg.DBDSN)
	assert.True(t, cfg.ForeignKeys)
	assert.False(t, cfg.Seed)

	t.Setenv("STORE_DB", "env.db")
	t.Setenv("STORE_SEED", "true")
	t.Setenv("LOG_FILE", "")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DBDSN)
	assert.True(t, cfg.Seed)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadRejectsBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_FOREIGN_KEYS", "maybe")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_FOREIGN_KEYS")
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
