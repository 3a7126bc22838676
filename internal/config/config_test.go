package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "tours"
user = "app"
password = "secret"

[catalog]
timezone = "Europe/Moscow"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Catalog.FeaturedLimit)
	assert.Equal(t, 3, cfg.Catalog.PromotionsLimit)
	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=tours sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Catalog.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
dbname = "tours"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	path := writeConfig(t, `
[database]
dbname = "tours"

[catalog]
timezone = "Mars/Olympus"
`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path = writeConfig(t, `
[server]
http_port = 0
`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
