package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, OracleHash, cfg.Booking.Oracle)
	assert.Equal(t, "confirmed", cfg.Booking.InitialStatus)
	assert.Equal(t, "AAW", cfg.Booking.ConfirmationPrefix)
	assert.Equal(t, 350.0, cfg.Pricing.LaborRate)
	assert.Equal(t, 0.20, cfg.Pricing.TaxRate)
	assert.Equal(t, 0.25, cfg.Pricing.RushRate)
	assert.Equal(t, "MAD", cfg.Pricing.Currency)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Catalog.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 3001

[database]
enabled = true
host = "db"
user = "configurator"
dbname = "configurator"

[pricing]
labor_rate = 400

[booking]
oracle = "hybrid"
initial_status = "pending"

[catalog]
enabled = true
source = "postgres"
cache_ttl = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.HTTPPort)
	assert.Equal(t, 400.0, cfg.Pricing.LaborRate)
	assert.Equal(t, 0.20, cfg.Pricing.TaxRate)
	assert.Equal(t, OracleHybrid, cfg.Booking.Oracle)
	assert.Equal(t, "pending", cfg.Booking.InitialStatus)
	assert.Equal(t, 60.0, cfg.Catalog.CacheTTLDuration().Seconds())
	assert.Equal(t, "host=db port=5432 user=configurator password= dbname=configurator sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("TURSO_DATABASE_URL", "libsql://catalog.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "token")

	cfg, err := Load(writeConfig(t, `
[catalog]
enabled = true
source = "turso"
`))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "libsql://catalog.turso.io", cfg.Turso.URL)
	assert.Equal(t, "token", cfg.Turso.AuthToken)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"store oracle without database", func(c *Config) { c.Booking.Oracle = OracleStore }},
		{"hash oracle with database", func(c *Config) { c.Database.Enabled = true }},
		{"unknown oracle", func(c *Config) { c.Booking.Oracle = "random" }},
		{"negative tax", func(c *Config) { c.Pricing.TaxRate = -0.1 }},
		{"zero hours per day", func(c *Config) { c.Pricing.HoursPerWorkDay = 0 }},
		{"cancelled initial status", func(c *Config) { c.Booking.InitialStatus = "cancelled" }},
		{"empty confirmation prefix", func(c *Config) { c.Booking.ConfirmationPrefix = "" }},
		{"lowercase confirmation prefix", func(c *Config) { c.Booking.ConfirmationPrefix = "aaw" }},
		{"postgres catalog without database", func(c *Config) { c.Catalog.Enabled = true }},
		{"turso catalog without url", func(c *Config) {
			c.Catalog.Enabled = true
			c.Catalog.Source = CatalogSourceTurso
		}},
		{"rate limit without burst", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Burst = 0
		}},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestValidate_DatabaseNeedsStoreBackedOracle(t *testing.T) {
	cfg := Default()
	cfg.Database.Enabled = true

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	for _, oracle := range []string{OracleStore, OracleHybrid} {
		cfg.Booking.Oracle = oracle
		assert.NoError(t, cfg.Validate(), oracle)
	}
}
