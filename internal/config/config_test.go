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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "turf"
password = "turf"
dbname = "turf_booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Redis.SlotsTTL)

	// Дефолтная ценовая политика: полные сутки, пять полос
	assert.Equal(t, 0, cfg.Pricing.OpenHour)
	assert.Equal(t, 24, cfg.Pricing.CloseHour)
	assert.Len(t, cfg.Pricing.Bands, 5)
	assert.Equal(t, 500.0, cfg.Pricing.FallbackBasePrice)
}

func TestLoad_CustomPricing(t *testing.T) {
	path := writeConfig(t, `
[pricing]
open_hour = 6
close_hour = 22
fallback_base_price = 300

[[pricing.bands]]
from_hour = 6
to_hour = 18
delta = 0

[[pricing.bands]]
from_hour = 18
to_hour = 22
delta = 150
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Pricing.OpenHour)
	assert.Equal(t, 22, cfg.Pricing.CloseHour)
	require.Len(t, cfg.Pricing.Bands, 2)
	assert.Equal(t, 150.0, cfg.Pricing.Bands[1].Delta)
}

func TestLoad_RejectsGapInBands(t *testing.T) {
	path := writeConfig(t, `
[pricing]
open_hour = 0
close_hour = 24

[[pricing.bands]]
from_hour = 0
to_hour = 10
delta = 0

[[pricing.bands]]
from_hour = 12
to_hour = 24
delta = 100
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsOverlappingBands(t *testing.T) {
	path := writeConfig(t, `
[pricing]
open_hour = 0
close_hour = 24

[[pricing.bands]]
from_hour = 0
to_hour = 10
delta = 0

[[pricing.bands]]
from_hour = 5
to_hour = 24
delta = 100
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidHorizon(t *testing.T) {
	path := writeConfig(t, `
[pricing]
open_hour = 22
close_hour = 6
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
