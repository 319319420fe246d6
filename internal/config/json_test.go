package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "log_file": "client.log" },
		"storage": { "db": { "dsn": "companion.db" } },
		"adapter": {
			"http_address": "https://hospital.example.com/api",
			"request_timeout": "20s",
			"refresh_timeout": 5000000000,
			"rate_limit": 1.5,
			"rate_burst": 3
		},
		"workers": {
			"token_check_interval": "30s",
			"token_refresh_leeway": "1m"
		},
		"fakeapi": {
			"http_address": "localhost:9000",
			"token_sign_key": "secret",
			"token_issuer": "hospital",
			"access_token_duration": "2m",
			"refresh_token_duration": "24h",
			"request_timeout": "10s"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "companion.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://hospital.example.com/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RefreshTimeout)
	assert.InDelta(t, 1.5, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 3, cfg.Adapter.RateBurst)
	assert.Equal(t, 30*time.Second, cfg.Workers.TokenCheckInterval)
	assert.Equal(t, time.Minute, cfg.Workers.TokenRefreshLeeway)
	assert.Equal(t, "localhost:9000", cfg.FakeAPI.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.FakeAPI.AccessTokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.FakeAPI.RefreshTokenDuration)
	assert.Equal(t, 10*time.Second, cfg.FakeAPI.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"later"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
