// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the fake API server. It is populated by merging values from
// command-line flags, environment variables, an optional .env file, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the hospital API client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FakeAPI holds settings of the local fake hospital API server.
	FakeAPI FakeAPI `envPrefix:"FAKEAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a .env file. A missing file is
	// not an error. Populated via ENV_FILE or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the client log file. The terminal UI owns
	// stdout, so the client never logs to it.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the session database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local session database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "companion.db"). The value
	// "memory" selects the non-persistent in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings of the hospital API client.
type Adapter struct {
	// HTTPAddress is the API base URL, including the path prefix
	// (e.g. "https://hospital.example.com/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single API call unless the call overrides it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshTimeout bounds the shared token refresh call.
	// Env: ADAPTER_REFRESH_TIMEOUT
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT"`

	// RateLimit is the maximum number of outgoing requests per second.
	// Zero disables client-side rate limiting.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size used with RateLimit.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// TokenCheckInterval defines how often the token refresh job inspects
	// the stored access token.
	// Env: WORKERS_TOKEN_CHECK_INTERVAL
	TokenCheckInterval time.Duration `env:"TOKEN_CHECK_INTERVAL"`

	// TokenRefreshLeeway is how long before expiry the job refreshes the
	// access token.
	// Env: WORKERS_TOKEN_REFRESH_LEEWAY
	TokenRefreshLeeway time.Duration `env:"TOKEN_REFRESH_LEEWAY"`
}

// FakeAPI holds settings of the fake hospital API used for local runs.
type FakeAPI struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: FAKEAPI_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the HMAC key used to sign issued access tokens.
	// Env: FAKEAPI_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: FAKEAPI_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of issued access tokens.
	// Env: FAKEAPI_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of issued refresh tokens.
	// Env: FAKEAPI_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: FAKEAPI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first non-zero value wins, in this order:
//  1. Command-line flags (args)
//  2. Environment variables
//  3. .env file (path resolved from sources 1 and 2, default ".env")
//  4. JSON file (path resolved from sources 1-3)
//  5. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withDotEnv().
		withJSON().
		withDefaults().
		build()
}
