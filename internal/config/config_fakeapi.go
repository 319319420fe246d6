package config

import (
	"fmt"
	"time"
)

// FakeAPIConfig is the configuration of the fake hospital API server.
type FakeAPIConfig struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// TokenSignKey signs issued access tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// AccessTokenDuration is the access token lifetime.
	AccessTokenDuration time.Duration
	// RefreshTokenDuration is the refresh token lifetime.
	RefreshTokenDuration time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
}

// GetFakeAPIConfig builds and validates the fake API configuration from the
// merged structured configuration.
func GetFakeAPIConfig(args []string) (*FakeAPIConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fakeCfg := &FakeAPIConfig{
		HTTPAddress:          cfg.FakeAPI.HTTPAddress,
		TokenSignKey:         cfg.FakeAPI.TokenSignKey,
		TokenIssuer:          cfg.FakeAPI.TokenIssuer,
		AccessTokenDuration:  cfg.FakeAPI.AccessTokenDuration,
		RefreshTokenDuration: cfg.FakeAPI.RefreshTokenDuration,
		RequestTimeout:       cfg.FakeAPI.RequestTimeout,
	}

	return fakeCfg, fakeCfg.validate()
}
