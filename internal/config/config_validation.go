// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the client configuration is usable before the client
// starts. Each group reports its own sentinel error.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RefreshTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RateLimit < 0 || (cfg.Adapter.RateLimit > 0 && cfg.Adapter.RateBurst < 1) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TokenCheckInterval <= 0 || cfg.Workers.TokenRefreshLeeway < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *FakeAPIConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return ErrInvalidFakeAPIConfigs
	}

	if cfg.AccessTokenDuration <= 0 || cfg.RefreshTokenDuration <= 0 || cfg.RequestTimeout <= 0 {
		return ErrInvalidFakeAPIConfigs
	}

	return nil
}
