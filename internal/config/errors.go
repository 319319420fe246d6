package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [FakeAPIConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid API client settings
	// (for example, missing base URL, non-positive timeouts or a negative
	// rate limit).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero token check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidFakeAPIConfigs indicates invalid fake API settings
	// (for example, empty sign key or zero token duration).
	ErrInvalidFakeAPIConfigs = errors.New("invalid fake api configuration")
)
