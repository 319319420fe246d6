package config

import "time"

const defaultEnvFile = ".env"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: "companion.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080/api",
			RequestTimeout: 15 * time.Second,
			RefreshTimeout: 10 * time.Second,
			RateLimit:      10,
			RateBurst:      50,
		},
		Workers: Workers{
			TokenCheckInterval: 30 * time.Second,
			TokenRefreshLeeway: time.Minute,
		},
		FakeAPI: FakeAPI{
			HTTPAddress:          "localhost:8080",
			TokenSignKey:         "fakeapi-dev-sign-key",
			TokenIssuer:          "fakeapi",
			AccessTokenDuration:  5 * time.Minute,
			RefreshTokenDuration: 24 * time.Hour,
			RequestTimeout:       30 * time.Second,
		},
	}
}
