package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
// Durations are written as strings ("15s", "1m") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RefreshTimeout Duration `json:"refresh_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TokenCheckInterval Duration `json:"token_check_interval"`
		TokenRefreshLeeway Duration `json:"token_refresh_leeway"`
	} `json:"workers,omitempty"`

	FakeAPI struct {
		HTTPAddress          string   `json:"http_address"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		RequestTimeout       Duration `json:"request_timeout"`
	} `json:"fakeapi,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RefreshTimeout: time.Duration(jsonCfg.Adapter.RefreshTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
			RateBurst:      jsonCfg.Adapter.RateBurst,
		},
		Workers: Workers{
			TokenCheckInterval: time.Duration(jsonCfg.Workers.TokenCheckInterval),
			TokenRefreshLeeway: time.Duration(jsonCfg.Workers.TokenRefreshLeeway),
		},
		FakeAPI: FakeAPI{
			HTTPAddress:          jsonCfg.FakeAPI.HTTPAddress,
			TokenSignKey:         jsonCfg.FakeAPI.TokenSignKey,
			TokenIssuer:          jsonCfg.FakeAPI.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.FakeAPI.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.FakeAPI.RefreshTokenDuration),
			RequestTimeout:       time.Duration(jsonCfg.FakeAPI.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
