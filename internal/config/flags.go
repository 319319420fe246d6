package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a hospital API base URL
//	-d database DSN
//	-c/-config json file path with configs
//	-env-file .env file path
//	-log-file client log file path
//	-request-timeout per-call timeout (e.g., "15s")
//	-refresh-timeout token refresh timeout (e.g., "10s")
//	-rate-limit outgoing requests per second
//	-rate-burst outgoing request burst
//	-token-check-interval token refresh job interval
//	-token-refresh-leeway refresh the access token this long before expiry
//	-listen fake API listen address in format [host]:[port]
//	-token-sign-key fake API token signing key
//	-access-token-duration fake API access token lifetime
//	-refresh-token-duration fake API refresh token lifetime
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var envFilePath string
	var logFile string
	var requestTimeout, refreshTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var tokenCheckInterval, tokenRefreshLeeway time.Duration
	var tokenSignKey string
	var accessTokenDuration, refreshTokenDuration time.Duration

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&adapterAddress, "a", "", "Hospital API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", ".env file path")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&refreshTimeout, "refresh-timeout", 0, "Token refresh timeout (e.g., 10s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outgoing requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Outgoing request burst")
	fs.DurationVar(&tokenCheckInterval, "token-check-interval", 0, "Token refresh job interval")
	fs.DurationVar(&tokenRefreshLeeway, "token-refresh-leeway", 0, "Refresh leeway before token expiry")
	fs.Var(&listenAddress, "listen", "Fake API listen address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Fake API token signing key")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Fake API access token lifetime")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Fake API refresh token lifetime")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			RefreshTimeout: refreshTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Workers: Workers{
			TokenCheckInterval: tokenCheckInterval,
			TokenRefreshLeeway: tokenRefreshLeeway,
		},
		FakeAPI: FakeAPI{
			HTTPAddress:          listenAddress.String(),
			TokenSignKey:         tokenSignKey,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
