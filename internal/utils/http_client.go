package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. Requests built from
// it accept JSON responses and carry the given User-Agent.
//
// Resty's own retry and timeout features are left disabled: retries and
// per-call deadlines are owned by the caller.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://hospital.example.com/api", "companion/1.0")
//	resp, err := client.R().SetContext(ctx).Get("/patients/home/")
func NewHTTPClient(baseURL, userAgent string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
