package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly; the
// server adapter configures the base URL and request timeout on top of
// the defaults.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://localhost:8080").SetTimeout(10 * time.Second)
//	resp, err := client.R().Get("/api/v1/storage/manifest")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// default-configured underlying resty.Client.
//
// Each call returns an independent client with its own configuration,
// connection pool, and state, so two adapters never share a base URL.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
