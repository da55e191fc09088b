package platform

import (
	"os"

	"github.com/pkg/errors"

	"github.com/tadreeb/tadreeb-api/internal/client/http"
)

// PlatformClient is a typed client for the training-platform REST API.
// The platform owns all durable state (programs, cohorts, promo codes,
// registrations, payments); this client only reads snapshots and
// submits commands.
type PlatformClient struct {
	apiKey     string
	httpClient *http.HTTPClient
}

// NewPlatformClient creates a client from the PLATFORM_API_URL and
// PLATFORM_API_KEY environment variables.
func NewPlatformClient() (*PlatformClient, error) {
	baseURL := os.Getenv("PLATFORM_API_URL")
	if baseURL == "" {
		return nil, errors.New("PLATFORM_API_URL environment variable is required")
	}

	return NewPlatformClientWithBaseURL(baseURL, os.Getenv("PLATFORM_API_KEY")), nil
}

// NewPlatformClientWithBaseURL creates a client against an explicit
// base URL. Used directly by tests.
func NewPlatformClientWithBaseURL(baseURL, apiKey string) *PlatformClient {
	return &PlatformClient{
		apiKey: apiKey,
		httpClient: http.NewHTTPClient(
			http.WithBaseURL(baseURL),
		),
	}
}

// apiKeyOptions returns the request options every platform call carries.
func (c *PlatformClient) apiKeyOptions() []http.RequestOption {
	if c.apiKey == "" {
		return nil
	}
	return []http.RequestOption{http.WithHeader("X-Api-Key", c.apiKey)}
}
