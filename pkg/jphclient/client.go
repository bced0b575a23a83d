package jphclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/jph/internal/client"
	"github.com/fivetwenty-io/jph/pkg/jph"
)

// New creates a new API client.
func New(ctx context.Context, config *jph.Config) (jph.Client, error) {
	if config == nil {
		return nil, jph.ErrConfigRequired
	}

	apiEndpoint, err := NormalizeEndpoint(config.APIEndpoint)
	if err != nil {
		return nil, err
	}

	config.APIEndpoint = apiEndpoint

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NormalizeEndpoint trims a trailing slash and adds "https://" when the
// endpoint has no scheme.
func NormalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", jph.ErrAPIEndpointRequired
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing API endpoint: %w", err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", jph.ErrNoHostInURL, endpoint)
	}

	return endpoint, nil
}
