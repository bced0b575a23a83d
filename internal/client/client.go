package client

import (
	"context"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/internal/http"
	"github.com/fivetwenty-io/jph/pkg/jph"
)

// Client implements the jph.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     jph.Logger

	// Resource clients
	posts jph.PostsClient
	users jph.UsersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *jph.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client.
func New(_ context.Context, config *jph.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, jph.ErrAPIEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.posts = NewPostsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
}

// BaseURL returns the API endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Posts implements jph.Client.Posts.
func (c *Client) Posts() jph.PostsClient {
	return c.posts
}

// Users implements jph.Client.Users.
func (c *Client) Users() jph.UsersClient {
	return c.users
}
