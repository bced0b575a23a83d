package jph

import (
	"context"
	"time"
)

// DefaultAPIEndpoint is the public JSONPlaceholder service.
const DefaultAPIEndpoint = "https://jsonplaceholder.typicode.com"

// PostsClient provides access to the /posts collection.
type PostsClient interface {
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int) (*Post, error)
}

// UsersClient provides access to the /users collection.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (*User, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Posts() PostsClient
	Users() UsersClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a jph.Client.
//
// # Timeouts and retries
//
// A zero HTTPTimeout means requests wait until the network stack resolves
// or fails them; callers that want a bound should pass a context with a
// deadline. RetryMax defaults to zero: a failed list request surfaces
// immediately so the user can decide to retry.
type Config struct {
	// APIEndpoint: base URL of the API (e.g., "https://jsonplaceholder.typicode.com").
	// jphclient.New trims a trailing slash and adds "https://" if no scheme is present.
	APIEndpoint string

	// HTTPTimeout: optional per-request timeout. Zero disables it.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of automatic retries for transient failures
	// (>=500, 429 and connection errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
