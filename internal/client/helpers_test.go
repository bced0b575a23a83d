package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/jph/internal/http"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           int
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// RunGetTests executes get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client, context.Context, int) (*TResponse, error),
) {
	t.Helper()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.ExpectedPath, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)

				w.WriteHeader(tt.StatusCode)

				if tt.Response != nil {
					_ = json.NewEncoder(w).Encode(tt.Response)
				} else {
					_, _ = w.Write([]byte("{}"))
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := getFunc(client, context.Background(), tt.ID)

			if tt.WantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.ErrMessage)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.Response, result)
			}
		})
	}
}

// serveJSON starts a server answering every request with status and raw body.
func serveJSON(t *testing.T, expectedPath string, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}
