package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/jph/internal/http"
	"github.com/fivetwenty-io/jph/pkg/jph"
)

const usersPath = "/users"

// UsersClient implements jph.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements jph.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]jph.User, error) {
	var users []jph.User

	err := c.httpClient.GetJSON(ctx, usersPath, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	if users == nil {
		users = []jph.User{}
	}

	return users, nil
}

// Get implements jph.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id int) (*jph.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", jph.ErrInvalidID, id)
	}

	var user jph.User

	err := c.httpClient.GetJSON(ctx, usersPath+"/"+strconv.Itoa(id), nil, &user)
	if err != nil {
		if jph.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d: %w", jph.ErrUserNotFound, id, err)
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &user, nil
}
