package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/jph/internal/http"
	"github.com/fivetwenty-io/jph/pkg/jph"
)

const postsPath = "/posts"

// PostsClient implements jph.PostsClient.
type PostsClient struct {
	httpClient *http.Client
}

// NewPostsClient creates a new posts client.
func NewPostsClient(httpClient *http.Client) *PostsClient {
	return &PostsClient{
		httpClient: httpClient,
	}
}

// List implements jph.PostsClient.List.
func (c *PostsClient) List(ctx context.Context) ([]jph.Post, error) {
	var posts []jph.Post

	err := c.httpClient.GetJSON(ctx, postsPath, nil, &posts)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	if posts == nil {
		posts = []jph.Post{}
	}

	return posts, nil
}

// Get implements jph.PostsClient.Get.
func (c *PostsClient) Get(ctx context.Context, id int) (*jph.Post, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", jph.ErrInvalidID, id)
	}

	var post jph.Post

	err := c.httpClient.GetJSON(ctx, postsPath+"/"+strconv.Itoa(id), nil, &post)
	if err != nil {
		if jph.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d: %w", jph.ErrPostNotFound, id, err)
		}

		return nil, fmt.Errorf("getting post: %w", err)
	}

	return &post, nil
}
