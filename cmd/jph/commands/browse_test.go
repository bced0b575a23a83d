package commands

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse_SearchAndClear(t *testing.T) {
	api := newUpstream(t, 0, 0)
	useAPI(t, api.server.URL, constants.FormatTable)

	stdout, _, err := execute(NewPostsCommand(), "lorem\n:clear\n:quit\nignored\n", "browse")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Blog Posts [Loading]")
	assert.Contains(t, stdout, "Loading...")
	assert.Contains(t, stdout, "Blog Posts [Success]")
	assert.Contains(t, stdout, `Search: "lorem"`)
	assert.Contains(t, stdout, "Displaying 2 items")
	assert.Equal(t, 2, strings.Count(stdout, "Displaying 10 items"))
	assert.NotContains(t, stdout, `Search: "ignored"`)

	// filtering never goes back to the network
	assert.Equal(t, int32(1), api.requests.Load())
}

func TestBrowse_RetryAfterError(t *testing.T) {
	api := newUpstream(t, 1, http.StatusServiceUnavailable)
	useAPI(t, api.server.URL, constants.FormatTable)

	stdout, _, err := execute(NewUsersCommand(), ":retry\n", "browse")
	require.NoError(t, err)

	errorAt := strings.Index(stdout, "User Directory [Error]")
	successAt := strings.Index(stdout, "User Directory [Success]")

	require.NotEqual(t, -1, errorAt)
	require.NotEqual(t, -1, successAt)
	assert.Less(t, errorAt, successAt)
	assert.Contains(t, stdout, "Oops! Something went wrong")
	assert.Contains(t, stdout, "503")
	assert.Contains(t, stdout, "Type :retry to try again.")
	assert.Contains(t, stdout, "Displaying 3 items")
	assert.Equal(t, int32(2), api.requests.Load())
}

func TestBrowse_SearchWhileFailed(t *testing.T) {
	api := newUpstream(t, 1, http.StatusInternalServerError)
	useAPI(t, api.server.URL, constants.FormatTable)

	stdout, _, err := execute(NewPostsCommand(), "title\n", "browse")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(stdout, "Oops! Something went wrong"))
	assert.NotContains(t, stdout, "No posts available")
}
