package web_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/jph/internal/web"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/fivetwenty-io/jph/pkg/jphclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const postsJSON = `[
  {"userId": 1, "id": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
  {"userId": 1, "id": 2, "title": "qui est esse", "body": "est rerum tempore <b>vitae</b>"},
  {"userId": 2, "id": 3, "title": "ea molestias", "body": "et iusto sed quo iure"}
]`

const usersJSON = `[
  {"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
   "phone": "1-770-736-8031", "website": "hildegard.org", "company": {"name": "Romaguera-Crona"}},
  {"id": 2, "name": "Ervin Howell", "username": "Antonette", "email": "Shanna@melissa.tv",
   "phone": "010-692-6593", "website": "anastasia.net", "company": {"name": "Deckow-Crist"}}
]`

func newUpstream(t *testing.T, status int) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if status != http.StatusOK {
			writer.WriteHeader(status)

			return
		}

		writer.Header().Set("Content-Type", "application/json")

		switch request.URL.Path {
		case "/posts":
			_, _ = writer.Write([]byte(postsJSON))
		case "/users":
			_, _ = writer.Write([]byte(usersJSON))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	return upstream
}

func newServer(t *testing.T, status int, logger *zap.Logger) *web.Server {
	t.Helper()

	upstream := newUpstream(t, status)

	client, err := jphclient.New(context.Background(), &jph.Config{APIEndpoint: upstream.URL})
	require.NoError(t, err)

	srv, err := web.New(client, web.Options{PostsLimit: -1, UsersLimit: -1, Logger: logger})
	require.NoError(t, err)

	return srv
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestNew_RequiresClient(t *testing.T) {
	t.Parallel()

	_, err := web.New(nil, web.Options{})
	require.ErrorIs(t, err, web.ErrClientRequired)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	resp := get(t, newServer(t, http.StatusOK, nil).Routes(), "/healthz")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", resp.Body.String())
}

func TestPostsPage(t *testing.T) {
	t.Parallel()

	resp := get(t, newServer(t, http.StatusOK, nil).Routes(), "/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header().Get("Content-Type"))

	body := resp.Body.String()
	assert.Contains(t, body, "<h1>Blog Posts</h1>")
	assert.Contains(t, body, "Fetched from JSONPlaceholder API")
	assert.Contains(t, body, "Displaying 3 items")
	assert.Contains(t, body, `id="item-1"`)
	assert.Contains(t, body, `id="item-3"`)
	assert.Contains(t, body, "Post ID: 2")
	assert.Contains(t, body, "User ID: 2")
	assert.Contains(t, body, `<a href="/" class="active" aria-current="page">Posts</a>`)
	assert.Contains(t, body, "&lt;b&gt;vitae&lt;/b&gt;")
	assert.NotContains(t, body, "Clear search")
}

func TestPostsPage_Search(t *testing.T) {
	t.Parallel()

	handler := newServer(t, http.StatusOK, nil).Routes()

	t.Run("matches body case-insensitively", func(t *testing.T) {
		t.Parallel()

		body := get(t, handler, "/?q=RERUM").Body.String()
		assert.Contains(t, body, "Displaying 1 item")
		assert.Contains(t, body, `id="item-2"`)
		assert.NotContains(t, body, `id="item-1"`)
		assert.Contains(t, body, `value="RERUM"`)
		assert.Contains(t, body, `<a href="/" aria-label="Clear search">Clear search</a>`)
	})

	t.Run("no matches shows empty message", func(t *testing.T) {
		t.Parallel()

		body := get(t, handler, "/?q=zzz").Body.String()
		assert.Contains(t, body, `<p class="empty">No posts available</p>`)
		assert.NotContains(t, body, `<ul class="list">`)
	})
}

func TestUsersPage(t *testing.T) {
	t.Parallel()

	handler := newServer(t, http.StatusOK, nil).Routes()

	body := get(t, handler, "/users").Body.String()
	assert.Contains(t, body, "<h1>User Directory</h1>")
	assert.Contains(t, body, "Browse our community members")
	assert.Contains(t, body, "@Bret")
	assert.Contains(t, body, `href="mailto:Sincere@april.biz"`)
	assert.Contains(t, body, `href="https://hildegard.org"`)
	assert.Contains(t, body, "Works at Romaguera-Crona")
	assert.Contains(t, body, `<a href="/users" class="active" aria-current="page">Users</a>`)

	body = get(t, handler, "/users?q=deckow").Body.String()
	assert.Contains(t, body, "Ervin Howell")
	assert.NotContains(t, body, "Leanne Graham")
}

func TestPage_UpstreamError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	handler := newServer(t, http.StatusNotFound, zap.New(core)).Routes()

	resp := get(t, handler, "/users?q=bret")
	assert.Equal(t, http.StatusBadGateway, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, "Oops! Something went wrong")
	assert.Contains(t, body, "404")
	assert.Contains(t, body, `<a href="/users?q=bret">Try Again</a>`)
	assert.NotContains(t, body, `role="search"`)

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, zap.ErrorLevel, completed[0].Level)
	assert.EqualValues(t, http.StatusBadGateway, completed[0].ContextMap()["status"])
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	srv := newServer(t, http.StatusOK, nil)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/healthz")
		if err != nil {
			return false
		}

		defer func() { _ = resp.Body.Close() }()

		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestTemplatesEscapeSearchTerm(t *testing.T) {
	t.Parallel()

	body := get(t, newServer(t, http.StatusOK, nil).Routes(), `/?q=%22%3E%3Cscript%3E`).Body.String()
	assert.False(t, strings.Contains(body, `"><script>`))
}
