package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/server/api/mocks"
)

var testPosts = []blog.Post{
	{ID: "go-book", Title: "The Go Programming Language", Description: "classic", Content: "read it",
		Category: "books", Tags: []string{"go"}, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Rating: 5},
	{ID: "rust-talk", Title: "Rust Talk", Description: "video", Content: "watch it",
		Category: "videos", Tags: []string{"rust"}, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Rating: 4},
}

var testCategories = []blog.Category{
	{ID: "books", Name: "Books", Color: "blue"},
	{ID: "videos", Name: "Videos", Color: "red"},
}

func newMockStore() *mocks.StoreMock {
	return &mocks.StoreMock{
		ListPostsFunc: func(context.Context) ([]blog.Post, error) { return testPosts, nil },
		GetPostFunc: func(_ context.Context, id string) (blog.Post, error) {
			if p, ok := blog.FindPost(testPosts, id); ok {
				return p, nil
			}
			return blog.Post{}, errors.New("not found")
		},
		ListCategoriesFunc: func(context.Context) ([]blog.Category, error) { return testCategories, nil },
		GetCategoryFunc: func(_ context.Context, id string) (blog.Category, error) {
			if c, ok := blog.FindCategory(testCategories, id); ok {
				return c, nil
			}
			return blog.Category{}, errors.New("not found")
		},
		ListTagsFunc:     func(context.Context) ([]blog.Tag, error) { return blog.TagCounts(testPosts), nil },
		SavePostFunc:     func(context.Context, blog.Post) error { return nil },
		DeletePostFunc:   func(context.Context, string) error { return nil },
		SaveCategoryFunc: func(context.Context, blog.Category) error { return nil },
	}
}

func newTestServer(t *testing.T, st Store, cfg Config) *Server {
	t.Helper()
	if cfg.Version == "" {
		cfg.Version = "test"
	}
	srv, err := New(st, nil, nil, cfg)
	require.NoError(t, err)
	return srv
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, newMockStore(), Config{Title: "Shelf"})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	tests := []struct {
		name     string
		path     string
		wantCode int
		contains string
	}{
		{"ping", "/ping", http.StatusOK, "pong"},
		{"index", "/", http.StatusOK, "The Go Programming Language"},
		{"article", "/article/rust-talk", http.StatusOK, "Rust Talk"},
		{"missing article", "/article/nope", http.StatusNotFound, "404"},
		{"api posts", "/api/v1/posts", http.StatusOK, `"go-book"`},
		{"api post", "/api/v1/posts/go-book", http.StatusOK, `"rating":5`},
		{"api categories", "/api/v1/categories", http.StatusOK, `"videos"`},
		{"theme state", "/web/theme", http.StatusOK, "--color-background"},
		{"highlight css", "/web/highlight/dark.css", http.StatusOK, ".chroma"},
		{"static", "/static/css/style.css", http.StatusOK, ""},
		{"unknown", "/nope/nope", http.StatusNotFound, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantCode, resp.StatusCode)
			if tc.contains != "" {
				body := readBody(t, resp)
				assert.Contains(t, body, tc.contains)
			}
		})
	}

	t.Run("app info headers", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "shelf", resp.Header.Get("App-Name"))
		assert.Equal(t, "test", resp.Header.Get("App-Version"))
	})
}

func TestServer_AdminRoutes(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	st := newMockStore()
	srv := newTestServer(t, st, Config{AdminUser: "admin", AdminPasswordHash: string(hash)})

	t.Run("delete without credentials rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/go-book", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		assert.Contains(t, []int{http.StatusUnauthorized, http.StatusForbidden}, rec.Code)
		assert.Empty(t, st.DeletePostCalls())
	})

	t.Run("delete with credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/go-book", http.NoBody)
		req.SetBasicAuth("admin", "secret")
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, st.DeletePostCalls(), 1)
		assert.Equal(t, "go-book", st.DeletePostCalls()[0].Id)
	})
}

func TestServer_BodySizeLimit(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	st := newMockStore()
	srv := newTestServer(t, st, Config{AdminPasswordHash: string(hash), BodySizeLimit: 64})

	body := fmt.Sprintf(`{"title":"big","content":%q,"category":"books","rating":3}`, strings.Repeat("x", 200))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", strings.NewReader(body))
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, st.SavePostCalls())
}

func TestServer_BaseURL(t *testing.T) {
	srv := newTestServer(t, newMockStore(), Config{BaseURL: "/blog"})
	h := srv.handler()

	t.Run("redirects bare base", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/blog/", rec.Header().Get("Location"))
	})

	t.Run("serves under base", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog/api/v1/posts/go-book", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pages link with base", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog/", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/blog/article/go-book")
	})

	t.Run("outside base is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := newTestServer(t, newMockStore(), Config{})
		req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp healthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "test", resp.Version)
		assert.Equal(t, 2, resp.Posts)
		assert.Equal(t, 2, resp.Categories)
		assert.Equal(t, 2, resp.Tags)
		assert.Empty(t, resp.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		st := newMockStore()
		st.ListCategoriesFunc = func(context.Context) ([]blog.Category, error) { return nil, errors.New("db is gone") }
		srv := newTestServer(t, st, Config{})
		req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp healthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "db is gone", resp.Error)
	})
}

func TestServer_Defaults(t *testing.T) {
	srv := newTestServer(t, newMockStore(), Config{})
	assert.Equal(t, int64(1024*1024), srv.bodySizeLimit())
	assert.Equal(t, int64(1000), srv.requestsPerSec())
	assert.Equal(t, int64(5), srv.adminConcurrency())

	srv = newTestServer(t, newMockStore(), Config{BodySizeLimit: 10, RequestsPerSec: 20, AdminConcurrency: 2})
	assert.Equal(t, int64(10), srv.bodySizeLimit())
	assert.Equal(t, int64(20), srv.requestsPerSec())
	assert.Equal(t, int64(2), srv.adminConcurrency())
}

func TestServer_Run(t *testing.T) {
	port := freePort(t)
	srv := newTestServer(t, newMockStore(), Config{Address: fmt.Sprintf("127.0.0.1:%d", port),
		ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second, ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
