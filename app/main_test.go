package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/shelf/app/blog"
)

const testSeed = `
categories:
  - id: books
    name: Books
    color: blue
  - id: videos
    name: Videos
    color: red
posts:
  - id: go-book
    title: The Go Programming Language
    description: a classic
    content: read it
    category: books
    tags: [go, reading]
    date: 2024-01-15
    rating: 5
  - id: rust-talk
    title: Rust Talk
    description: a talk
    content: watch it
    category: videos
    tags: [rust]
    date: 2024-02-01
    rating: 4
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := &ServerCmd{ctx: ctx}
	cmd.DB = filepath.Join(tmpDir, "test.db")
	cmd.Git.Enabled = true
	cmd.Git.Path = filepath.Join(tmpDir, ".history")
	cmd.Git.Branch = "master"
	cmd.Server.Address = "127.0.0.1:18484" // use non-standard port to avoid conflicts
	cmd.Server.ReadTimeout = 5 * time.Second
	cmd.Server.ShutdownTimeout = time.Second
	cmd.Server.CacheSize = 100
	cmd.Server.PageSize = 10
	cmd.Admin.User = "admin"
	cmd.Admin.PasswordHash = string(hash)
	cmd.Seed.File = writeSeed(t, testSeed)
	cmd.Seed.Verify = true

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Execute(nil)
	}()

	waitForServer(t, "http://127.0.0.1:18484/ping")
	client := &http.Client{Timeout: 5 * time.Second}
	base := "http://127.0.0.1:18484"

	t.Run("seeded posts listed", func(t *testing.T) {
		resp, err := client.Get(base + "/api/v1/posts")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"go-book"`)
		assert.Contains(t, string(body), `"rust-talk"`)
	})

	t.Run("index page rendered", func(t *testing.T) {
		resp, err := client.Get(base + "/?category=videos")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Rust Talk")
		assert.NotContains(t, string(body), "The Go Programming Language")
	})

	t.Run("admin write is archived", func(t *testing.T) {
		post := blog.Post{ID: "sqlite-post", Title: "SQLite Notes", Description: "db", Content: "```sql\nselect 1;\n```",
			Category: "books", Tags: []string{"sql"}, Rating: 3}
		data, err := json.Marshal(post)
		require.NoError(t, err)
		req, err := http.NewRequest(http.MethodPost, base+"/api/v1/posts", bytes.NewReader(data))
		require.NoError(t, err)
		req.SetBasicAuth("admin", "secret")
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = client.Get(base + "/api/v1/posts/sqlite-post/history")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"create"`)

		resp, err = client.Get(base + "/article/sqlite-post")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("health", func(t *testing.T) {
		resp, err := client.Get(base + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestIntegration_WithBaseURL(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := &ServerCmd{ctx: ctx}
	cmd.DB = filepath.Join(t.TempDir(), "test.db")
	cmd.Server.Address = "127.0.0.1:18488"
	cmd.Server.ReadTimeout = 5 * time.Second
	cmd.Server.ShutdownTimeout = time.Second
	cmd.Server.BaseURL = "/blog/"

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Execute(nil)
	}()

	waitForServer(t, "http://127.0.0.1:18488/blog/ping")
	client := &http.Client{Timeout: 5 * time.Second}

	t.Run("api via base URL", func(t *testing.T) {
		resp, err := client.Get("http://127.0.0.1:18488/blog/api/v1/posts")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("root path returns 404", func(t *testing.T) {
		resp, err := client.Get("http://127.0.0.1:18488/api/v1/posts")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 100 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond, "server did not start")
}

func TestSetupLogs(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		w := setupLogs(false)
		assert.NotNil(t, w)
	})

	t.Run("debug mode", func(t *testing.T) {
		w := setupLogs(true)
		assert.NotNil(t, w)
	})
}

func TestSignals(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// verify signals() doesn't panic
	require.NotPanics(t, func() {
		signals(cancel)
	})
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"valid", "/blog", "/blog", false},
		{"valid nested", "/app/blog", "/app/blog", false},
		{"strips trailing slash", "/blog/", "/blog", false},
		{"root only", "/", "", false},
		{"missing leading slash", "blog", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
