package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/git"
	"github.com/umputun/shelf/app/store"
)

func TestServerCmd_Execute(t *testing.T) {
	tmpDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	cmd := &ServerCmd{ctx: ctx}
	cmd.DB = filepath.Join(tmpDir, "test.db")
	cmd.Server.Address = "127.0.0.1:18490"
	cmd.Server.ReadTimeout = 5 * time.Second
	cmd.Server.ShutdownTimeout = time.Second

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Execute(nil)
	}()

	// wait for server to start
	waitForServer(t, "http://127.0.0.1:18490/ping")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://127.0.0.1:18490/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// shutdown
	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServerCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(cmd *ServerCmd, dir string)
		wantErr string
	}{
		{"invalid db", func(cmd *ServerCmd, _ string) { cmd.DB = "/nonexistent/path/to/db.db" },
			"failed to initialize store"},
		{"invalid base url", func(cmd *ServerCmd, _ string) { cmd.Server.BaseURL = "blog" }, "invalid base URL"},
		{"missing seed", func(cmd *ServerCmd, dir string) { cmd.Seed.File = filepath.Join(dir, "nope.yaml") },
			"failed to import seed"},
		{"seed fails schema", func(cmd *ServerCmd, _ string) {
			cmd.Seed.File = writeSeed(t, "posts:\n  - id: x\n    title: X\n    category: books\n    rating: 9\n")
			cmd.Seed.Verify = true
		}, "is invalid"},
		{"empty git path", func(cmd *ServerCmd, _ string) {
			cmd.Git.Enabled = true
			cmd.Git.Path = ""
		}, "failed to initialize git store"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			cmd := &ServerCmd{}
			cmd.DB = filepath.Join(dir, "test.db")
			cmd.Server.Address = "127.0.0.1:18491"
			tc.setup(cmd, dir)

			err := cmd.run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestImportCmd_Execute(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cmd := &ImportCmd{File: writeSeed(t, testSeed), Verify: true}
	cmd.DB = dbPath
	require.NoError(t, cmd.Execute(nil))

	st, err := store.New(dbPath)
	require.NoError(t, err)
	defer st.Close()

	posts, err := st.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "rust-talk", posts[0].ID, "newest first")

	cats, err := st.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 2)

	t.Run("invalid file rejected with verify", func(t *testing.T) {
		bad := &ImportCmd{File: writeSeed(t, "posts: [{id: x}]"), Verify: true}
		bad.DB = dbPath
		err := bad.Execute(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is invalid")
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		bad := &ImportCmd{File: path}
		bad.DB = dbPath
		err := bad.Execute(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported seed format")
	})
}

func TestRestoreCmd_Execute(t *testing.T) {
	tmpDir := t.TempDir()
	gitPath := filepath.Join(tmpDir, ".history")
	dbPath := filepath.Join(tmpDir, "test.db")

	gitStore, err := git.New(git.Config{Path: gitPath, Branch: "master"})
	require.NoError(t, err)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []blog.Post{
		{ID: "go-book", Title: "Go Book", Category: "books", Tags: []string{"go"}, Date: day, Rating: 5},
		{ID: "deep-dive", Title: "Deep Dive", Category: "long-reads", Tags: []string{}, Date: day, Rating: 4},
	} {
		require.NoError(t, gitStore.Commit(git.CommitRequest{Post: p, Operation: "create", Author: git.DefaultAuthor()}))
	}
	rev, err := gitStore.Head()
	require.NoError(t, err)
	require.NoError(t, gitStore.Delete("deep-dive", git.DefaultAuthor()))

	// database holds a post the archive doesn't know
	st, err := store.New(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.SaveCategory(context.Background(), blog.Category{ID: "books", Name: "Books"}))
	require.NoError(t, st.SavePost(context.Background(), blog.Post{ID: "stray", Title: "Stray", Category: "books",
		Date: day, Rating: 1}))
	require.NoError(t, st.Close())

	cmd := &RestoreCmd{Rev: rev}
	cmd.DB = dbPath
	cmd.Git.Path = gitPath
	cmd.Git.Branch = "master"
	require.NoError(t, cmd.Execute(nil))

	st, err = store.New(dbPath)
	require.NoError(t, err)
	defer st.Close()

	posts, err := st.ListPosts(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"go-book", "deep-dive"}, ids)

	cat, err := st.GetCategory(context.Background(), "long-reads")
	require.NoError(t, err)
	assert.Equal(t, "Long Reads", cat.Name)
}

func TestRestoreCmd_Execute_InvalidRevision(t *testing.T) {
	tmpDir := t.TempDir()
	cmd := &RestoreCmd{Rev: "abc123"}
	cmd.DB = filepath.Join(tmpDir, "test.db")
	cmd.Git.Path = filepath.Join(tmpDir, ".history")
	cmd.Git.Branch = "master"

	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read posts at revision abc123")
}

func TestSchemaCmd_Execute(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.json")
	cmd := &SchemaCmd{Output: out}
	require.NoError(t, cmd.Execute(nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Contains(t, string(data), "Shelf Seed Document")
	assert.Contains(t, string(data), "personalThoughts")
}
