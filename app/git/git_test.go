package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shelf/app/blog"
)

func testPost(id, title string) blog.Post {
	return blog.Post{ID: id, Title: title, Description: "desc", Content: "body\n```go\nx := 1\n```",
		Category: "books", Tags: []string{"go", "reading"}, Date: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Rating: 4, Source: "https://example.com/book"}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(Config{Path: filepath.Join(t.TempDir(), ".history")})
	require.NoError(t, err)
	return st
}

func commitCount(t *testing.T, st *Store) int {
	t.Helper()
	iter, err := st.repo.Log(&git.LogOptions{})
	require.NoError(t, err)
	defer iter.Close()
	n := 0
	for {
		if _, err := iter.Next(); err != nil {
			return n
		}
		n++
	}
}

func TestNew(t *testing.T) {
	t.Run("creates new repo", func(t *testing.T) {
		cfg := Config{Path: filepath.Join(t.TempDir(), ".history"), Branch: "master"}
		store, err := New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, store)

		_, err = os.Stat(filepath.Join(cfg.Path, ".git"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(cfg.Path, "posts", ".gitkeep"))
		require.NoError(t, err)
	})

	t.Run("opens existing repo", func(t *testing.T) {
		cfg := Config{Path: filepath.Join(t.TempDir(), ".history"), Branch: "master"}
		store1, err := New(cfg)
		require.NoError(t, err)
		require.NoError(t, store1.Commit(CommitRequest{Post: testPost("a", "A"), Operation: "create", Author: DefaultAuthor()}))

		store2, err := New(cfg)
		require.NoError(t, err)
		posts, err := store2.ReadAll()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "A", posts[0].Title)
	})

	t.Run("custom branch", func(t *testing.T) {
		cfg := Config{Path: filepath.Join(t.TempDir(), ".history"), Branch: "archive"}
		store, err := New(cfg)
		require.NoError(t, err)
		head, err := store.repo.Head()
		require.NoError(t, err)
		assert.Equal(t, "refs/heads/archive", head.Name().String())
	})

	t.Run("fails with empty path", func(t *testing.T) {
		_, err := New(Config{Path: "", Branch: "master"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path is required")
	})

	t.Run("uses default branch", func(t *testing.T) {
		store, err := New(Config{Path: filepath.Join(t.TempDir(), ".history")})
		require.NoError(t, err)
		assert.Equal(t, "master", store.cfg.Branch)
	})
}

func TestStore_Commit(t *testing.T) {
	t.Run("writes post as yaml", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Commit(CommitRequest{Post: testPost("go-book", "Go Book"), Operation: "create",
			Author: Author{Name: "admin", Email: "admin@shelf"}}))

		data, err := os.ReadFile(filepath.Join(store.cfg.Path, "posts", "go-book.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Go Book")
		assert.Contains(t, string(data), "source: https://example.com/book")
		assert.NotContains(t, string(data), "imageUrl", "empty optional fields omitted")
		assert.Equal(t, 2, commitCount(t, store))
	})

	t.Run("unchanged post makes no commit", func(t *testing.T) {
		store := newTestStore(t)
		req := CommitRequest{Post: testPost("go-book", "Go Book"), Operation: "update", Author: DefaultAuthor()}
		require.NoError(t, store.Commit(req))
		require.NoError(t, store.Commit(req))
		assert.Equal(t, 2, commitCount(t, store))
	})

	t.Run("default operation is update", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Commit(CommitRequest{Post: testPost("x", "X"), Author: DefaultAuthor()}))
		hist, err := store.History("x", 0)
		require.NoError(t, err)
		require.Len(t, hist, 1)
		assert.Equal(t, "update", hist[0].Operation)
	})

	tests := []struct {
		name, id, wantErr string
	}{
		{"empty id", "", "empty id"},
		{"nested path", "a/b", "path separator"},
		{"backslash", `a\b`, "path separator"},
		{"traversal", "..", "path traversal"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			err := store.Commit(CommitRequest{Post: blog.Post{ID: tc.id}, Author: DefaultAuthor()})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	t.Run("removes file and commits", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Commit(CommitRequest{Post: testPost("go-book", "Go Book"), Author: DefaultAuthor()}))
		require.NoError(t, store.Delete("go-book", Author{Name: "admin", Email: "admin@shelf"}))

		_, err := os.Stat(filepath.Join(store.cfg.Path, "posts", "go-book.yaml"))
		assert.True(t, os.IsNotExist(err))
		assert.Equal(t, 3, commitCount(t, store))

		hist, err := store.History("go-book", 0)
		require.NoError(t, err)
		require.Len(t, hist, 2)
		assert.Equal(t, "delete", hist[0].Operation)
		assert.Equal(t, "admin", hist[0].Author)
		assert.Nil(t, hist[0].Post)
		require.NotNil(t, hist[1].Post)
		assert.Equal(t, "Go Book", hist[1].Post.Title)
	})

	t.Run("missing post is a no-op", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Delete("nope", DefaultAuthor()))
		assert.Equal(t, 1, commitCount(t, store))
	})

	t.Run("invalid id", func(t *testing.T) {
		store := newTestStore(t)
		require.Error(t, store.Delete("../etc/passwd", DefaultAuthor()))
	})
}

func TestStore_History(t *testing.T) {
	store := newTestStore(t)
	for _, title := range []string{"v1", "v2", "v3"} {
		require.NoError(t, store.Commit(CommitRequest{Post: testPost("go-book", title), Author: DefaultAuthor()}))
	}
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("other", "other"), Author: DefaultAuthor()}))

	hist, err := store.History("go-book", 0)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, "v3", hist[0].Post.Title)
	assert.Equal(t, "v1", hist[2].Post.Title)
	assert.Len(t, hist[0].Hash, 7)
	assert.Equal(t, "shelf", hist[0].Author)
	assert.Equal(t, []string{"go", "reading"}, hist[0].Post.Tags)
	assert.True(t, hist[0].Post.Date.Equal(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))

	limited, err := store.History("go-book", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := store.History("never", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_GetRevision(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("go-book", "first"), Author: DefaultAuthor()}))
	first, err := store.Head()
	require.NoError(t, err)
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("go-book", "second"), Author: DefaultAuthor()}))

	p, err := store.GetRevision("go-book", first)
	require.NoError(t, err)
	assert.Equal(t, "first", p.Title)

	p, err = store.GetRevision("go-book", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "second", p.Title)

	_, err = store.GetRevision("go-book", "HEAD~5")
	require.Error(t, err)

	_, err = store.GetRevision("other", "HEAD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found at revision")
}

func TestStore_ReadAll(t *testing.T) {
	store := newTestStore(t)
	posts, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, posts)

	require.NoError(t, store.Commit(CommitRequest{Post: testPost("b", "B"), Author: DefaultAuthor()}))
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("a", "A"), Author: DefaultAuthor()}))
	require.NoError(t, os.WriteFile(filepath.Join(store.cfg.Path, "posts", "notes.txt"), []byte("x"), 0o600))

	posts, err = store.ReadAll()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "a", posts[0].ID)
	assert.Equal(t, "b", posts[1].ID)
	assert.Equal(t, testPost("a", "A"), posts[0])
}

func TestStore_ReadAllAt(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("a", "A"), Author: DefaultAuthor()}))
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("b", "B"), Author: DefaultAuthor()}))
	rev, err := store.Head()
	require.NoError(t, err)
	require.NoError(t, store.Commit(CommitRequest{Post: testPost("a", "A2"), Author: DefaultAuthor()}))
	require.NoError(t, store.Delete("b", DefaultAuthor()))

	posts, err := store.ReadAllAt(rev)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "A", posts[0].Title)
	assert.Equal(t, "b", posts[1].ID)

	posts, err = store.ReadAllAt("HEAD")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "A2", posts[0].Title)

	_, err = store.ReadAllAt("abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve revision")
}

func TestStore_PushPullNoRemote(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Push())
	require.NoError(t, store.Pull())
}

func TestStore_PushToBareRemote(t *testing.T) {
	remoteDir := filepath.Join(t.TempDir(), "remote.git")
	_, err := git.PlainInit(remoteDir, true)
	require.NoError(t, err)

	store := newTestStore(t)
	_, err = store.repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{remoteDir}})
	require.NoError(t, err)
	store.cfg.Remote = "origin"

	require.NoError(t, store.Commit(CommitRequest{Post: testPost("a", "A"), Author: DefaultAuthor()}))
	require.NoError(t, store.Push())
	require.NoError(t, store.Push(), "second push is up to date")

	remote, err := git.PlainOpen(remoteDir)
	require.NoError(t, err)
	ref, err := remote.Reference("refs/heads/master", true)
	require.NoError(t, err)
	head, err := store.repo.Head()
	require.NoError(t, err)
	assert.Equal(t, head.Hash(), ref.Hash())
}

func TestParseOperationFromCommit(t *testing.T) {
	tests := []struct{ msg, want string }{
		{"create a\n\noperation: create\npost: a", "create"},
		{"delete a", "delete"},
		{"", "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseOperationFromCommit(tc.msg))
	}
}
