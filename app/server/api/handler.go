// Package api provides HTTP handlers for the JSON API.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/git"
	"github.com/umputun/shelf/app/server/internal"
	"github.com/umputun/shelf/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/snippetvalidator.go -pkg mocks -skip-ensure -fmt goimports . SnippetValidator
//go:generate moq -out mocks/historyservice.go -pkg mocks -skip-ensure -fmt goimports . HistoryService

// Store defines the storage operations the API needs.
type Store interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	GetPost(ctx context.Context, id string) (blog.Post, error)
	SavePost(ctx context.Context, p blog.Post) error
	DeletePost(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]blog.Category, error)
	GetCategory(ctx context.Context, id string) (blog.Category, error)
	SaveCategory(ctx context.Context, c blog.Category) error
	ListTags(ctx context.Context) ([]blog.Tag, error)
}

// SnippetValidator checks the fenced code blocks of a post.
type SnippetValidator interface {
	CheckPost(p blog.Post) error
}

// HistoryService defines the post archive operations.
type HistoryService interface {
	Commit(req git.CommitRequest) error
	Delete(id string, author git.Author) error
	History(id string, limit int) ([]git.Revision, error)
}

// Admin holds the credentials for the write endpoints, an empty PasswordHash disables them.
type Admin struct {
	User         string
	PasswordHash string // bcrypt hash
}

// Enabled reports whether admin endpoints are registered.
func (a Admin) Enabled() bool { return a.PasswordHash != "" }

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	store     Store
	validator SnippetValidator
	history   HistoryService
	admin     Admin
	now       func() time.Time
}

// New creates a new API handler. sv and hs are optional, nil disables snippet checks and the archive.
func New(st Store, sv SnippetValidator, hs HistoryService, admin Admin) *Handler {
	if admin.User == "" {
		admin.User = "admin"
	}
	return &Handler{store: st, validator: sv, history: hs, admin: admin, now: time.Now}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /posts", h.handleListPosts)
	r.HandleFunc("GET /posts/{id}", h.handleGetPost)
	r.HandleFunc("GET /posts/{id}/related", h.handleRelated)
	r.HandleFunc("GET /posts/{id}/history", h.handleHistory)
	r.HandleFunc("GET /featured", h.handleFeatured)
	r.HandleFunc("GET /recent", h.handleRecent)
	r.HandleFunc("GET /search", h.handleSearch)
	r.HandleFunc("GET /categories", h.handleListCategories)
	r.HandleFunc("GET /categories/{id}", h.handleGetCategory)
	r.HandleFunc("GET /tags", h.handleListTags)
}

// RegisterAdmin registers the write endpoints behind basic auth when admin is enabled.
// Extra middlewares, e.g. a stricter throttle, wrap the group.
func (h *Handler) RegisterAdmin(r *routegroup.Bundle, mws ...func(http.Handler) http.Handler) {
	if !h.admin.Enabled() {
		log.Printf("[INFO] admin api disabled, no password hash set")
		return
	}
	r.Group().Route(func(ar *routegroup.Bundle) {
		for _, mw := range mws {
			ar.Use(mw)
		}
		ar.Use(rest.BasicAuth(h.checkAdmin))
		ar.HandleFunc("POST /posts", h.handleCreatePost)
		ar.HandleFunc("PUT /posts/{id}", h.handleUpdatePost)
		ar.HandleFunc("DELETE /posts/{id}", h.handleDeletePost)
		ar.HandleFunc("PUT /categories/{id}", h.handleSaveCategory)
	})
}

// postList is the paginated list response.
type postList struct {
	Posts []blog.Post `json:"posts"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// handleListPosts returns posts matching the query filters.
// GET /api/v1/posts?category=&tag=&min_rating=&q=&sort=&order=&page=&limit=
func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	q := r.URL.Query()
	filtered := blog.FilterPosts(posts, internal.ParseFilters(q))

	page, limit := internal.ParsePositive(q, "page", 1), internal.ParsePositive(q, "limit", 0)
	res := postList{Posts: filtered, Total: len(filtered), Page: page, Limit: limit}
	if limit > 0 {
		start := len(filtered)
		if page-1 <= len(filtered)/limit {
			start = min((page-1)*limit, len(filtered))
		}
		res.Posts = filtered[start : start+min(limit, len(filtered)-start)]
	}
	if res.Posts == nil {
		res.Posts = []blog.Post{}
	}
	log.Printf("[DEBUG] list posts: %d of %d match", len(filtered), len(posts))
	rest.RenderJSON(w, res)
}

// handleGetPost returns a single post.
// GET /api/v1/posts/{id}
func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	rest.RenderJSON(w, p)
}

// handleRelated returns posts sharing the category or tags of a post.
// GET /api/v1/posts/{id}/related?limit=
func (h *Handler) handleRelated(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	rest.RenderJSON(w, nonNil(blog.RelatedPosts(posts, p.ID, internal.ParsePositive(r.URL.Query(), "limit", 0))))
}

// handleHistory returns the archived revisions of a post.
// GET /api/v1/posts/{id}/history?limit=
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, nil, "post history is not enabled")
		return
	}
	id := internal.NormalizeID(r.PathValue("id"))
	revs, err := h.history.History(id, internal.ParsePositive(r.URL.Query(), "limit", 0))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get history")
		return
	}
	if len(revs) == 0 {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, nil, "no history for post")
		return
	}
	rest.RenderJSON(w, revs)
}

// handleFeatured returns the top rated posts.
// GET /api/v1/featured?limit=
func (h *Handler) handleFeatured(w http.ResponseWriter, r *http.Request) {
	h.renderPosts(w, r, func(posts []blog.Post, limit int) []blog.Post { return blog.FeaturedPosts(posts, limit) })
}

// handleRecent returns the newest posts.
// GET /api/v1/recent?limit=
func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	h.renderPosts(w, r, func(posts []blog.Post, limit int) []blog.Post { return blog.RecentPosts(posts, limit) })
}

// handleSearch returns posts matching q in title, description, content or tags.
// GET /api/v1/search?q=
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, nil, "query is required")
		return
	}
	h.renderPosts(w, r, func(posts []blog.Post, _ int) []blog.Post { return blog.SearchPosts(posts, query) })
}

// renderPosts loads all posts and renders what sel picks from them.
func (h *Handler) renderPosts(w http.ResponseWriter, r *http.Request, sel func([]blog.Post, int) []blog.Post) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	rest.RenderJSON(w, nonNil(sel(posts, internal.ParsePositive(r.URL.Query(), "limit", 0))))
}

// handleListCategories returns all categories.
// GET /api/v1/categories
func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.ListCategories(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list categories")
		return
	}
	rest.RenderJSON(w, nonNil(cats))
}

// handleGetCategory returns a category with its posts.
// GET /api/v1/categories/{id}
func (h *Handler) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id := internal.NormalizeID(r.PathValue("id"))
	cat, err := h.store.GetCategory(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "category not found")
		return
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get category")
		return
	}
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	rest.RenderJSON(w, struct {
		blog.Category
		Posts []blog.Post `json:"posts"`
	}{Category: cat, Posts: nonNil(blog.PostsByCategory(posts, cat.ID))})
}

// handleListTags returns tags in use, most used first.
// GET /api/v1/tags
func (h *Handler) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.store.ListTags(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list tags")
		return
	}
	rest.RenderJSON(w, nonNil(tags))
}

// handleCreatePost stores a new post, an empty id gets a generated one.
// POST /api/v1/posts
func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var p blog.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid post")
		return
	}
	p.ID = internal.NormalizeID(p.ID)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := h.store.GetPost(r.Context(), p.ID)
	if err == nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusConflict, nil, "post already exists")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to check post")
		return
	}
	saved, ok := h.savePost(w, r, p, "create")
	if !ok {
		return
	}
	rest.EncodeJSON(w, http.StatusCreated, saved)
}

// handleUpdatePost replaces a post, the path id wins over the body.
// PUT /api/v1/posts/{id}
func (h *Handler) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var p blog.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid post")
		return
	}
	p.ID = internal.NormalizeID(r.PathValue("id"))
	op := "update"
	if _, err := h.store.GetPost(r.Context(), p.ID); errors.Is(err, store.ErrNotFound) {
		op = "create"
	}
	saved, ok := h.savePost(w, r, p, op)
	if !ok {
		return
	}
	rest.RenderJSON(w, saved)
}

// savePost validates, stores and archives a post. Writes the error response and returns false on failure.
func (h *Handler) savePost(w http.ResponseWriter, r *http.Request, p blog.Post, op string) (blog.Post, bool) {
	if p.Date.IsZero() {
		p.Date = h.now()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := p.Validate(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
		return blog.Post{}, false
	}
	if h.validator != nil {
		if err := h.validator.CheckPost(p); err != nil {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusUnprocessableEntity, err, err.Error())
			return blog.Post{}, false
		}
	}
	if _, err := h.store.GetCategory(r.Context(), p.Category); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "unknown category")
		return blog.Post{}, false
	}
	if err := h.store.SavePost(r.Context(), p); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to save post")
		return blog.Post{}, false
	}
	log.Printf("[INFO] %s post %q by %s", op, p.ID, h.adminName(r))

	if h.history != nil {
		if err := h.history.Commit(git.CommitRequest{Post: p, Operation: op, Author: h.author(r)}); err != nil {
			log.Printf("[WARN] git commit failed for %s: %v", p.ID, err)
		}
	}
	return p, true
}

// handleDeletePost removes a post.
// DELETE /api/v1/posts/{id}
func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id := internal.NormalizeID(r.PathValue("id"))
	err := h.store.DeletePost(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "post not found")
		return
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to delete post")
		return
	}
	log.Printf("[INFO] delete post %q by %s", id, h.adminName(r))

	if h.history != nil {
		if err := h.history.Delete(id, h.author(r)); err != nil {
			log.Printf("[WARN] git delete failed for %s: %v", id, err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSaveCategory creates or replaces a category.
// PUT /api/v1/categories/{id}
func (h *Handler) handleSaveCategory(w http.ResponseWriter, r *http.Request) {
	var c blog.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid category")
		return
	}
	c.ID = internal.NormalizeID(r.PathValue("id"))
	if c.Name == "" {
		c.Name = blog.CapitalizeWords(strings.ReplaceAll(c.ID, "-", " "))
	}
	if err := c.Validate(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
		return
	}
	if err := h.store.SaveCategory(r.Context(), c); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to save category")
		return
	}
	log.Printf("[INFO] save category %q by %s", c.ID, h.adminName(r))
	rest.RenderJSON(w, c)
}

// loadPost gets the post named by the path, writing 404/500 itself.
func (h *Handler) loadPost(w http.ResponseWriter, r *http.Request) (blog.Post, bool) {
	id := internal.NormalizeID(r.PathValue("id"))
	p, err := h.store.GetPost(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "post not found")
		return blog.Post{}, false
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get post")
		return blog.Post{}, false
	}
	return p, true
}

// checkAdmin verifies basic auth credentials against the configured user and bcrypt hash.
func (h *Handler) checkAdmin(user, passwd string) bool {
	if subtle.ConstantTimeCompare([]byte(user), []byte(h.admin.User)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(passwd)) == nil
}

// adminName returns the basic auth user for audit logging.
func (h *Handler) adminName(r *http.Request) string {
	if user, _, ok := r.BasicAuth(); ok {
		return "user:" + user
	}
	return "anonymous"
}

// author maps the admin user to the archive commit author.
func (h *Handler) author(r *http.Request) git.Author {
	if user, _, ok := r.BasicAuth(); ok && user != "" {
		return git.Author{Name: user, Email: user + "@shelf"}
	}
	return git.DefaultAuthor()
}

// nonNil keeps empty results as [] in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
