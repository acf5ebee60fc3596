// Package web provides HTTP handlers for the web UI.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/enum"
	"github.com/umputun/shelf/app/theme"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// pages rendered inside base.html, each parsed into its own template set
var pages = []string{"index.html", "article.html", "error.html"}

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Store defines the read operations the web UI needs.
type Store interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	GetPost(ctx context.Context, id string) (blog.Post, error)
	ListCategories(ctx context.Context) ([]blog.Category, error)
	ListTags(ctx context.Context) ([]blog.Tag, error)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL  string
	PageSize int
	Title    string // site title shown in the header
}

// Handler handles web UI requests.
type Handler struct {
	store       Store
	highlighter *Highlighter
	tmpl        map[string]*template.Template
	baseURL     string
	pageSize    int
	title       string
	now         func() time.Time
}

// New creates a new web handler.
func New(st Store, cfg Config) (*Handler, error) {
	title := cfg.Title
	if title == "" {
		title = "Shelf"
	}
	h := &Handler{
		store:       st,
		highlighter: NewHighlighter(),
		baseURL:     cfg.BaseURL,
		pageSize:    cfg.PageSize,
		title:       title,
		now:         time.Now,
	}
	tmpl, err := parseTemplates(h.templateFuncs())
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	h.tmpl = tmpl
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.Use(h.clientHints)
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/posts", h.handlePostList)
	r.HandleFunc("GET /article/{id}", h.handleArticle)
	r.HandleFunc("GET /web/theme", h.handleThemeState)
	r.HandleFunc("POST /web/theme", h.handleThemeSet)
	r.HandleFunc("POST /web/theme/system", h.handleThemeSystem)
	r.HandleFunc("GET /web/highlight/{scheme}", h.handleHighlightCSS)
	r.HandleFunc("POST /web/view-mode", h.handleViewModeToggle)
}

// templateFuncs returns custom template functions.
func (h *Handler) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":   blog.FormatDate,
		"relativeDate": func(t time.Time) string { return blog.RelativeDate(t, h.now()) },
		"truncate":     blog.Truncate,
		"stars":        blog.Stars,
		"ratingClass":  blog.RatingClass,
		"domain":       blog.Domain,
		"initials":     blog.Initials,
		"capitalize":   blog.CapitalizeWords,
		"validURL":     blog.IsValidURL,
		"urlEncode":    url.PathEscape,
		"queryEscape":  url.QueryEscape,
		"card": func(p blog.Post, d templateData) cardData {
			return cardData{Post: p, Category: d.Names[p.Category], BaseURL: d.BaseURL}
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// parseTemplates parses base.html and the partials once, then clones the set for every page
// so each page can define its own "content" block.
func parseTemplates(funcs template.FuncMap) (map[string]*template.Template, error) {
	root, err := template.New("base.html").Funcs(funcs).
		ParseFS(templatesFS, "templates/base.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}

	res := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		clone, cloneErr := root.Clone()
		if cloneErr != nil {
			return nil, fmt.Errorf("clone base for %s: %w", name, cloneErr)
		}
		if _, err := clone.ParseFS(templatesFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		res[name] = clone
	}
	return res, nil
}

// themeView is the resolved theme as the templates render it on the root element.
type themeView struct {
	Preference string
	System     string
	Resolved   string
	Style      template.CSS
}

// filterView echoes the active filters back into the forms.
type filterView struct {
	Category  string
	Tags      []string
	MinRating int
	Query     string
	Sort      string
	Order     string
	Active    bool
}

// cardData is a single post card with what it needs from the page.
type cardData struct {
	blog.Post
	Category string // category name
	BaseURL  string
}

// templateData holds data passed to templates.
type templateData struct {
	Title    string
	BaseURL  string
	Theme    themeView
	ViewMode string

	// index page
	Posts         []blog.Post
	Featured      []blog.Post
	Categories    []blog.Category
	Tags          []blog.Tag
	Filters       filterView
	RatingOptions []int
	Names         map[string]string // category id to name

	// article page
	Post     blog.Post
	Category blog.Category
	Content  template.HTML
	Related  []blog.Post

	// error page
	Status  int
	Message string

	// pagination fields
	PrevURL    string
	NextURL    string
	Page       int  // current page (1-based)
	TotalPages int  // total number of pages
	TotalPosts int  // total posts after filtering (before pagination)
	HasPrev    bool // has previous page
	HasNext    bool // has next page
}

// render executes the page's base template, or a named block of it when block is set.
func (h *Handler) render(w http.ResponseWriter, page, block string, data templateData) error {
	tmpl, ok := h.tmpl[page]
	if !ok {
		return fmt.Errorf("unknown page %s", page)
	}
	if block == "" {
		block = "base.html"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, block, data); err != nil {
		return fmt.Errorf("execute %s/%s: %w", page, block, err)
	}
	return nil
}

// getViewMode returns the current view mode from cookie, defaulting to grid.
func (h *Handler) getViewMode(r *http.Request) enum.ViewMode {
	if cookie, err := r.Cookie("view_mode"); err == nil {
		if mode, err := enum.ParseViewMode(cookie.Value); err == nil {
			return mode
		}
	}
	return enum.ViewModeGrid
}

// setCookie sets a long-lived UI preference cookie scoped to the base URL.
func (h *Handler) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookiePath(),
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

// newThemeView converts a controller state to its template form.
func newThemeView(st theme.State) themeView {
	return themeView{
		Preference: st.Preference.String(),
		System:     st.System.String(),
		Resolved:   st.Resolved.String(),
		Style:      template.CSS(st.Palette().Style()), //nolint:gosec // fixed palette values
	}
}

// paginate applies pagination to a slice and returns pagination info.
// page is 1-based, pageSize is the max items per page, zero or less disables paging.
func paginate[T any](items []T, page, pageSize int) (res []T, curPage, totalPages int, hasPrev, hasNext bool) {
	total := len(items)
	if pageSize <= 0 {
		return items, 1, 1, false, false
	}

	totalPages = max((total+pageSize-1)/pageSize, 1)
	page = min(max(page, 1), totalPages)

	start := (page - 1) * pageSize
	if start >= total {
		return nil, page, totalPages, page > 1, false
	}
	end := min(start+pageSize, total)
	return items[start:end], page, totalPages, page > 1, page < totalPages
}
