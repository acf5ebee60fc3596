package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/server/internal"
	"github.com/umputun/shelf/app/store"
)

// handleIndex renders the main page: featured posts when no filter is active,
// then the filtered and paginated post list.
// GET /
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := h.listData(r)
	if err != nil {
		log.Printf("[ERROR] failed to load posts: %v", err)
		h.renderError(w, r, http.StatusInternalServerError, "failed to load posts")
		return
	}
	data.Theme = newThemeView(h.themeState(w, r))

	if err := h.render(w, "index.html", "", data); err != nil {
		log.Printf("[ERROR] failed to render index: %v", err)
	}
}

// handlePostList renders only the post list, used by htmx search and filter forms.
// GET /web/posts
func (h *Handler) handlePostList(w http.ResponseWriter, r *http.Request) {
	data, err := h.listData(r)
	if err != nil {
		log.Printf("[ERROR] failed to load posts: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := h.render(w, "index.html", "posts", data); err != nil {
		log.Printf("[ERROR] failed to render post list: %v", err)
	}
}

// listData loads posts, categories and tags and applies the query filters and paging.
func (h *Handler) listData(r *http.Request) (templateData, error) {
	ctx := r.Context()
	posts, err := h.store.ListPosts(ctx)
	if err != nil {
		return templateData{}, err
	}
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		return templateData{}, err
	}
	tags, err := h.store.ListTags(ctx)
	if err != nil {
		return templateData{}, err
	}

	q := r.URL.Query()
	filters := internal.ParseFilters(q)
	filtered := blog.FilterPosts(posts, filters)

	data := templateData{
		Title:         h.title,
		BaseURL:       h.baseURL,
		ViewMode:      h.getViewMode(r).String(),
		Categories:    categories,
		Tags:          tags,
		Names:         categoryNames(categories),
		TotalPosts:    len(filtered),
		RatingOptions: []int{5, 4, 3, 2, 1},
		Filters: filterView{
			Category: filters.Category, Tags: filters.Tags, MinRating: filters.MinRating, Query: filters.Query,
			Sort: filters.SortBy.String(), Order: filters.SortOrder.String(), Active: filters.Active(),
		},
	}
	if !filters.Active() {
		data.Featured = blog.FeaturedPosts(posts, 0)
	}
	data.Posts, data.Page, data.TotalPages, data.HasPrev, data.HasNext = paginate(filtered,
		internal.ParsePositive(q, "page", 1), h.pageSize)
	if data.HasPrev {
		data.PrevURL = h.pageURL(q, data.Page-1)
	}
	if data.HasNext {
		data.NextURL = h.pageURL(q, data.Page+1)
	}
	return data, nil
}

// handleArticle renders a single post with its category and related posts.
// GET /article/{id}
func (h *Handler) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := internal.NormalizeID(r.PathValue("id"))
	post, err := h.store.GetPost(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get post %q: %v", id, err)
		h.renderError(w, r, http.StatusInternalServerError, "failed to load article")
		return
	}

	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		log.Printf("[WARN] no related posts for %q: %v", id, err)
	}
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		log.Printf("[WARN] no category for %q: %v", id, err)
	}
	category, ok := blog.FindCategory(categories, post.Category)
	if !ok {
		category = blog.Category{ID: post.Category, Name: blog.CapitalizeWords(post.Category)}
	}

	data := templateData{
		Title:    h.title,
		BaseURL:  h.baseURL,
		Theme:    newThemeView(h.themeState(w, r)),
		ViewMode: h.getViewMode(r).String(),
		Post:     post,
		Category: category,
		Content:  h.highlighter.Render(post.Content),
		Related:  blog.RelatedPosts(posts, post.ID, 0),
		Names:    categoryNames(categories),
	}
	if err := h.render(w, "article.html", "", data); err != nil {
		log.Printf("[ERROR] failed to render article: %v", err)
	}
}

// handleViewModeToggle toggles the post list between grid and list and returns the updated list.
// POST /web/view-mode
func (h *Handler) handleViewModeToggle(w http.ResponseWriter, r *http.Request) {
	newMode := h.getViewMode(r).Toggle()
	h.setCookie(w, "view_mode", newMode.String())

	// the list comes from the page's current query, carried in the htmx current url
	if cur := r.Header.Get("HX-Current-URL"); cur != "" {
		if u, err := r.URL.Parse(cur); err == nil {
			r.URL.RawQuery = u.RawQuery
		}
	}
	data, err := h.listData(r)
	if err != nil {
		log.Printf("[ERROR] failed to load posts: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data.ViewMode = newMode.String()
	if err := h.render(w, "index.html", "posts", data); err != nil {
		log.Printf("[ERROR] failed to render post list: %v", err)
	}
}

// renderError renders the themed error page with the given status.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := templateData{
		Title:   h.title,
		BaseURL: h.baseURL,
		Theme:   newThemeView(h.themeState(w, r)),
		Status:  status,
		Message: msg,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl["error.html"].ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to render error page: %v", err)
	}
}

// pageURL keeps the current filters and switches the page.
func (h *Handler) pageURL(q url.Values, page int) string {
	params := url.Values{}
	for k, v := range q {
		params[k] = v
	}
	params.Set("page", strconv.Itoa(page))
	return h.url("/?" + params.Encode())
}

func categoryNames(categories []blog.Category) map[string]string {
	res := make(map[string]string, len(categories))
	for _, c := range categories {
		res[c.ID] = c.Name
	}
	return res
}
