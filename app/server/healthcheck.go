package server

import (
	"context"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
)

// healthCheckTimeout bounds the store probe of a health request
const healthCheckTimeout = 5 * time.Second

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	Posts      int    `json:"posts"`
	Categories int    `json:"categories"`
	Tags       int    `json:"tags"`
	Error      string `json:"error,omitempty"`
}

// handleHealth probes the store and reports content counts.
// GET /health, 503 when the store can't be read
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", Version: s.version, Uptime: time.Since(s.startedAt).Truncate(time.Second).String()}
	if err := s.countContent(ctx, &resp); err != nil {
		log.Printf("[WARN] health check failed: %v", err)
		resp.Status, resp.Error = "unhealthy", err.Error()
		rest.EncodeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	rest.RenderJSON(w, resp)
}

func (s *Server) countContent(ctx context.Context, resp *healthResponse) error {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return err
	}
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return err
	}
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return err
	}
	resp.Posts, resp.Categories, resp.Tags = len(posts), len(cats), len(tags)
	return nil
}
