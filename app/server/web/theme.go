package web

import (
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/shelf/app/enum"
	"github.com/umputun/shelf/app/theme"
)

const (
	// schemeCookie keeps the last color scheme the page script read from matchMedia
	schemeCookie = "color-scheme"
	// schemeHint is the client hint carrying prefers-color-scheme
	schemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// cookieStorage is a theme.Storage over the request cookies, writes go out as Set-Cookie
// and are visible to later reads through the same storage.
type cookieStorage struct {
	h       *Handler
	w       http.ResponseWriter
	r       *http.Request
	written map[string]string // values set during this request, shadow the request cookies
}

func newCookieStorage(h *Handler, w http.ResponseWriter, r *http.Request) cookieStorage {
	return cookieStorage{h: h, w: w, r: r, written: map[string]string{}}
}

// Get returns the cookie value for key.
func (c cookieStorage) Get(key string) (string, error) {
	if v, ok := c.written[key]; ok {
		if v == "" {
			return "", theme.ErrNoValue
		}
		return v, nil
	}
	cookie, err := c.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", theme.ErrNoValue
	}
	return cookie.Value, nil
}

// Set writes the cookie for key.
func (c cookieStorage) Set(key, value string) error {
	c.h.setCookie(c.w, key, value)
	c.written[key] = value
	return nil
}

// rootSurface records what the controller applied, rendered later as the root element's
// class and style attributes.
type rootSurface struct {
	scheme  enum.Scheme
	palette theme.Palette
	applied int
}

// Apply implements theme.Surface.
func (s *rootSurface) Apply(sc enum.Scheme, p theme.Palette) {
	s.scheme, s.palette = sc, p
	s.applied++
}

// themeResponse is the JSON state sent to the page script.
type themeResponse struct {
	Preference enum.Theme  `json:"preference"`
	System     enum.Scheme `json:"system"`
	Resolved   enum.Scheme `json:"resolved"`
	Changed    bool        `json:"changed"`
	Colors     []theme.Var `json:"colors"`
}

func newThemeResponse(st theme.State, changed bool) themeResponse {
	return themeResponse{
		Preference: st.Preference, System: st.System, Resolved: st.Resolved,
		Changed: changed, Colors: st.Palette().Vars(),
	}
}

// newController builds the per-request theme controller over the cookie storage.
// detector nil means the request's client hint, then the last reported scheme.
func (h *Handler) newController(w http.ResponseWriter, r *http.Request, detector theme.Detector) (*theme.Controller, *rootSurface) {
	if detector == nil {
		detector = theme.NewHintDetector(r.Header.Get(schemeHint), cookieValue(r, schemeCookie))
	}
	surface := &rootSurface{}
	ctrl := theme.NewController(theme.NewPreferenceStore(newCookieStorage(h, w, r)), detector, surface)
	ctrl.Init()
	return ctrl, surface
}

// themeState resolves the theme for rendering a page.
func (h *Handler) themeState(w http.ResponseWriter, r *http.Request) theme.State {
	ctrl, _ := h.newController(w, r, nil)
	defer ctrl.Close()
	st, _ := ctrl.State()
	return st
}

// clientHints asks browsers for the color scheme hint and marks responses as varying on it.
func (h *Handler) clientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", schemeHint)
		w.Header().Add("Vary", schemeHint)
		next.ServeHTTP(w, r)
	})
}

// handleThemeState returns the current theme state.
// GET /web/theme
func (h *Handler) handleThemeState(w http.ResponseWriter, r *http.Request) {
	rest.RenderJSON(w, newThemeResponse(h.themeState(w, r), false))
}

// handleThemeSet stores the theme preference. Form value theme is light, dark or system;
// without it the resolved theme is flipped to the opposite explicit theme.
// POST /web/theme
func (h *Handler) handleThemeSet(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := h.newController(w, r, nil)
	defer ctrl.Close()
	before, _ := ctrl.State()

	pref := before.Resolved.Toggle().Theme()
	if raw := strings.TrimSpace(r.FormValue("theme")); raw != "" {
		parsed, err := enum.ParseTheme(raw)
		if err != nil {
			http.Error(w, "invalid theme", http.StatusBadRequest)
			return
		}
		pref = parsed
	}

	if err := ctrl.SetPreference(pref); err != nil {
		log.Printf("[ERROR] failed to set theme preference: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	after, _ := ctrl.State()
	log.Printf("[DEBUG] theme preference %s -> %s, resolved %s", before.Preference, after.Preference, after.Resolved)

	switch {
	case r.Header.Get("HX-Request") == "true":
		// trigger full page refresh
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
	case strings.Contains(r.Header.Get("Accept"), "application/json"):
		rest.RenderJSON(w, newThemeResponse(after, before.Resolved != after.Resolved))
	default:
		http.Redirect(w, r, h.backURL(r), http.StatusSeeOther)
	}
}

// handleThemeSystem takes a color scheme change reported by the page script, persists it
// for later renders and publishes it to the request's controller. The response tells the
// script whether the resolved theme changed, it only restyles the page when it did.
// POST /web/theme/system
func (h *Handler) handleThemeSystem(w http.ResponseWriter, r *http.Request) {
	scheme, err := enum.ParseScheme(strings.TrimSpace(r.FormValue("scheme")))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid scheme")
		return
	}

	// the page was rendered with the last reported scheme, the hint only fills in when none was reported
	last := theme.NewHintDetector(cookieValue(r, schemeCookie), r.Header.Get(schemeHint))
	system := theme.NewBroadcaster(last.Current())
	ctrl, _ := h.newController(w, r, system)
	defer ctrl.Close()
	before, _ := ctrl.State()

	h.setCookie(w, schemeCookie, scheme.String())
	system.Publish(scheme)

	after, _ := ctrl.State()
	rest.RenderJSON(w, newThemeResponse(after, before.Resolved != after.Resolved))
}

// handleHighlightCSS serves the code stylesheet for a scheme.
// GET /web/highlight/{scheme}
func (h *Handler) handleHighlightCSS(w http.ResponseWriter, r *http.Request) {
	scheme, err := enum.ParseScheme(strings.TrimSuffix(r.PathValue("scheme"), ".css"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	css, err := h.highlighter.CSS(scheme)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(css); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// backURL returns the same-site page to return to after a form post.
func (h *Handler) backURL(r *http.Request) string {
	if ref := r.Referer(); ref != "" {
		if u, err := r.URL.Parse(ref); err == nil && (u.Host == "" || u.Host == r.Host) && strings.HasPrefix(u.Path, h.url("/")) {
			return u.RequestURI()
		}
	}
	return h.url("/")
}

func cookieValue(r *http.Request, name string) string {
	if c, err := r.Cookie(name); err == nil {
		return c.Value
	}
	return ""
}
