package theme

import (
	"errors"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shelf/app/enum"
)

// ErrNotInitialized is returned when the controller is changed before Init.
var ErrNotInitialized = errors.New("theme controller is not initialized")

// Surface receives the resolved scheme and its palette, e.g. the root element
// of a rendered page. Apply must not call back into the controller.
type Surface interface {
	Apply(s enum.Scheme, p Palette)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(s enum.Scheme, p Palette)

// Apply calls f.
func (f SurfaceFunc) Apply(s enum.Scheme, p Palette) { f(s, p) }

// State is a consistent snapshot of the controller.
type State struct {
	Preference enum.Theme  `json:"preference"`
	System     enum.Scheme `json:"system"`
	Resolved   enum.Scheme `json:"resolved"`
}

// Palette returns the palette of the resolved scheme.
func (s State) Palette() Palette { return PaletteFor(s.Resolved) }

// Controller owns the theme state of one UI session. It is created by the
// top-level composition, initialized once and closed when the UI goes away.
type Controller struct {
	store    *PreferenceStore
	detector Detector
	surface  Surface

	mu          sync.Mutex
	state       State
	initialized bool
	closed      bool
	unsubscribe func()
}

// NewController makes an uninitialized controller. A nil surface is allowed.
func NewController(store *PreferenceStore, detector Detector, surface Surface) *Controller {
	if detector == nil {
		detector = NewHintDetector()
	}
	return &Controller{store: store, detector: detector, surface: surface}
}

// Init reads the stored preference and host scheme, subscribes to host
// changes and applies the resolved scheme. Repeated calls do nothing.
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized || c.closed {
		return
	}

	// subscribe before reading so a change in between is not lost,
	// the callback waits on mu until init completes
	c.unsubscribe = c.detector.Subscribe(c.onSystemChange)

	pref := c.store.Get()
	system := c.detector.Current()
	c.state = State{Preference: pref, System: system, Resolved: Resolve(pref, system)}
	c.initialized = true
	c.apply()
	log.Printf("[DEBUG] theme initialized, preference=%s, system=%s, resolved=%s", pref, system, c.state.Resolved)
}

// State returns the current snapshot, ok is false until Init.
func (c *Controller) State() (st State, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return State{}, false
	}
	return c.state, true
}

// SetPreference stores the new preference and applies the resulting scheme.
func (c *Controller) SetPreference(pref enum.Theme) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return ErrNotInitialized
	}
	if _, ok := pref.Scheme(); !ok {
		pref = enum.ThemeSystem // anything without a scheme of its own follows the host
	}
	c.state.Preference = pref
	c.store.Set(pref)
	c.state.Resolved = Resolve(pref, c.state.System)
	c.apply()
	return nil
}

// Close releases the host subscription, later notifications are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.closed = true
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// onSystemChange handles a host scheme notification. The resolved scheme only
// follows it when the preference is ThemeSystem.
func (c *Controller) onSystemChange(s enum.Scheme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized || c.closed || c.state.System == s {
		return
	}
	c.state.System = s
	if _, explicit := c.state.Preference.Scheme(); explicit {
		return
	}
	c.state.Resolved = s
	c.apply()
}

// apply pushes the resolved scheme to the surface, caller holds mu.
func (c *Controller) apply() {
	if c.surface == nil {
		return
	}
	c.surface.Apply(c.state.Resolved, PaletteFor(c.state.Resolved))
}
