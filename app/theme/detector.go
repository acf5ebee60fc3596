package theme

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/umputun/shelf/app/enum"
)

// Detector reports the host's color scheme and notifies on changes.
type Detector interface {
	Current() enum.Scheme
	// Subscribe registers fn for every reported change and returns a function
	// removing the registration. It must be safe to call with no signal present.
	Subscribe(fn func(enum.Scheme)) (unsubscribe func())
}

// HintDetector reads a fixed set of signals captured once, e.g. the
// Sec-CH-Prefers-Color-Scheme client hint and the last reported value.
// The first signal that parses wins; with none, the scheme is light.
type HintDetector struct {
	scheme enum.Scheme
	found  bool
}

// NewHintDetector makes a detector from raw signals in priority order.
func NewHintDetector(signals ...string) *HintDetector {
	for _, sig := range signals {
		if s, ok := parseSignal(sig); ok {
			return &HintDetector{scheme: s, found: true}
		}
	}
	return &HintDetector{scheme: enum.SchemeLight}
}

// Current returns the detected scheme, light without a signal.
func (d *HintDetector) Current() enum.Scheme { return d.scheme }

// Detected reports whether any signal was present.
func (d *HintDetector) Detected() bool { return d.found }

// Subscribe returns a no-op, hints don't change within a request.
func (d *HintDetector) Subscribe(func(enum.Scheme)) func() { return func() {} }

// parseSignal accepts "dark"/"light" as sent by browsers, with optional quotes,
// and the gsettings style "prefer-dark"/"prefer-light".
func parseSignal(sig string) (enum.Scheme, bool) {
	sig = strings.ToLower(strings.Trim(strings.TrimSpace(sig), `"'`))
	sig = strings.TrimPrefix(sig, "prefer-")
	if sig == "" {
		return enum.SchemeLight, false
	}
	s, err := enum.ParseScheme(sig)
	if err != nil {
		return enum.SchemeLight, false
	}
	return s, true
}

// subscriber wraps a callback so it can be removed by pointer identity.
type subscriber struct {
	fn      func(enum.Scheme)
	removed atomic.Bool
}

// Broadcaster is a Detector driven by Publish calls. Changes are delivered
// to subscribers one at a time; a Publish made while a delivery is running,
// including from a callback, is queued and delivered after it.
type Broadcaster struct {
	mu         sync.Mutex
	current    enum.Scheme
	subs       []*subscriber
	pending    []enum.Scheme
	delivering bool
}

// NewBroadcaster makes a Broadcaster starting at initial.
func NewBroadcaster(initial enum.Scheme) *Broadcaster {
	return &Broadcaster{current: initial}
}

// Current returns the last published scheme.
func (b *Broadcaster) Current() enum.Scheme {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe registers fn for changes.
func (b *Broadcaster) Subscribe(fn func(enum.Scheme)) func() {
	if fn == nil {
		return func() {}
	}
	sub := &subscriber{fn: fn}
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return func() {
		sub.removed.Store(true)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs = slices.DeleteFunc(b.subs, func(s *subscriber) bool { return s == sub })
	}
}

// Publish reports a new host scheme. Repeating the current scheme is a no-op.
func (b *Broadcaster) Publish(s enum.Scheme) {
	b.mu.Lock()
	b.pending = append(b.pending, s)
	if b.delivering {
		b.mu.Unlock()
		return
	}
	b.delivering = true
	for len(b.pending) > 0 {
		next := b.pending[0]
		b.pending = b.pending[1:]
		if next == b.current {
			continue
		}
		b.current = next
		subs := slices.Clone(b.subs)
		b.mu.Unlock()
		for _, sub := range subs {
			if !sub.removed.Load() {
				sub.fn(next)
			}
		}
		b.mu.Lock()
	}
	b.delivering = false
	b.mu.Unlock()
}
