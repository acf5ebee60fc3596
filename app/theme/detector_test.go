package theme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/shelf/app/enum"
)

func TestHintDetector(t *testing.T) {
	tests := []struct {
		name     string
		signals  []string
		expected enum.Scheme
		found    bool
	}{
		{name: "no signals", expected: enum.SchemeLight},
		{name: "empty signals", signals: []string{"", " "}, expected: enum.SchemeLight},
		{name: "client hint", signals: []string{"dark"}, expected: enum.SchemeDark, found: true},
		{name: "quoted hint", signals: []string{`"dark"`}, expected: enum.SchemeDark, found: true},
		{name: "gsettings style", signals: []string{"prefer-dark"}, expected: enum.SchemeDark, found: true},
		{name: "first valid wins", signals: []string{"junk", "light", "dark"}, expected: enum.SchemeLight, found: true},
		{name: "fallback to second", signals: []string{"", "dark"}, expected: enum.SchemeDark, found: true},
		{name: "system is not a scheme", signals: []string{"system"}, expected: enum.SchemeLight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewHintDetector(tc.signals...)
			assert.Equal(t, tc.expected, d.Current())
			assert.Equal(t, tc.found, d.Detected())
			unsub := d.Subscribe(func(enum.Scheme) { t.Fatal("hint detector never notifies") })
			assert.NotPanics(t, unsub)
		})
	}
}

func TestBroadcaster(t *testing.T) {
	t.Run("notifies on change only", func(t *testing.T) {
		b := NewBroadcaster(enum.SchemeLight)
		var got []enum.Scheme
		b.Subscribe(func(s enum.Scheme) { got = append(got, s) })

		b.Publish(enum.SchemeLight) // same, ignored
		b.Publish(enum.SchemeDark)
		b.Publish(enum.SchemeDark) // same, ignored
		b.Publish(enum.SchemeLight)

		assert.Equal(t, []enum.Scheme{enum.SchemeDark, enum.SchemeLight}, got)
		assert.Equal(t, enum.SchemeLight, b.Current())
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		b := NewBroadcaster(enum.SchemeLight)
		calls := 0
		unsub := b.Subscribe(func(enum.Scheme) { calls++ })
		b.Publish(enum.SchemeDark)
		unsub()
		unsub() // idempotent
		b.Publish(enum.SchemeLight)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil callback", func(t *testing.T) {
		b := NewBroadcaster(enum.SchemeLight)
		unsub := b.Subscribe(nil)
		assert.NotPanics(t, func() { b.Publish(enum.SchemeDark) })
		assert.NotPanics(t, unsub)
	})

	t.Run("publish from callback is queued", func(t *testing.T) {
		b := NewBroadcaster(enum.SchemeLight)
		var order []string
		b.Subscribe(func(s enum.Scheme) {
			order = append(order, "a:"+s.String())
			if s == enum.SchemeDark {
				b.Publish(enum.SchemeLight)
			}
			order = append(order, "a-done:"+s.String())
		})
		b.Subscribe(func(s enum.Scheme) { order = append(order, "b:"+s.String()) })

		b.Publish(enum.SchemeDark)
		assert.Equal(t, []string{
			"a:dark", "a-done:dark", "b:dark",
			"a:light", "a-done:light", "b:light",
		}, order, "each change is delivered to completion before the next")
	})

	t.Run("concurrent publishers", func(t *testing.T) {
		b := NewBroadcaster(enum.SchemeLight)
		var mu sync.Mutex
		inFlight, maxInFlight := 0, 0
		b.Subscribe(func(enum.Scheme) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()
			mu.Lock()
			inFlight--
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.Publish(enum.SchemeFromDark(i%2 == 0))
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxInFlight)
	})
}
