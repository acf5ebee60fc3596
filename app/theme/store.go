package theme

import (
	"errors"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shelf/app/enum"
)

// PreferenceKey is the storage key holding the user's theme preference.
const PreferenceKey = "theme-preference"

// ErrNoValue is returned by a Storage when the key holds nothing.
var ErrNoValue = errors.New("no stored value")

// Storage is a client-local key-value medium, e.g. cookies or a map.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// PreferenceStore persists the theme preference on a Storage.
// Reads fall back to ThemeSystem and writes are best-effort.
type PreferenceStore struct {
	storage Storage
}

// NewPreferenceStore makes a store over the given medium, nil means unavailable.
func NewPreferenceStore(s Storage) *PreferenceStore {
	return &PreferenceStore{storage: s}
}

// Get returns the stored preference, ThemeSystem if absent, corrupt or unreadable.
func (p *PreferenceStore) Get() enum.Theme {
	if p == nil || p.storage == nil {
		return enum.ThemeSystem
	}
	raw, err := p.storage.Get(PreferenceKey)
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			log.Printf("[DEBUG] can't read theme preference: %v", err)
		}
		return enum.ThemeSystem
	}
	pref, err := enum.ParseTheme(raw)
	if err != nil {
		log.Printf("[DEBUG] ignore stored theme preference %q: %v", raw, err)
		return enum.ThemeSystem
	}
	return pref
}

// Set stores the preference. Failures are logged and dropped.
func (p *PreferenceStore) Set(pref enum.Theme) {
	if p == nil || p.storage == nil {
		return
	}
	if err := p.storage.Set(PreferenceKey, pref.String()); err != nil {
		log.Printf("[DEBUG] can't persist theme preference %s: %v", pref, err)
	}
}

// MemStorage is an in-process Storage.
type MemStorage struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemStorage makes an empty MemStorage.
func NewMemStorage() *MemStorage {
	return &MemStorage{data: map[string]string{}}
}

// Get returns the value for key or ErrNoValue.
func (m *MemStorage) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNoValue
	}
	return v, nil
}

// Set stores value under key.
func (m *MemStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
