package config

import "sync"

// Handle is the live view of the configuration shared by every
// component. Reads go through Get; every mutation goes through Set,
// which writes through to the store so persisted state never lags the
// in-memory record.
type Handle struct {
	store *Store

	mu  sync.RWMutex
	cur Config
}

// NewHandle loads the configuration and wraps it with the store.
func NewHandle(store *Store) (*Handle, error) {
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Handle{store: store, cur: cfg}, nil
}

// Get returns the current configuration.
func (h *Handle) Get() Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

// Set replaces the configuration and persists the whole record.
func (h *Handle) Set(cfg Config) error {
	h.mu.Lock()
	h.cur = cfg
	h.mu.Unlock()
	return h.store.Save(cfg)
}

// Reload re-reads the persisted record through the store. The theme
// re-evaluation timer uses this so it acts on what storage holds, not
// on a possibly stale copy.
func (h *Handle) Reload() (Config, error) {
	cfg, err := h.store.Load()
	if err != nil {
		return Config{}, err
	}
	h.mu.Lock()
	h.cur = cfg
	h.mu.Unlock()
	return cfg, nil
}

// Reset restores defaults via the store and updates the live view.
func (h *Handle) Reset() (Config, error) {
	cfg, err := h.store.Reset()
	if err != nil {
		return Config{}, err
	}
	h.mu.Lock()
	h.cur = cfg
	h.mu.Unlock()
	return cfg, nil
}
