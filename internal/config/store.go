package config

import (
	"encoding/json"
	"sync"

	"bigclock/internal/database"
	"bigclock/internal/util"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store is the single source of truth for configuration. Components
// receive it explicitly; nothing reads storage behind its back.
type Store struct {
	repo database.SettingsRepository

	mu  sync.Mutex
	raw string // last persisted document; carries unknown fields forward
}

func NewStore(repo database.SettingsRepository) *Store {
	return &Store{repo: repo}
}

// Load reads the defaults resource and any persisted record, migrates,
// merges persisted fields over defaults, normalizes every field, and
// re-persists the normalized result (self-healing write). An unreadable
// defaults resource is the only error; a corrupt or absent persisted
// record silently yields defaults.
func (s *Store) Load() (Config, error) {
	defRaw, def, err := loadDefaults()
	if err != nil {
		return Config{}, err
	}

	merged := defRaw
	if saved, ok := s.repo.GetSetting(SettingKey); ok {
		if migrated := Migrate(saved); migrated != "" {
			merged = mergeRaw(defRaw, migrated)
		}
	}

	cfg := normalize(merged, def)
	raw := applyKnownFields(merged, cfg)

	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()

	util.LogError("self-healing config write", s.repo.SetSetting(SettingKey, raw))
	return cfg, nil
}

// Save serializes cfg over the last persisted document and overwrites
// the stored record as a whole.
func (s *Store) Save(cfg Config) error {
	s.mu.Lock()
	raw := s.raw
	if raw == "" {
		raw = "{}"
	}
	raw = applyKnownFields(raw, cfg)
	s.raw = raw
	s.mu.Unlock()

	return s.repo.SetSetting(SettingKey, raw)
}

// Reset discards the persisted record and writes the defaults resource
// verbatim.
func (s *Store) Reset() (Config, error) {
	defRaw, def, err := loadDefaults()
	if err != nil {
		return Config{}, err
	}
	if err := s.repo.DeleteSetting(SettingKey); err != nil {
		return Config{}, err
	}
	if err := s.repo.SetSetting(SettingKey, defRaw); err != nil {
		return Config{}, err
	}

	s.mu.Lock()
	s.raw = defRaw
	s.mu.Unlock()

	return def, nil
}

// applyKnownFields writes every schema field of cfg into raw, leaving
// fields outside the schema untouched.
func applyKnownFields(raw string, cfg Config) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return raw
	}
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		raw, _ = sjson.SetRaw(raw, key.String(), value.Raw)
		return true
	})
	return raw
}
