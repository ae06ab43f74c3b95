// Package config loads, migrates, persists, and resets the versioned
// configuration record that drives every part of the clock.
package config

import (
	"encoding/json"
	"fmt"

	"bigclock/internal/assets"

	"github.com/tidwall/gjson"
)

// CurrentSchemaVersion is the version every loaded record is pinned to.
const CurrentSchemaVersion = 2

// SettingKey is the single settings-table key holding the whole record.
const SettingKey = "clock_config"

const (
	TimeFormat12 = "12"
	TimeFormat24 = "24"

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config is the persisted record of user preferences. It is always
// fully normalized before any component reads it.
type Config struct {
	SchemaVersion       int    `json:"schemaVersion"`
	TimeFormat          string `json:"timeFormat"`
	Language            string `json:"language"`
	ThemeMode           string `json:"themeMode"`
	UseLocationForTheme bool   `json:"useLocationForTheme"`
	TouchMode           bool   `json:"touchMode"`
	TVMode              bool   `json:"tvMode"`
	ShowSeconds         bool   `json:"showSeconds"`
	ShowTimeOfDay       bool   `json:"showTimeOfDay"`
	SettingsLocked      bool   `json:"settingsLocked"`
}

// loadDefaults reads and parses the baseline document. The clock cannot
// run without it, so any failure here is fatal to the caller.
func loadDefaults() (string, Config, error) {
	data, err := assets.Defaults()
	if err != nil {
		return "", Config{}, fmt.Errorf("load defaults resource: %w", err)
	}
	var def Config
	if err := json.Unmarshal(data, &def); err != nil {
		return "", Config{}, fmt.Errorf("parse defaults resource: %w", err)
	}
	return string(data), def, nil
}

// normalize coerces every known field of a merged raw document to its
// declared type, falling back to the defaults for anything off-enum.
func normalize(raw string, def Config) Config {
	cfg := def

	if gjson.Get(raw, "timeFormat").String() == TimeFormat24 {
		cfg.TimeFormat = TimeFormat24
	} else {
		cfg.TimeFormat = TimeFormat12
	}

	if lang := gjson.Get(raw, "language"); lang.Type == gjson.String && assets.HasDictionary(lang.String()) {
		cfg.Language = lang.String()
	} else {
		cfg.Language = def.Language
	}

	switch mode := gjson.Get(raw, "themeMode").String(); mode {
	case ThemeAuto, ThemeLight, ThemeDark:
		cfg.ThemeMode = mode
	default:
		cfg.ThemeMode = def.ThemeMode
	}

	cfg.UseLocationForTheme = gjson.Get(raw, "useLocationForTheme").Bool()
	cfg.TouchMode = gjson.Get(raw, "touchMode").Bool()
	cfg.TVMode = gjson.Get(raw, "tvMode").Bool()
	cfg.ShowSeconds = gjson.Get(raw, "showSeconds").Bool()
	cfg.ShowTimeOfDay = gjson.Get(raw, "showTimeOfDay").Bool()
	cfg.SettingsLocked = gjson.Get(raw, "settingsLocked").Bool()

	cfg.SchemaVersion = CurrentSchemaVersion
	return cfg
}
