package config

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// v1→v2 backfill values. Applied only where the persisted value is not
// already a JSON boolean.
var v2Backfill = []struct {
	field string
	value bool
}{
	{"showSeconds", false},
	{"showTimeOfDay", true},
	{"settingsLocked", true},
	{"tvMode", false},
}

// Migrate upgrades a raw persisted document to the current schema.
// Versions are linear and forward-only. Unknown fields are never
// touched. Anything that is not a JSON object is treated as "no saved
// config" and reported as the empty string.
func Migrate(raw string) string {
	if raw == "" || !gjson.Valid(raw) || !gjson.Parse(raw).IsObject() {
		return ""
	}

	version := 1
	if v := gjson.Get(raw, "schemaVersion"); v.Int() > 0 {
		version = int(v.Int())
	}

	if version < 2 {
		raw, _ = sjson.Set(raw, "schemaVersion", 2)
		for _, b := range v2Backfill {
			if !gjson.Get(raw, b.field).IsBool() {
				raw, _ = sjson.Set(raw, b.field, b.value)
			}
		}
	}

	return raw
}

// mergeRaw lays every top-level field of saved over the defaults
// document, keeping fields the current schema does not know about.
func mergeRaw(defaultsRaw, saved string) string {
	merged := defaultsRaw
	gjson.Parse(saved).ForEach(func(key, value gjson.Result) bool {
		merged, _ = sjson.SetRaw(merged, escapePath(key.String()), value.Raw)
		return true
	})
	return merged
}

// escapePath protects literal dots in field names from being read as
// path separators.
func escapePath(key string) string {
	return strings.ReplaceAll(key, ".", `\.`)
}
