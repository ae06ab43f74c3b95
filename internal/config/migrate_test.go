package config

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestMigrateV1BackfillsBooleans(t *testing.T) {
	out := Migrate(`{"schemaVersion":1}`)

	if got := gjson.Get(out, "schemaVersion").Int(); got != 2 {
		t.Fatalf("schemaVersion = %d, want 2", got)
	}
	checks := map[string]bool{
		"showSeconds":    false,
		"showTimeOfDay":  true,
		"settingsLocked": true,
		"tvMode":         false,
	}
	for field, want := range checks {
		r := gjson.Get(out, field)
		if !r.IsBool() || r.Bool() != want {
			t.Fatalf("%s = %v, want %v", field, r.Raw, want)
		}
	}
}

func TestMigrateMissingVersionTreatedAsV1(t *testing.T) {
	out := Migrate(`{"timeFormat":"24"}`)
	if got := gjson.Get(out, "schemaVersion").Int(); got != 2 {
		t.Fatalf("schemaVersion = %d, want 2", got)
	}
	if got := gjson.Get(out, "timeFormat").String(); got != "24" {
		t.Fatalf("timeFormat lost during migration: %q", got)
	}
}

func TestMigrateKeepsExistingBooleans(t *testing.T) {
	out := Migrate(`{"schemaVersion":1,"showSeconds":true,"tvMode":"yes"}`)

	if !gjson.Get(out, "showSeconds").Bool() {
		t.Fatalf("existing boolean showSeconds=true was overwritten")
	}
	// "yes" is not a boolean, so the backfill replaces it.
	r := gjson.Get(out, "tvMode")
	if !r.IsBool() || r.Bool() {
		t.Fatalf("tvMode = %v, want backfilled false", r.Raw)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	once := Migrate(`{"schemaVersion":1,"language":"hi"}`)
	twice := Migrate(once)
	if once != twice {
		t.Fatalf("migration not idempotent:\nonce:  %s\ntwice: %s", once, twice)
	}
}

func TestMigrateKeepsUnknownFields(t *testing.T) {
	out := Migrate(`{"schemaVersion":1,"caregiverNote":"call at 9"}`)
	if got := gjson.Get(out, "caregiverNote").String(); got != "call at 9" {
		t.Fatalf("unknown field dropped, got %q", got)
	}
}

func TestMigrateRejectsCorruptPayloads(t *testing.T) {
	for _, raw := range []string{"", "not json", `"just a string"`, `[1,2,3]`, `42`} {
		if out := Migrate(raw); out != "" {
			t.Fatalf("Migrate(%q) = %q, want empty", raw, out)
		}
	}
}

func TestMergeRawPreservesDotKeys(t *testing.T) {
	merged := mergeRaw(`{"language":"en"}`, `{"weird.key":"v","language":"ta"}`)
	if got := gjson.Get(merged, `weird\.key`).String(); got != "v" {
		t.Fatalf("dotted key lost: %s", merged)
	}
	if got := gjson.Get(merged, "language").String(); got != "ta" {
		t.Fatalf("saved field should override defaults, got %q", got)
	}
}
