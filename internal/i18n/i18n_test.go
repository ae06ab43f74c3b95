package i18n

import (
	"testing"

	"bigclock/internal/assets"
)

func TestTranslateMissReturnsKey(t *testing.T) {
	loc, err := New("en")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := loc.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("T miss = %q, want key echo", got)
	}
	if got := loc.T("weekday.0"); got != "Sunday" {
		t.Fatalf("T hit = %q, want Sunday", got)
	}
}

func TestNewEmptyCodeDefaultsToEnglish(t *testing.T) {
	loc, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if loc.Language() != "en" {
		t.Fatalf("Language = %q, want en", loc.Language())
	}
}

func TestNewUnknownCodeFails(t *testing.T) {
	if _, err := New("xx"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestSetLanguageReplacesDictionary(t *testing.T) {
	loc, err := New("en")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := loc.SetLanguage("hi"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	if loc.Language() != "hi" {
		t.Fatalf("Language = %q, want hi", loc.Language())
	}
	if got := loc.T("weekday.0"); got != "रविवार" {
		t.Fatalf("weekday.0 = %q, want Hindi Sunday", got)
	}
}

func TestSetLanguageFailureKeepsOldDictionary(t *testing.T) {
	loc, err := New("en")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := loc.SetLanguage("xx"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
	if loc.Language() != "en" || loc.T("weekday.0") != "Sunday" {
		t.Fatalf("failed switch should leave active dictionary untouched")
	}
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	loc, err := New("en")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var order []string
	loc.OnLanguageChanged(func(code string) { order = append(order, "first:"+code) })
	loc.OnLanguageChanged(func(code string) { order = append(order, "second:"+code) })

	if err := loc.SetLanguage("ta"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}

	if len(order) != 2 || order[0] != "first:ta" || order[1] != "second:ta" {
		t.Fatalf("unexpected notification order: %v", order)
	}
}

func TestDisplayNameThreeTierFallback(t *testing.T) {
	self := &Localizer{lang: "en", dict: map[string]string{
		"language.self.hi": "हिन्दी",
		"language.hindi":   "Hindi",
		"language.tamil":   "Tamil",
	}}

	// Tier 1: self-name from the active dictionary.
	if got := self.DisplayName(Language{Code: "hi", NameKey: "language.hindi"}); got != "हिन्दी" {
		t.Fatalf("tier 1 = %q, want self-name", got)
	}
	// Tier 2: generic name when no self-name exists.
	if got := self.DisplayName(Language{Code: "ta", NameKey: "language.tamil"}); got != "Tamil" {
		t.Fatalf("tier 2 = %q, want generic name", got)
	}
	// Tier 3: raw code when neither exists.
	if got := self.DisplayName(Language{Code: "zz", NameKey: "language.zz"}); got != "zz" {
		t.Fatalf("tier 3 = %q, want raw code", got)
	}
}

func TestCatalogEntriesAllHaveDictionaries(t *testing.T) {
	for _, lang := range Catalog {
		if !assets.HasDictionary(lang.Code) {
			t.Fatalf("catalog language %q has no dictionary resource", lang.Code)
		}
	}
}
