// Package i18n owns the active translation dictionary and the fixed
// language catalog. Lookup never fails: a missing key is returned as
// itself so the display always shows something.
package i18n

import (
	"encoding/json"
	"fmt"
	"sync"

	"bigclock/internal/assets"
)

// Localizer holds the dictionary for the selected language and tells
// subscribers when the language changes.
type Localizer struct {
	mu          sync.RWMutex
	lang        string
	dict        map[string]string
	subscribers []func(code string)
}

// New loads the dictionary for code. A missing or malformed dictionary
// is an error; the clock cannot render text without its initial one.
func New(code string) (*Localizer, error) {
	if code == "" {
		code = "en"
	}
	dict, err := loadDictionary(code)
	if err != nil {
		return nil, err
	}
	return &Localizer{lang: code, dict: dict}, nil
}

func loadDictionary(code string) (map[string]string, error) {
	data, err := assets.Dictionary(code)
	if err != nil {
		return nil, fmt.Errorf("missing dictionary for %q: %w", code, err)
	}
	var dict map[string]string
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse dictionary for %q: %w", code, err)
	}
	return dict, nil
}

// T returns the translation for key, or key itself when absent.
func (l *Localizer) T(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if v, ok := l.dict[key]; ok {
		return v
	}
	return key
}

// Language returns the active language code.
func (l *Localizer) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// SetLanguage loads the dictionary for code, replaces the active one
// atomically, then notifies subscribers synchronously in registration
// order. On failure the active dictionary is left untouched.
func (l *Localizer) SetLanguage(code string) error {
	dict, err := loadDictionary(code)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.lang = code
	l.dict = dict
	subs := make([]func(string), len(l.subscribers))
	copy(subs, l.subscribers)
	l.mu.Unlock()

	for _, fn := range subs {
		fn(code)
	}
	return nil
}

// OnLanguageChanged registers fn to run after every language change.
// Registrations last for the life of the process.
func (l *Localizer) OnLanguageChanged(fn func(code string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// DisplayName resolves the label for a catalog entry: the active
// dictionary's self-name for that language, else the dictionary's
// generic name, else the raw code.
func (l *Localizer) DisplayName(lang Language) string {
	selfKey := "language.self." + lang.Code
	if name := l.T(selfKey); name != selfKey {
		return name
	}
	if name := l.T(lang.NameKey); name != lang.NameKey {
		return name
	}
	return lang.Code
}
