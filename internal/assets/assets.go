// Package assets embeds the static resources the clock cannot run
// without: the baseline configuration document and one translation
// dictionary per supported language.
package assets

import "embed"

//go:embed defaults.json languages
var resources embed.FS

// Defaults returns a fresh copy of the baseline configuration document.
func Defaults() ([]byte, error) {
	return resources.ReadFile("defaults.json")
}

// Dictionary returns a fresh copy of the translation dictionary for code.
func Dictionary(code string) ([]byte, error) {
	return resources.ReadFile("languages/" + code + ".json")
}

// HasDictionary reports whether a dictionary resource exists for code.
func HasDictionary(code string) bool {
	_, err := resources.ReadFile("languages/" + code + ".json")
	return err == nil
}
