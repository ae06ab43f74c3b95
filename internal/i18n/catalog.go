package i18n

// Language pairs a code with the dictionary key of its generic name.
type Language struct {
	Code    string
	NameKey string
}

// Catalog is the fixed, ordered list of selectable languages. The order
// is what the language selector shows.
var Catalog = []Language{
	{Code: "en", NameKey: "language.english"},
	{Code: "gu", NameKey: "language.gujarati"},
	{Code: "hi", NameKey: "language.hindi"},
	{Code: "bn", NameKey: "language.bengali"},
	{Code: "te", NameKey: "language.telugu"},
	{Code: "mr", NameKey: "language.marathi"},
	{Code: "ta", NameKey: "language.tamil"},
}
