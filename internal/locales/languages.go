package locales

// Language describes one selectable bot language.
type Language struct {
	Code string
	Name string
	Flag string
}

// supported lists the languages offered by the /lng keyboard, in display order.
var supported = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "pl", Name: "Polish", Flag: "🇵🇱"},
	{Code: "sr", Name: "Serbian", Flag: "🇷🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "it", Name: "Italian", Flag: "🇮🇹"},
}

// Supported returns the selectable languages in display order.
func Supported() []Language {
	return supported
}

// IsSupported reports whether code is one of the selectable languages.
func IsSupported(code string) bool {
	for _, l := range supported {
		if l.Code == code {
			return true
		}
	}
	return false
}

// LanguageName returns the display name for a language code, or the code
// itself when it is not a supported language.
func LanguageName(code string) string {
	for _, l := range supported {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
