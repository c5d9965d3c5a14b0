package entity

import "strings"

// Language is one of the registered display/translation languages.
type Language struct {
	Code        string `json:"code"`        // BCP 47 base code used for display and persistence
	BackendName string `json:"backendName"` // Enum name the translation backend expects
	NativeName  string `json:"nativeName"`
}

// FallbackLanguage is used when no device locale matches a registered language.
const FallbackLanguage = "en"

// Languages is the registered set, in the order shown on the language picker.
var Languages = []Language{
	{Code: "ko", BackendName: "KOREAN", NativeName: "한국어"},
	{Code: "en", BackendName: "ENGLISH", NativeName: "English"},
	{Code: "zh", BackendName: "CHINESE", NativeName: "中文"},
	{Code: "vi", BackendName: "VIETNAMESE", NativeName: "Tiếng Việt"},
	{Code: "ja", BackendName: "JAPANESE", NativeName: "日本語"},
	{Code: "th", BackendName: "THAI", NativeName: "ไทย"},
	{Code: "tl", BackendName: "FILIPINO", NativeName: "Filipino"},
	{Code: "ru", BackendName: "RUSSIAN", NativeName: "Русский"},
}

// LookupLanguage accepts either a code ("ko") or a backend name ("KOREAN"), case-insensitively.
func LookupLanguage(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	for _, lang := range Languages {
		if strings.EqualFold(lang.Code, value) || strings.EqualFold(lang.BackendName, value) {
			return lang, true
		}
	}

	return Language{}, false
}

// IsRegisteredLanguage reports whether code is one of the registered codes.
func IsRegisteredLanguage(code string) bool {
	for _, lang := range Languages {
		if lang.Code == code {
			return true
		}
	}

	return false
}

// LanguageCodes returns the registered codes in picker order.
func LanguageCodes() []string {
	codes := make([]string, len(Languages))
	for i, lang := range Languages {
		codes[i] = lang.Code
	}

	return codes
}
