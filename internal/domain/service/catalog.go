package service

// MessageCatalog provides the UI strings for each registered language.
type MessageCatalog interface {
	// Lookup returns the message stored under the dotted key for lang.
	Lookup(lang, key string) (string, bool)
	// Messages returns every key of lang flattened to dotted paths.
	Messages(lang string) map[string]string
}

// DeviceLocales reports the device's preferred locales, most preferred first.
type DeviceLocales interface {
	Preferred() []string
}
