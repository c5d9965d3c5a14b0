package entity

// MessageComposeRequest is a freeform message a parent wants translated.
type MessageComposeRequest struct {
	Message        string `json:"message"`
	TargetLanguage string `json:"targetLanguage,omitempty"` // Backend enum name; backend default when empty
}

// MessageComposeResult is the translated message.
type MessageComposeResult struct {
	TranslatedMessage string `json:"translatedMessage"`
}
