package usecase

import (
	"context"

	"schoolnote/internal/domain/entity"
)

// TranslationUsecase drives document translation attempts.
type TranslationUsecase interface {
	TranslateFile(ctx context.Context, input *TranslateFileInput) (*entity.TranslationResult, error)
	// Retranslate repeats the stored request with the held token.
	Retranslate(ctx context.Context) (*entity.TranslationResult, error)
	// Retarget changes the stored target language and translates again.
	Retarget(ctx context.Context, input *RetargetInput) (*entity.TranslationResult, error)
	ClearTranslation()
	SetActiveTab(tab entity.TranslationTab) error
	DismissWarning()
}

// --- Input DTOs ---

// TranslateFileInput defines the file and options of one translation.
type TranslateFileInput struct {
	FileName           string          `json:"fileName" validate:"required"`
	Content            []byte          `json:"-"`
	ContentType        string          `json:"contentType,omitempty"`
	FileType           entity.FileType `json:"fileType,omitempty"` // Derived from FileName when empty
	TargetLanguage     string          `json:"targetLanguage" validate:"required"`
	UseSimpleLanguage  *bool           `json:"useSimpleLanguage,omitempty"`
	SourceLanguageHint string          `json:"sourceLanguageHint,omitempty"`
}

// RetargetInput defines the new target of the stored request.
type RetargetInput struct {
	TargetLanguage    string `json:"targetLanguage" validate:"required"`
	UseSimpleLanguage *bool  `json:"useSimpleLanguage,omitempty"`
}
