package usecase

import (
	"context"

	"schoolnote/internal/domain/entity"
)

// LocaleUsecase resolves and switches the display language and looks up UI strings.
type LocaleUsecase interface {
	// DetectDeviceLanguage picks a registered code from locale preferences, most preferred first.
	DetectDeviceLanguage(preferences []string) string
	DeviceLanguage() string
	CurrentLanguage() string
	Languages() []entity.Language
	// ChangeLanguage persists code before switching to it.
	ChangeLanguage(ctx context.Context, code string) error
	ShouldShowLanguageOnboarding(ctx context.Context) (bool, error)
	// Initialize makes the persisted choice, or else the device language, current.
	Initialize(ctx context.Context) (string, error)
	Translate(key string) string
	Localize(key, fallback string) string
	Messages() map[string]string
}
