package usecase

import "context"

// PreferenceUsecase reads and writes the persisted device-local settings.
type PreferenceUsecase interface {
	IsFirstLaunch(ctx context.Context) (bool, error)
	MarkLaunched(ctx context.Context) error
	IsOnboardingCompleted(ctx context.Context) (bool, error)
	CompleteOnboarding(ctx context.Context) error
	// Language returns the persisted language and whether one was ever saved.
	Language(ctx context.Context) (string, bool, error)
	SetLanguage(ctx context.Context, code string) error
}
