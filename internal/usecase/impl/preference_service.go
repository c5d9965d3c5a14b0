package impl

import (
	"context"
	"log/slog"
	"strconv"

	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/repository"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	repo   repository.PreferenceRepository
	logger *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(repo repository.PreferenceRepository, logger *slog.Logger) usecase.PreferenceUsecase {
	return &preferenceService{
		repo:   repo,
		logger: logger,
	}
}

// IsFirstLaunch is true until MarkLaunched has been persisted.
func (srv *preferenceService) IsFirstLaunch(ctx context.Context) (bool, error) {
	return srv.getBool(ctx, repository.KeyFirstLaunch, true)
}

// MarkLaunched records that the app has been opened before.
func (srv *preferenceService) MarkLaunched(ctx context.Context) error {
	return srv.set(ctx, repository.KeyFirstLaunch, strconv.FormatBool(false))
}

// IsOnboardingCompleted is false until CompleteOnboarding has been persisted.
func (srv *preferenceService) IsOnboardingCompleted(ctx context.Context) (bool, error) {
	return srv.getBool(ctx, repository.KeyOnboardingCompleted, false)
}

// CompleteOnboarding records that onboarding finished.
func (srv *preferenceService) CompleteOnboarding(ctx context.Context) error {
	return srv.set(ctx, repository.KeyOnboardingCompleted, strconv.FormatBool(true))
}

// Language returns the persisted language code.
func (srv *preferenceService) Language(ctx context.Context) (string, bool, error) {
	value, err := srv.repo.Get(ctx, repository.KeyUserLanguage)
	if errors.Is(err, repository.ErrPreferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(classify(err, domainerrors.ErrPreferenceFailed), "failed to read language")
	}

	return value, true, nil
}

// SetLanguage persists a registered language code.
func (srv *preferenceService) SetLanguage(ctx context.Context, code string) error {
	if !entity.IsRegisteredLanguage(code) {
		return domainerrors.ErrUnsupportedLanguage.WithDetails(code)
	}

	return srv.set(ctx, repository.KeyUserLanguage, code)
}

func (srv *preferenceService) getBool(ctx context.Context, key repository.PreferenceKey, absent bool) (bool, error) {
	value, err := srv.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrPreferenceNotFound) {
		return absent, nil
	}
	if err != nil {
		return absent, errors.Wrapf(classify(err, domainerrors.ErrPreferenceFailed), "failed to read %s", key)
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		srv.logger.Warn("Ignoring malformed preference", slog.String("key", string(key)), slog.String("value", value))

		return absent, nil
	}

	return parsed, nil
}

func (srv *preferenceService) set(ctx context.Context, key repository.PreferenceKey, value string) error {
	if err := srv.repo.Set(ctx, key, value); err != nil {
		srv.logger.Error("Failed to persist preference", slog.String("key", string(key)), slog.Any("error", err))

		return errors.Wrapf(classify(err, domainerrors.ErrPreferenceFailed), "failed to write %s", key)
	}
	srv.logger.Debug("Preference saved", slog.String("key", string(key)))

	return nil
}
