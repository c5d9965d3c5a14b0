package handler

import (
	"log/slog"

	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler exposes launch and onboarding flags
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// PreferencesResponse is the persisted preference snapshot
type PreferencesResponse struct {
	FirstLaunch         bool   `json:"firstLaunch"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	Language            string `json:"language,omitempty"`
}

// GetPreferences returns every stored flag
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	ctx := c.Request().Context()

	firstLaunch, err := h.preferenceUC.IsFirstLaunch(ctx)
	if err != nil {
		return err
	}
	completed, err := h.preferenceUC.IsOnboardingCompleted(ctx)
	if err != nil {
		return err
	}
	language, _, err := h.preferenceUC.Language(ctx)
	if err != nil {
		return err
	}

	return response.OK(c, PreferencesResponse{
		FirstLaunch:         firstLaunch,
		OnboardingCompleted: completed,
		Language:            language,
	})
}

// MarkLaunched records that the app has been opened
func (h *PreferenceHandler) MarkLaunched(c echo.Context) error {
	if err := h.preferenceUC.MarkLaunched(c.Request().Context()); err != nil {
		return err
	}

	return response.Message(c, "Launch recorded")
}

// CompleteOnboarding records that onboarding was finished
func (h *PreferenceHandler) CompleteOnboarding(c echo.Context) error {
	if err := h.preferenceUC.CompleteOnboarding(c.Request().Context()); err != nil {
		return err
	}

	return response.Message(c, "Onboarding completed")
}
