package handler

import (
	"log/slog"

	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocaleHandlerParams holds dependencies for LocaleHandler, injected by Fx.
type LocaleHandlerParams struct {
	fx.In

	LocaleUC usecase.LocaleUsecase
	Logger   *slog.Logger
}

// LocaleHandler exposes the UI language and its message catalog
type LocaleHandler struct {
	localeUC usecase.LocaleUsecase
	logger   *slog.Logger
}

// NewLocaleHandler is the constructor for LocaleHandler
func NewLocaleHandler(params LocaleHandlerParams) *LocaleHandler {
	return &LocaleHandler{
		localeUC: params.LocaleUC,
		logger:   params.Logger,
	}
}

// LocaleResponse describes the active and supported languages
type LocaleResponse struct {
	Current   string            `json:"current"`
	Device    string            `json:"device"`
	Languages []entity.Language `json:"languages"`
}

// ChangeLanguageRequest represents the request body for switching the UI language
type ChangeLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// DetectLanguageRequest carries BCP 47 preferences, most preferred first
type DetectLanguageRequest struct {
	Preferences []string `json:"preferences"`
}

// GetLocale returns the current language and the supported set
func (h *LocaleHandler) GetLocale(c echo.Context) error {
	return response.OK(c, LocaleResponse{
		Current:   h.localeUC.CurrentLanguage(),
		Device:    h.localeUC.DeviceLanguage(),
		Languages: h.localeUC.Languages(),
	})
}

// ChangeLanguage switches and persists the UI language
func (h *LocaleHandler) ChangeLanguage(c echo.Context) error {
	var req ChangeLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid language input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.localeUC.ChangeLanguage(c.Request().Context(), req.Language); err != nil {
		return err
	}

	return response.OK(c, map[string]string{"language": h.localeUC.CurrentLanguage()})
}

// DetectLanguage resolves a supported language from the given preferences
func (h *LocaleHandler) DetectLanguage(c echo.Context) error {
	var req DetectLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid preference list")
	}

	return response.OK(c, map[string]string{"language": h.localeUC.DetectDeviceLanguage(req.Preferences)})
}

// GetOnboarding reports whether the language picker should be shown
func (h *LocaleHandler) GetOnboarding(c echo.Context) error {
	show, err := h.localeUC.ShouldShowLanguageOnboarding(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, map[string]bool{"show": show})
}

// GetMessages returns the UI strings for the current language
func (h *LocaleHandler) GetMessages(c echo.Context) error {
	return response.OK(c, map[string]any{
		"language": h.localeUC.CurrentLanguage(),
		"messages": h.localeUC.Messages(),
	})
}
