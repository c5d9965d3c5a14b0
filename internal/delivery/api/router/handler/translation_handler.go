package handler

import (
	"io"
	"log/slog"
	"strconv"

	"schoolnote/internal/delivery/api/response"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TranslationHandlerParams holds dependencies for TranslationHandler, injected by Fx.
type TranslationHandlerParams struct {
	fx.In

	TranslationUC usecase.TranslationUsecase
	Logger        *slog.Logger
}

// TranslationHandler drives document translation
type TranslationHandler struct {
	translationUC usecase.TranslationUsecase
	logger        *slog.Logger
}

// NewTranslationHandler is the constructor for TranslationHandler
func NewTranslationHandler(params TranslationHandlerParams) *TranslationHandler {
	return &TranslationHandler{
		translationUC: params.TranslationUC,
		logger:        params.Logger,
	}
}

// SetTabRequest represents the request body for switching the result tab
type SetTabRequest struct {
	Tab entity.TranslationTab `json:"tab" validate:"required"`
}

// TranslateFile accepts a multipart upload with the same fields the backend takes:
// file, targetLanguage and optional fileType, useSimpleLanguage, sourceLanguageHint.
func (h *TranslationHandler) TranslateFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file is required")
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	input := &usecase.TranslateFileInput{
		FileName:           header.Filename,
		Content:            content,
		ContentType:        header.Header.Get(echo.HeaderContentType),
		FileType:           entity.FileType(c.FormValue("fileType")),
		TargetLanguage:     c.FormValue("targetLanguage"),
		SourceLanguageHint: c.FormValue("sourceLanguageHint"),
	}
	if raw := c.FormValue("useSimpleLanguage"); raw != "" {
		simple, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("useSimpleLanguage must be a boolean"))
		}
		input.UseSimpleLanguage = &simple
	}

	result, err := h.translationUC.TranslateFile(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// Retranslate retries the current request
func (h *TranslationHandler) Retranslate(c echo.Context) error {
	result, err := h.translationUC.Retranslate(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// Retarget translates the current document into another language
func (h *TranslationHandler) Retarget(c echo.Context) error {
	var req usecase.RetargetInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid retarget input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.translationUC.Retarget(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// SetActiveTab switches the result tab
func (h *TranslationHandler) SetActiveTab(c echo.Context) error {
	var req SetTabRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tab input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.translationUC.SetActiveTab(req.Tab); err != nil {
		return err
	}

	return response.OK(c, map[string]entity.TranslationTab{"tab": req.Tab})
}

// DismissWarning hides the machine translation warning
func (h *TranslationHandler) DismissWarning(c echo.Context) error {
	h.translationUC.DismissWarning()

	return response.Message(c, "Warning dismissed")
}

// ClearTranslation resets the translation state
func (h *TranslationHandler) ClearTranslation(c echo.Context) error {
	h.translationUC.ClearTranslation()

	return response.Message(c, "Translation cleared")
}
