package middleware

import (
	"log/slog"

	"schoolnote/internal/delivery/api/response"
	deliverycontext "schoolnote/internal/delivery/context"
	domainerrors "schoolnote/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	localizer domainerrors.Localizer
	logger    *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(localizer domainerrors.Localizer, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		localizer: localizer,
		logger:    logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// AppErrors are rendered in the current display language.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info := domainerrors.InfoOf(err)
		message := m.localizer.Localize("errors."+info.Code, info.Message)

		var details any
		if info.Details != "" {
			details = info.Details
		}
		if appErr.HTTPCode() >= 500 {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Request failed",
				slog.String("code", info.Code),
				slog.Any("error", err),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), info.Code, message, details)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR",
		m.localizer.Localize("errors.INTERNAL_ERROR", domainerrors.ErrInternalError.Message()))
}
