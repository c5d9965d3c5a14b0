package handler

import (
	"log/slog"

	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler lists past translations
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// ListHistory returns the user's translation history, newest first
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	results, err := h.historyUC.FetchHistory(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, results)
}
