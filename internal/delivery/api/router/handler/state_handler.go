package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"schoolnote/internal/app"
	"schoolnote/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StateHandlerParams holds dependencies for StateHandler, injected by Fx.
type StateHandlerParams struct {
	fx.In

	Controller *app.Controller
	Logger     *slog.Logger
}

// StateHandler exposes the application state the UI renders from
type StateHandler struct {
	controller *app.Controller
	logger     *slog.Logger
}

// NewStateHandler is the constructor for StateHandler
func NewStateHandler(params StateHandlerParams) *StateHandler {
	return &StateHandler{
		controller: params.Controller,
		logger:     params.Logger,
	}
}

// GetState returns the current snapshot
func (h *StateHandler) GetState(c echo.Context) error {
	return response.OK(c, h.controller.Snapshot())
}

// StreamState sends the current state, then every change, as server-sent events
// until the client leaves.
func (h *StateHandler) StreamState(c echo.Context) error {
	updates, cancel := h.controller.Subscribe()
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeEvent(res, snapshot); err != nil {
				h.logger.Debug("state stream closed", slog.Any("error", err))

				return nil
			}
		}
	}
}

// GetDashboard loads the user and the history together
func (h *StateHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.controller.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, dashboard)
}

func writeEvent(res *echo.Response, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode state event")
	}
	if _, err := fmt.Fprintf(res, "data: %s\n\n", data); err != nil {
		return errors.Wrap(err, "failed to write state event")
	}
	res.Flush()

	return nil
}
