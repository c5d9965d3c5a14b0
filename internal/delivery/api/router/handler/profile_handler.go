package handler

import (
	"log/slog"

	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler exposes the user and child records
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile loads the user from the backend
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := h.profileUC.FetchUser(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// UpdateProfile patches the user's own fields
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req service.UserPatch
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateUser(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// AddChild registers a child
func (h *ProfileHandler) AddChild(c echo.Context) error {
	var req usecase.AddChildInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.profileUC.AddChild(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// UpdateChild patches one child
func (h *ProfileHandler) UpdateChild(c echo.Context) error {
	var req service.ChildPatch
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateChild(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// RemoveChild deletes one child
func (h *ProfileHandler) RemoveChild(c echo.Context) error {
	user, err := h.profileUC.RemoveChild(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, user)
}
