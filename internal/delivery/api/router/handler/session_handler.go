package handler

import (
	"log/slog"
	"time"

	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	LocaleUC usecase.LocaleUsecase
	Logger   *slog.Logger
}

// SessionHandler exposes login, guest sessions, logout and refresh
type SessionHandler struct {
	authUC   usecase.AuthUsecase
	localeUC usecase.LocaleUsecase
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		authUC:   params.AuthUC,
		localeUC: params.LocaleUC,
		logger:   params.Logger,
	}
}

// SessionResponse never carries the tokens themselves.
type SessionResponse struct {
	Kind          string     `json:"kind"`
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"userId,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// GuestRequest represents the request body for starting a guest session
type GuestRequest struct {
	Language string `json:"language" validate:"omitempty,min=2,max=12"`
}

func toSessionResponse(s entity.Session) SessionResponse {
	resp := SessionResponse{
		Kind:          s.Kind.String(),
		Authenticated: s.IsAuthenticated(),
		UserID:        s.UserID,
	}
	if !s.ExpiresAt.IsZero() {
		expiresAt := s.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}

	return resp
}

// GetSession returns the current session
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.OK(c, toSessionResponse(h.authUC.Session()))
}

// Login exchanges a provider token for a session
func (h *SessionHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{
		"session": toSessionResponse(h.authUC.Session()),
		"user":    user,
	})
}

// Guest starts a guest session in the requested or current display language
func (h *SessionHandler) Guest(c echo.Context) error {
	var req GuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid guest input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lang := req.Language
	if lang == "" {
		lang = h.localeUC.CurrentLanguage()
	}

	if _, err := h.authUC.GuestToken(c.Request().Context(), lang); err != nil {
		return err
	}

	return response.OK(c, toSessionResponse(h.authUC.Session()))
}

// Logout clears the session; it never fails
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	return response.Message(c, "Logged out")
}

// Refresh exchanges the refresh token for a new pair
func (h *SessionHandler) Refresh(c echo.Context) error {
	if err := h.authUC.Refresh(c.Request().Context()); err != nil {
		return err
	}

	return response.OK(c, toSessionResponse(h.authUC.Session()))
}
