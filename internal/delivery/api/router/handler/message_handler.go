package handler

import (
	"log/slog"

	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler drives message composition
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// Compose translates a message for the teacher
func (h *MessageHandler) Compose(c echo.Context) error {
	var req usecase.ComposeMessageInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.messageUC.Compose(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// Recompose retries the current message
func (h *MessageHandler) Recompose(c echo.Context) error {
	result, err := h.messageUC.Recompose(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// ClearMessage resets the message state
func (h *MessageHandler) ClearMessage(c echo.Context) error {
	h.messageUC.ClearMessage()

	return response.Message(c, "Message cleared")
}
