package usecase

import (
	"context"

	"schoolnote/internal/domain/entity"
)

// MessageUsecase drives message translation for parents writing to school.
type MessageUsecase interface {
	Compose(ctx context.Context, input *ComposeMessageInput) (*entity.MessageComposeResult, error)
	Recompose(ctx context.Context) (*entity.MessageComposeResult, error)
	ClearMessage()
}

// --- Input DTOs ---

// ComposeMessageInput defines the message to translate.
type ComposeMessageInput struct {
	Message        string `json:"message" validate:"required"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}
