// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"schoolnote/internal/domain/entity"
)

// AuthUsecase owns the session lifecycle.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)
	// GuestToken returns the held access token, or mints a guest session when none is held.
	GuestToken(ctx context.Context, language string) (string, error)
	// Logout always clears the local session, whatever the backend answers.
	Logout(ctx context.Context) error
	// Refresh exchanges the refresh token; any failure clears the session.
	Refresh(ctx context.Context) error
	Session() entity.Session
}

// --- Input DTOs ---

// LoginInput defines the data required to exchange a provider token for a session.
type LoginInput struct {
	AuthToken string              `json:"authToken" validate:"required"`
	Provider  entity.ProviderType `json:"provider" validate:"required"`
}
