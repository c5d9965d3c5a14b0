// Package service defines the ports the usecases call out through.
package service

import (
	"context"

	"schoolnote/internal/domain/entity"
)

// GuestGrant is the anonymous session issued by the backend.
type GuestGrant struct {
	AccessToken string
	UserID      string
}

// LoginCredentials is a provider token exchanged for a backend session.
type LoginCredentials struct {
	AuthToken string
	Provider  entity.ProviderType
}

// LoginGrant is the backend session obtained through a provider login.
type LoginGrant struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// TokenPair is the outcome of a refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RetranslateInput asks the backend to translate an already uploaded file again.
type RetranslateInput struct {
	OriginalFileName   string
	TargetLanguage     string
	UseSimpleLanguage  *bool
	SourceLanguageHint string
}

// UserPatch carries the user fields to change; nil fields are left untouched.
type UserPatch struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Language *string `json:"language,omitempty"`
}

// ChildPatch carries the child fields to change; nil fields are left untouched.
type ChildPatch struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	BirthDate *string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	School    *string `json:"school,omitempty" validate:"omitempty,min=1,max=100"`
	Grade     *int    `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
	ClassName *string `json:"className,omitempty"`
}

// AuthAPI is the session part of the backend contract.
type AuthAPI interface {
	Guest(ctx context.Context, language string) (*GuestGrant, error)
	Login(ctx context.Context, credentials LoginCredentials) (*LoginGrant, error)
	Logout(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// TranslationAPI is the document translation part of the backend contract.
type TranslationAPI interface {
	// Translate uploads the file as multipart form data.
	Translate(ctx context.Context, accessToken string, req *entity.TranslationRequest) (*entity.TranslationResult, error)
	// Retranslate reuses a file the backend already holds.
	Retranslate(ctx context.Context, accessToken string, input RetranslateInput) (*entity.TranslationResult, error)
}

// MessageAPI is the message compose part of the backend contract.
type MessageAPI interface {
	Compose(ctx context.Context, accessToken string, req entity.MessageComposeRequest) (*entity.MessageComposeResult, error)
}

// ProfileAPI is the user and child part of the backend contract.
// Every mutation answers with the full user record.
type ProfileAPI interface {
	GetUser(ctx context.Context, accessToken string) (*entity.User, error)
	UpdateUser(ctx context.Context, accessToken string, patch UserPatch) (*entity.User, error)
	AddChild(ctx context.Context, accessToken string, child entity.Child) (*entity.User, error)
	UpdateChild(ctx context.Context, accessToken, childID string, patch ChildPatch) (*entity.User, error)
	RemoveChild(ctx context.Context, accessToken, childID string) (*entity.User, error)
}

// HistoryAPI lists past translations.
type HistoryAPI interface {
	ListHistory(ctx context.Context, accessToken string) ([]entity.HistoryRecord, error)
}
