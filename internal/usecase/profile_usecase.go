package usecase

import (
	"context"

	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"
)

// ProfileUsecase defines the user and child profile operations.
// Every operation requires a held access token.
type ProfileUsecase interface {
	FetchUser(ctx context.Context) (*entity.User, error)
	UpdateUser(ctx context.Context, patch *service.UserPatch) (*entity.User, error)
	AddChild(ctx context.Context, input *AddChildInput) (*entity.User, error)
	RemoveChild(ctx context.Context, childID string) (*entity.User, error)
	UpdateChild(ctx context.Context, childID string, patch *service.ChildPatch) (*entity.User, error)
}

// --- Input DTOs ---

// AddChildInput defines the data required to register a child.
type AddChildInput struct {
	Name      string `json:"name" validate:"required,max=50"`
	BirthDate string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	School    string `json:"school" validate:"required,max=100"`
	Grade     int    `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
	ClassName string `json:"className,omitempty"`
}
