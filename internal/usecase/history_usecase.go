package usecase

import (
	"context"

	"schoolnote/internal/domain/entity"
)

// HistoryUsecase loads past translations of the signed-in user.
type HistoryUsecase interface {
	FetchHistory(ctx context.Context) ([]entity.TranslationResult, error)
}
