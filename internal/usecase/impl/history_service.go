package impl

import (
	"context"
	"log/slog"

	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
)

// historyService implements the HistoryUsecase interface.
type historyService struct {
	api       service.HistoryAPI
	store     *state.Store
	localizer domainerrors.Localizer
	logger    *slog.Logger
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(
	api service.HistoryAPI,
	store *state.Store,
	localizer domainerrors.Localizer,
	logger *slog.Logger,
) usecase.HistoryUsecase {
	return &historyService{
		api:       api,
		store:     store,
		localizer: localizer,
		logger:    logger,
	}
}

// FetchHistory loads past translations. A held token is required.
func (srv *historyService) FetchHistory(ctx context.Context) ([]entity.TranslationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		token string
		gen   uint64
	)
	srv.store.Read(func(st *state.AppState) {
		token = st.Session.AccessToken
		gen = st.SessionGen
	})

	var (
		records []entity.HistoryRecord
		err     error
	)
	if token == "" {
		err = domainerrors.ErrNoAccessToken
	} else {
		records, err = srv.api.ListHistory(ctx, token)
	}
	if err != nil {
		err = classify(err, domainerrors.ErrHistoryFailed)
		logger.Error("Failed to fetch history", slog.Any("error", err))
		srv.store.Update(func(st *state.AppState) {
			if st.SessionGen == gen {
				st.HistoryError = domainerrors.Describe(err, srv.localizer)
			}
		})

		return nil, errors.Wrap(err, "failed to fetch history")
	}

	results := MapHistoryToTranslationResults(records)
	stale := false
	srv.store.Update(func(st *state.AppState) {
		if st.SessionGen != gen {
			stale = true

			return
		}
		st.History = results
		st.HistoryError = ""
	})
	if stale {
		logger.Debug("Discarding history response, session changed")

		return nil, errors.Wrap(domainerrors.ErrSessionChanged, "failed to fetch history")
	}
	logger.Debug("Fetched history", slog.Int("count", len(results)))

	return MapHistoryToTranslationResults(records), nil
}
