package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	api       service.MessageAPI
	tokens    service.TokenProvider
	store     *state.Store
	localizer domainerrors.Localizer
	logger    *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(
	api service.MessageAPI,
	tokens service.TokenProvider,
	store *state.Store,
	localizer domainerrors.Localizer,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		api:       api,
		tokens:    tokens,
		store:     store,
		localizer: localizer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Compose translates a message, minting a guest session first when no token is held.
func (srv *messageService) Compose(ctx context.Context, input *usecase.ComposeMessageInput) (*entity.MessageComposeResult, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is empty")
	}

	req := entity.MessageComposeRequest{Message: message}
	if input.TargetLanguage != "" {
		lang, ok := entity.LookupLanguage(input.TargetLanguage)
		if !ok {
			return nil, domainerrors.ErrUnsupportedLanguage.WithDetails(input.TargetLanguage)
		}
		req.TargetLanguage = lang.BackendName
	}

	srv.log(ctx).Info("Composing message",
		slog.Int("length", len([]rune(message))),
		slog.String("target_language", req.TargetLanguage),
	)

	seq := srv.begin(req)

	token, err := srv.tokens.Token(ctx)
	if err != nil {
		return nil, srv.finish(ctx, seq, nil, err)
	}

	result, err := srv.api.Compose(ctx, token, req)
	if err != nil {
		return nil, srv.finish(ctx, seq, nil, err)
	}

	return result, srv.finish(ctx, seq, result, nil)
}

// Recompose repeats the stored message with the held token.
func (srv *messageService) Recompose(ctx context.Context) (*entity.MessageComposeResult, error) {
	var (
		req   *entity.MessageComposeRequest
		token string
	)
	srv.store.Read(func(st *state.AppState) {
		if st.Message.Request != nil {
			copied := *st.Message.Request
			req = &copied
		}
		token = st.Session.AccessToken
	})
	if req == nil {
		return nil, domainerrors.ErrNoCurrentRequest
	}

	seq := srv.begin(*req)
	if token == "" {
		return nil, srv.finish(ctx, seq, nil, domainerrors.ErrNoAccessToken)
	}

	result, err := srv.api.Compose(ctx, token, *req)
	if err != nil {
		return nil, srv.finish(ctx, seq, nil, err)
	}

	return result, srv.finish(ctx, seq, result, nil)
}

// ClearMessage resets the bucket; responses still in flight are dropped.
func (srv *messageService) ClearMessage() {
	srv.store.Update(func(st *state.AppState) {
		st.ResetMessage()
	})
}

func (srv *messageService) begin(req entity.MessageComposeRequest) uint64 {
	var seq uint64
	srv.store.Update(func(st *state.AppState) {
		st.Message.Seq++
		seq = st.Message.Seq
		st.Message.Request = &req
		st.Message.Loading = true
		st.Message.Error = ""
	})

	return seq
}

func (srv *messageService) finish(ctx context.Context, seq uint64, result *entity.MessageComposeResult, err error) error {
	if err != nil {
		err = classify(err, domainerrors.ErrComposeFailed)
	}

	stale := false
	srv.store.Update(func(st *state.AppState) {
		if st.Message.Seq != seq {
			stale = true

			return
		}
		st.Message.Loading = false
		if err != nil {
			st.Message.Error = domainerrors.Describe(err, srv.localizer)

			return
		}
		copied := *result
		st.Message.Result = &copied
		st.Message.Error = ""
	})

	if stale {
		srv.log(ctx).Debug("Discarding superseded compose response", slog.Uint64("seq", seq))
	}
	if err != nil {
		srv.log(ctx).Error("Message compose failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to compose message")
	}

	return nil
}
