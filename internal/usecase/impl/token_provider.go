package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"golang.org/x/sync/singleflight"
)

// tokenProvider hands out the held token or mints a guest one in the display language.
type tokenProvider struct {
	auth   usecase.AuthUsecase
	store  *state.Store
	group  singleflight.Group
	logger *slog.Logger
}

// NewTokenProvider is the constructor for tokenProvider.
func NewTokenProvider(auth usecase.AuthUsecase, store *state.Store, logger *slog.Logger) service.TokenProvider {
	return &tokenProvider{
		auth:   auth,
		store:  store,
		logger: logger,
	}
}

// Token returns a usable access token. Concurrent callers share one guest or
// refresh request. An expired token is refreshed when a refresh token is held,
// otherwise it is dropped and a new guest token is minted.
func (p *tokenProvider) Token(ctx context.Context) (string, error) {
	var (
		session  entity.Session
		language string
		gen      uint64
	)
	p.store.Read(func(st *state.AppState) {
		session = st.Session
		language = st.Language
		gen = st.SessionGen
	})
	if session.AccessToken != "" && !session.Expired(time.Now()) {
		return session.AccessToken, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	// The shared call outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)

	if session.AccessToken != "" && session.RefreshToken != "" {
		logger.Debug("Access token expired, refreshing", slog.Time("expires_at", session.ExpiresAt))

		value, err, _ := p.group.Do("refresh", func() (any, error) {
			if err := p.auth.Refresh(shared); err != nil {
				return "", err
			}

			return p.auth.Session().AccessToken, nil
		})
		if err != nil {
			return "", err
		}

		return value.(string), nil
	}

	if session.AccessToken != "" {
		logger.Debug("Guest token expired, minting a new one", slog.Time("expires_at", session.ExpiresAt))
		p.store.Update(func(st *state.AppState) {
			if st.SessionGen == gen {
				st.SetSession(entity.Session{})
			}
		})
	} else {
		logger.Debug("No access token held, bootstrapping guest session")
	}

	value, err, _ := p.group.Do("guest", func() (any, error) {
		return p.auth.GuestToken(shared, language)
	})
	if err != nil {
		return "", err
	}

	return value.(string), nil
}
