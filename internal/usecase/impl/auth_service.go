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

// authService implements the AuthUsecase interface.
type authService struct {
	api       service.AuthAPI
	inspector service.TokenInspector
	store     *state.Store
	localizer domainerrors.Localizer
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	api service.AuthAPI,
	inspector service.TokenInspector,
	store *state.Store,
	localizer domainerrors.Localizer,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		api:       api,
		inspector: inspector,
		store:     store,
		localizer: localizer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges a provider token for an authenticated session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.Provider.IsLoginProvider() {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(string(input.Provider))
	}

	srv.log(ctx).Info("Logging in", slog.String("provider", string(input.Provider)))

	grant, err := srv.api.Login(ctx, service.LoginCredentials{
		AuthToken: input.AuthToken,
		Provider:  input.Provider,
	})
	if err == nil && grant.AccessToken == "" {
		err = domainerrors.ErrLoginFailed.WithDetails("empty access token")
	}
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.Any("error", err), slog.String("provider", string(input.Provider)))
		srv.store.Update(func(st *state.AppState) {
			st.SetSession(entity.Session{})
			st.User = nil
			st.AuthError = domainerrors.Describe(err, srv.localizer)
		})

		return nil, errors.Wrap(err, "failed to login")
	}

	session := srv.sessionFor(grant.AccessToken, grant.RefreshToken, entity.SessionAuthenticated)
	if grant.User != nil && grant.User.ID != "" {
		session.UserID = grant.User.ID
	}

	srv.store.Update(func(st *state.AppState) {
		st.SetSession(session)
		st.AuthError = ""
		st.User = grant.User.Clone()
		st.ProfileError = ""
	})
	srv.log(ctx).Info("Logged in", slog.String("user_id", session.UserID))

	return grant.User.Clone(), nil
}

// GuestToken returns the held token or requests a guest session in language.
func (srv *authService) GuestToken(ctx context.Context, language string) (string, error) {
	if token := srv.Session().AccessToken; token != "" {
		return token, nil
	}
	if lang, ok := entity.LookupLanguage(language); ok {
		language = lang.BackendName
	}

	srv.log(ctx).Debug("Requesting guest token", slog.String("language", language))

	grant, err := srv.api.Guest(ctx, language)
	if err == nil && grant.AccessToken == "" {
		err = domainerrors.ErrGuestTokenFailed.WithDetails("empty access token")
	}
	if err != nil {
		srv.log(ctx).Error("Guest token request failed", slog.Any("error", err))
		wrapped := errors.Wrap(domainerrors.ErrGuestTokenFailed.WithDetails(domainerrors.InfoOf(err).Message), "failed to get guest token")
		srv.store.Update(func(st *state.AppState) {
			if st.Session.AccessToken == "" {
				st.AuthError = domainerrors.Describe(wrapped, srv.localizer)
			}
		})

		return "", wrapped
	}

	session := srv.sessionFor(grant.AccessToken, "", entity.SessionGuest)
	if grant.UserID != "" {
		session.UserID = grant.UserID
	}

	var token string
	srv.store.Update(func(st *state.AppState) {
		// A login that completed while the guest call was in flight wins.
		if st.Session.AccessToken != "" {
			token = st.Session.AccessToken

			return
		}
		st.SetSession(session)
		st.AuthError = ""
		token = session.AccessToken
	})

	return token, nil
}

// Logout ends the session remotely when possible and always clears it locally.
func (srv *authService) Logout(ctx context.Context) error {
	session := srv.Session()
	srv.log(ctx).Info("Logging out", slog.String("kind", session.Kind.String()))

	if session.AccessToken != "" {
		if err := srv.api.Logout(ctx, session.AccessToken); err != nil {
			srv.log(ctx).Warn("Remote logout failed, clearing local session anyway", slog.Any("error", err))
		}
	}

	srv.store.Update(func(st *state.AppState) {
		st.ClearSession()
		st.AuthError = ""
	})

	return nil
}

// Refresh exchanges the refresh token for a new pair. The outcome is dropped
// when the session was replaced or cleared while the exchange was in flight.
func (srv *authService) Refresh(ctx context.Context) error {
	var (
		session entity.Session
		gen     uint64
	)
	srv.store.Read(func(st *state.AppState) {
		session = st.Session
		gen = st.SessionGen
	})

	var err error
	var pair *service.TokenPair
	if session.RefreshToken == "" {
		err = domainerrors.ErrRefreshTokenMissing
	} else {
		pair, err = srv.api.Refresh(ctx, session.RefreshToken)
		if err == nil && pair.AccessToken == "" {
			err = domainerrors.ErrRefreshFailed.WithDetails("empty access token")
		}
	}

	if err != nil {
		stale := false
		srv.store.Update(func(st *state.AppState) {
			if st.SessionGen != gen {
				stale = true

				return
			}
			st.ClearSession()
			st.AuthError = domainerrors.Describe(err, srv.localizer)
		})
		if stale {
			srv.log(ctx).Debug("Token refresh failed for a replaced session", slog.Any("error", err))
		} else {
			srv.log(ctx).Warn("Token refresh failed, clearing session", slog.Any("error", err))
		}

		return errors.Wrap(err, "failed to refresh token")
	}

	refreshToken := pair.RefreshToken
	if refreshToken == "" {
		refreshToken = session.RefreshToken
	}
	next := srv.sessionFor(pair.AccessToken, refreshToken, entity.SessionAuthenticated)
	if next.UserID == "" {
		next.UserID = session.UserID
	}

	stale := false
	srv.store.Update(func(st *state.AppState) {
		if st.SessionGen != gen {
			stale = true

			return
		}
		st.Session = next
		st.AuthError = ""
	})
	if stale {
		srv.log(ctx).Debug("Discarding refreshed tokens, session changed", slog.String("user_id", next.UserID))

		return errors.Wrap(domainerrors.ErrSessionChanged, "failed to refresh token")
	}
	srv.log(ctx).Debug("Token refreshed", slog.String("user_id", next.UserID))

	return nil
}

// Session returns a copy of the current session.
func (srv *authService) Session() entity.Session {
	var session entity.Session
	srv.store.Read(func(st *state.AppState) {
		session = st.Session
	})

	return session
}

func (srv *authService) sessionFor(accessToken, refreshToken string, kind entity.SessionKind) entity.Session {
	claims := srv.inspector.Inspect(accessToken)

	var session entity.Session
	if kind == entity.SessionGuest {
		session = entity.NewGuestSession(accessToken, claims.Subject)
	} else {
		session = entity.NewAuthenticatedSession(accessToken, refreshToken, claims.Subject)
	}
	session.ExpiresAt = claims.ExpiresAt

	return session
}
