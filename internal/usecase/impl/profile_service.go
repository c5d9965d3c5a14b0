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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	api       service.ProfileAPI
	store     *state.Store
	localizer domainerrors.Localizer
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	api service.ProfileAPI,
	store *state.Store,
	localizer domainerrors.Localizer,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		api:       api,
		store:     store,
		localizer: localizer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchUser loads the signed-in user.
func (srv *profileService) FetchUser(ctx context.Context) (*entity.User, error) {
	srv.log(ctx).Debug("Fetching user")

	return srv.run(ctx, "fetch user", func(token string) (*entity.User, error) {
		return srv.api.GetUser(ctx, token)
	})
}

// UpdateUser applies a partial update to the user.
func (srv *profileService) UpdateUser(ctx context.Context, patch *service.UserPatch) (*entity.User, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	if patch.Language != nil && !entity.IsRegisteredLanguage(*patch.Language) {
		return nil, domainerrors.ErrUnsupportedLanguage.WithDetails(*patch.Language)
	}
	srv.log(ctx).Info("Updating user")

	return srv.run(ctx, "update user", func(token string) (*entity.User, error) {
		return srv.api.UpdateUser(ctx, token, *patch)
	})
}

// AddChild registers a child for the user.
func (srv *profileService) AddChild(ctx context.Context, input *usecase.AddChildInput) (*entity.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Adding child", slog.String("school", input.School))

	child := entity.Child{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		School:    input.School,
		Grade:     input.Grade,
		ClassName: input.ClassName,
	}

	return srv.run(ctx, "add child", func(token string) (*entity.User, error) {
		return srv.api.AddChild(ctx, token, child)
	})
}

// RemoveChild deletes a child. Ids unknown to the held user are ignored locally.
func (srv *profileService) RemoveChild(ctx context.Context, childID string) (*entity.User, error) {
	var held *entity.User
	srv.store.Read(func(st *state.AppState) {
		held = st.User.Clone()
	})
	if held != nil && held.FindChild(childID) < 0 {
		srv.log(ctx).Debug("Child not held, nothing to remove", slog.String("child_id", childID))

		return held, nil
	}
	srv.log(ctx).Info("Removing child", slog.String("child_id", childID))

	return srv.run(ctx, "remove child", func(token string) (*entity.User, error) {
		return srv.api.RemoveChild(ctx, token, childID)
	})
}

// UpdateChild applies a partial update to one child.
func (srv *profileService) UpdateChild(ctx context.Context, childID string, patch *service.ChildPatch) (*entity.User, error) {
	if childID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("child id is required")
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Updating child", slog.String("child_id", childID))

	return srv.run(ctx, "update child", func(token string) (*entity.User, error) {
		return srv.api.UpdateChild(ctx, token, childID, *patch)
	})
}

// run gates call on a held token and stores the user the backend answers with.
// Answers for a session that was cleared or replaced in the meantime are dropped.
func (srv *profileService) run(ctx context.Context, action string, call func(token string) (*entity.User, error)) (*entity.User, error) {
	var (
		token string
		gen   uint64
	)
	srv.store.Read(func(st *state.AppState) {
		token = st.Session.AccessToken
		gen = st.SessionGen
	})

	var (
		user *entity.User
		err  error
	)
	if token == "" {
		err = domainerrors.ErrNoAccessToken
	} else {
		user, err = call(token)
		if err == nil && user == nil {
			err = domainerrors.ErrProfileFailed.WithDetails("empty user")
		}
	}

	stale := false
	if err != nil {
		err = classify(err, domainerrors.ErrProfileFailed)
		srv.log(ctx).Error("Profile request failed", slog.String("action", action), slog.Any("error", err))
		srv.store.Update(func(st *state.AppState) {
			if st.SessionGen != gen {
				stale = true

				return
			}
			st.ProfileError = domainerrors.Describe(err, srv.localizer)
		})

		return nil, errors.Wrapf(err, "failed to %s", action)
	}

	srv.store.Update(func(st *state.AppState) {
		if st.SessionGen != gen {
			stale = true

			return
		}
		st.User = user.Clone()
		st.ProfileError = ""
	})
	if stale {
		srv.log(ctx).Debug("Discarding profile response, session changed", slog.String("action", action))

		return nil, errors.Wrapf(domainerrors.ErrSessionChanged, "failed to %s", action)
	}

	return user.Clone(), nil
}
