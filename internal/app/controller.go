// Package app composes the usecases into the single controller the
// companion API and the command line drive.
package app

import (
	"context"
	"log/slog"
	"strings"

	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// ControllerParams holds dependencies for Controller, injected by Fx.
type ControllerParams struct {
	fx.In

	Store       *state.Store
	Auth        usecase.AuthUsecase
	Translation usecase.TranslationUsecase
	Message     usecase.MessageUsecase
	Profile     usecase.ProfileUsecase
	Locale      usecase.LocaleUsecase
	Preference  usecase.PreferenceUsecase
	History     usecase.HistoryUsecase
	Files       service.FileSource
	Logger      *slog.Logger
}

// Controller owns the application state and exposes every user action.
// The usecases are embedded so their methods are the controller's actions.
type Controller struct {
	usecase.AuthUsecase
	usecase.TranslationUsecase
	usecase.MessageUsecase
	usecase.ProfileUsecase
	usecase.LocaleUsecase
	usecase.PreferenceUsecase
	usecase.HistoryUsecase

	store  *state.Store
	files  service.FileSource
	logger *slog.Logger
}

// NewController is the constructor for Controller.
func NewController(params ControllerParams) *Controller {
	return &Controller{
		AuthUsecase:        params.Auth,
		TranslationUsecase: params.Translation,
		MessageUsecase:     params.Message,
		ProfileUsecase:     params.Profile,
		LocaleUsecase:      params.Locale,
		PreferenceUsecase:  params.Preference,
		HistoryUsecase:     params.History,
		store:              params.Store,
		files:              params.Files,
		logger:             params.Logger,
	}
}

// Snapshot returns a deep copy of the current state.
func (c *Controller) Snapshot() state.AppState {
	return c.store.Snapshot()
}

// Subscribe streams state changes, starting with the current state.
func (c *Controller) Subscribe() (<-chan state.AppState, func()) {
	return c.store.Subscribe()
}

// Startup describes what the first screen should show.
type Startup struct {
	Language               string `json:"language"`
	FirstLaunch            bool   `json:"firstLaunch"`
	ShowLanguageOnboarding bool   `json:"showLanguageOnboarding"`
}

// Bootstrap applies the saved or device language and records the launch.
func (c *Controller) Bootstrap(ctx context.Context) (*Startup, error) {
	lang, err := c.Initialize(ctx)
	if err != nil {
		return nil, err
	}

	showOnboarding, err := c.ShouldShowLanguageOnboarding(ctx)
	if err != nil {
		return nil, err
	}

	firstLaunch, err := c.IsFirstLaunch(ctx)
	if err != nil {
		return nil, err
	}
	if firstLaunch {
		if err := c.MarkLaunched(ctx); err != nil {
			return nil, err
		}
	}

	return &Startup{
		Language:               lang,
		FirstLaunch:            firstLaunch,
		ShowLanguageOnboarding: showOnboarding,
	}, nil
}

// TranslateLocationInput names a document by path or bucket URL instead of carrying its bytes.
type TranslateLocationInput struct {
	Location           string
	TargetLanguage     string
	UseSimpleLanguage  *bool
	SourceLanguageHint string
}

// TranslateLocation reads the document through the file source and translates it.
func (c *Controller) TranslateLocation(ctx context.Context, input *TranslateLocationInput) (*entity.TranslationResult, error) {
	file, err := c.files.Open(ctx, strings.TrimSpace(input.Location))
	if err != nil {
		return nil, err
	}

	return c.TranslateFile(ctx, &usecase.TranslateFileInput{
		FileName:           file.Name,
		Content:            file.Content,
		ContentType:        file.ContentType,
		TargetLanguage:     input.TargetLanguage,
		UseSimpleLanguage:  input.UseSimpleLanguage,
		SourceLanguageHint: input.SourceLanguageHint,
	})
}

// Dashboard is the signed-in landing data.
type Dashboard struct {
	User    *entity.User               `json:"user"`
	History []entity.TranslationResult `json:"history"`
}

// Dashboard loads the user and the translation history concurrently.
func (c *Controller) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := c.FetchUser(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}
		dashboard.User = user

		return nil
	})
	g.Go(func() error {
		history, err := c.FetchHistory(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to load history")
		}
		dashboard.History = history

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard, nil
}
