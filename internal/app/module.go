package app

import (
	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/infra/auth"
	"schoolnote/internal/infra/backend"
	"schoolnote/internal/infra/filesource"
	"schoolnote/internal/infra/locale"
	logs "schoolnote/internal/infra/log"
	"schoolnote/internal/infra/metrics"
	"schoolnote/internal/infra/persistence/sqlite"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"
	"schoolnote/internal/usecase/impl"

	"go.uber.org/fx"
)

// Module provides everything below the delivery layer. The caller supplies *config.Config.
func Module() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Provide(NewController),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		metrics.New,
		sqlite.New,
		newStore,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		sqlite.NewPreferenceRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		fx.Annotate(
			backend.NewClient,
			fx.As(new(service.AuthAPI)),
			fx.As(new(service.TranslationAPI)),
			fx.As(new(service.MessageAPI)),
			fx.As(new(service.ProfileAPI)),
			fx.As(new(service.HistoryAPI)),
		),
		auth.NewJWTInspector,
		filesource.New,
		locale.NewCatalog,
		locale.NewDeviceLocales,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewPreferenceService,
		impl.NewLocaleService,
		newLocalizer,
		impl.NewAuthService,
		impl.NewTokenProvider,
		impl.NewTranslationService,
		impl.NewMessageService,
		impl.NewProfileService,
		impl.NewHistoryService,
	)
}

// newStore starts from the fallback language; Controller.Bootstrap applies the real one.
func newStore() *state.Store {
	return state.NewStore(state.Initial(entity.FallbackLanguage))
}

// newLocalizer lets usecases render error messages in the current language.
func newLocalizer(locale usecase.LocaleUsecase) domainerrors.Localizer {
	return locale
}
