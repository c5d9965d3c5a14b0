package main

import (
	"context"
	"log/slog"
	"os"

	"schoolnote/config"
	"schoolnote/internal/app"
	"schoolnote/internal/delivery"
	"schoolnote/internal/delivery/api"
	"schoolnote/internal/delivery/api/router/handler"
	"schoolnote/internal/domain/lifecycle"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Controller *app.Controller
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			context.Background,
		),
		app.Module(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewTranslationHandler,
			handler.NewMessageHandler,
			handler.NewProfileHandler,
			handler.NewHistoryHandler,
			handler.NewLocaleHandler,
			handler.NewPreferenceHandler,
			handler.NewStateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer resolves the display language and launch flags before serving.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			bootCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			startup, err := params.Controller.Bootstrap(bootCtx)
			if err != nil {
				return err
			}
			params.Logger.Info("Bootstrapped",
				slog.String("language", startup.Language),
				slog.Bool("first_launch", startup.FirstLaunch),
				slog.Bool("language_onboarding", startup.ShowLanguageOnboarding),
			)

			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
