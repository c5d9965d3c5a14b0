// Package router contains routing and server setup for the companion API.
package router

import (
	"schoolnote/internal/delivery/api/router/handler"
	"schoolnote/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler     *handler.SessionHandler
	TranslationHandler *handler.TranslationHandler
	MessageHandler     *handler.MessageHandler
	ProfileHandler     *handler.ProfileHandler
	HistoryHandler     *handler.HistoryHandler
	LocaleHandler      *handler.LocaleHandler
	PreferenceHandler  *handler.PreferenceHandler
	StateHandler       *handler.StateHandler
	Metrics            *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler     *handler.SessionHandler
	translationHandler *handler.TranslationHandler
	messageHandler     *handler.MessageHandler
	profileHandler     *handler.ProfileHandler
	historyHandler     *handler.HistoryHandler
	localeHandler      *handler.LocaleHandler
	preferenceHandler  *handler.PreferenceHandler
	stateHandler       *handler.StateHandler
	metrics            *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:     params.SessionHandler,
		translationHandler: params.TranslationHandler,
		messageHandler:     params.MessageHandler,
		profileHandler:     params.ProfileHandler,
		historyHandler:     params.HistoryHandler,
		localeHandler:      params.LocaleHandler,
		preferenceHandler:  params.PreferenceHandler,
		stateHandler:       params.StateHandler,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	apiV1 := e.Group("/api/v1")

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/guest", r.sessionHandler.Guest)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.POST("/refresh", r.sessionHandler.Refresh)
	}

	translationsGroup := apiV1.Group("/translations")
	{
		translationsGroup.POST("", r.translationHandler.TranslateFile)
		translationsGroup.DELETE("", r.translationHandler.ClearTranslation)
		translationsGroup.POST("/retry", r.translationHandler.Retranslate)
		translationsGroup.POST("/retarget", r.translationHandler.Retarget)
		translationsGroup.PUT("/tab", r.translationHandler.SetActiveTab)
		translationsGroup.DELETE("/warning", r.translationHandler.DismissWarning)
	}

	messagesGroup := apiV1.Group("/messages")
	{
		messagesGroup.POST("", r.messageHandler.Compose)
		messagesGroup.DELETE("", r.messageHandler.ClearMessage)
		messagesGroup.POST("/retry", r.messageHandler.Recompose)
	}

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/children", r.profileHandler.AddChild)
		profileGroup.PATCH("/children/:id", r.profileHandler.UpdateChild)
		profileGroup.DELETE("/children/:id", r.profileHandler.RemoveChild)
	}

	apiV1.GET("/history", r.historyHandler.ListHistory)

	localeGroup := apiV1.Group("/locale")
	{
		localeGroup.GET("", r.localeHandler.GetLocale)
		localeGroup.PUT("", r.localeHandler.ChangeLanguage)
		localeGroup.POST("/detect", r.localeHandler.DetectLanguage)
		localeGroup.GET("/onboarding", r.localeHandler.GetOnboarding)
		localeGroup.GET("/messages", r.localeHandler.GetMessages)
	}

	preferencesGroup := apiV1.Group("/preferences")
	{
		preferencesGroup.GET("", r.preferenceHandler.GetPreferences)
		preferencesGroup.POST("/launched", r.preferenceHandler.MarkLaunched)
		preferencesGroup.POST("/onboarding/complete", r.preferenceHandler.CompleteOnboarding)
	}

	apiV1.GET("/state", r.stateHandler.GetState)
	apiV1.GET("/state/stream", r.stateHandler.StreamState)
	apiV1.GET("/dashboard", r.stateHandler.GetDashboard)
}
