package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schoolnote/config"
	"schoolnote/internal/app"
	"schoolnote/internal/delivery/api/response"
	"schoolnote/internal/delivery/api/router"
	"schoolnote/internal/delivery/api/router/handler"
	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/infra/metrics"
	mockService "schoolnote/internal/mocks/service"
	mockUsecase "schoolnote/internal/mocks/usecase"
	"schoolnote/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serverFixtures holds all test dependencies for the assembled companion API.
type serverFixtures struct {
	echo    *echo.Echo
	metrics *metrics.Metrics
	auth    *mockUsecase.MockAuthUsecase
	message *mockUsecase.MockMessageUsecase
	locale  *mockUsecase.MockLocaleUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	fx := serverFixtures{
		metrics: metrics.New(),
		auth:    mockUsecase.NewMockAuthUsecase(t),
		message: mockUsecase.NewMockMessageUsecase(t),
		locale:  mockUsecase.NewMockLocaleUsecase(t),
	}
	translation := mockUsecase.NewMockTranslationUsecase(t)
	profile := mockUsecase.NewMockProfileUsecase(t)
	preference := mockUsecase.NewMockPreferenceUsecase(t)
	history := mockUsecase.NewMockHistoryUsecase(t)

	controller := app.NewController(app.ControllerParams{
		Store:       state.NewStore(state.Initial("ko")),
		Auth:        fx.auth,
		Translation: translation,
		Message:     fx.message,
		Profile:     profile,
		Locale:      fx.locale,
		Preference:  preference,
		History:     history,
		Files:       mockService.NewMockFileSource(t),
		Logger:      logger,
	})

	fx.echo = newEcho(ServerParams{
		Cfg:       cfg,
		Logger:    logger,
		Metrics:   fx.metrics,
		Localizer: fx.locale,
		RouterParams: router.RouterParams{
			SessionHandler:     handler.NewSessionHandler(handler.SessionHandlerParams{AuthUC: fx.auth, LocaleUC: fx.locale, Logger: logger}),
			TranslationHandler: handler.NewTranslationHandler(handler.TranslationHandlerParams{TranslationUC: translation, Logger: logger}),
			MessageHandler:     handler.NewMessageHandler(handler.MessageHandlerParams{MessageUC: fx.message, Logger: logger}),
			ProfileHandler:     handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profile, Logger: logger}),
			HistoryHandler:     handler.NewHistoryHandler(handler.HistoryHandlerParams{HistoryUC: history, Logger: logger}),
			LocaleHandler:      handler.NewLocaleHandler(handler.LocaleHandlerParams{LocaleUC: fx.locale, Logger: logger}),
			PreferenceHandler:  handler.NewPreferenceHandler(handler.PreferenceHandlerParams{PreferenceUC: preference, Logger: logger}),
			StateHandler:       handler.NewStateHandler(handler.StateHandlerParams{Controller: controller, Logger: logger}),
			Metrics:            fx.metrics,
		},
	})

	return fx
}

func (fx serverFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var got response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "req-7", got.Meta.RequestID)
}

func TestServer_ComposeSuccess(t *testing.T) {
	fx := createTestServer(t)

	fx.message.EXPECT().
		Compose(mock.Anything, mock.Anything).
		Return(&entity.MessageComposeResult{TranslatedMessage: "선생님, 안녕하세요"}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/messages", `{"message":"Hello teacher"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "선생님, 안녕하세요")
}

func TestServer_LocalizedErrors(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(fx serverFixtures)
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
		wantMsg    string
		wantDetail bool
	}{
		{
			name: "validation error carries details",
			setup: func(fx serverFixtures) {
				fx.locale.EXPECT().Localize("errors.VALIDATION_FAILED", mock.Anything).Return("입력한 정보를 확인해 주세요")
			},
			method:     http.MethodPost,
			target:     "/api/v1/messages",
			body:       `{"message":""}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantMsg:    "입력한 정보를 확인해 주세요",
			wantDetail: true,
		},
		{
			name: "backend failure hides details",
			setup: func(fx serverFixtures) {
				fx.message.EXPECT().Compose(mock.Anything, mock.Anything).
					Return(nil, domainerrors.NewBackendError("/api/message/compose", 500, "E500", "db down"))
				fx.locale.EXPECT().Localize("errors.BACKEND_ERROR", mock.Anything).Return("server error")
			},
			method:     http.MethodPost,
			target:     "/api/v1/messages",
			body:       `{"message":"hi"}`,
			wantStatus: http.StatusBadGateway,
			wantCode:   "BACKEND_ERROR",
			wantMsg:    "server error",
		},
		{
			name: "no token",
			setup: func(fx serverFixtures) {
				fx.auth.EXPECT().Refresh(mock.Anything).Return(domainerrors.ErrRefreshTokenMissing)
				fx.locale.EXPECT().Localize("errors.REFRESH_TOKEN_MISSING", mock.Anything).Return("sign in again")
			},
			method:     http.MethodPost,
			target:     "/api/v1/session/refresh",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "REFRESH_TOKEN_MISSING",
			wantMsg:    "sign in again",
		},
		{
			name:       "unknown route",
			setup:      func(serverFixtures) {},
			method:     http.MethodGet,
			target:     "/api/v1/nowhere",
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)
			tt.setup(fx)

			rec := fx.do(tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.NotNil(t, got.Error)
			assert.Equal(t, tt.wantCode, got.Error.Code)
			assert.Equal(t, tt.wantMsg, got.Error.Message)
			assert.Equal(t, tt.wantDetail, got.Error.Details != nil)
			assert.Equal(t, "req-7", got.Meta.RequestID)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	fx := createTestServer(t)

	fx.do(http.MethodGet, "/health", "")
	rec := fx.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `schoolnote_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
