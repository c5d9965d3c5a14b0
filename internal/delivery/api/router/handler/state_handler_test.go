package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"schoolnote/internal/app"
	"schoolnote/internal/domain/entity"
	mockService "schoolnote/internal/mocks/service"
	mockUsecase "schoolnote/internal/mocks/usecase"
	"schoolnote/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stateFixtures struct {
	handler *StateHandler
	store   *state.Store
	profile *mockUsecase.MockProfileUsecase
	history *mockUsecase.MockHistoryUsecase
}

func createTestStateHandler(t *testing.T) stateFixtures {
	fx := stateFixtures{
		store:   state.NewStore(state.Initial("ko")),
		profile: mockUsecase.NewMockProfileUsecase(t),
		history: mockUsecase.NewMockHistoryUsecase(t),
	}
	controller := app.NewController(app.ControllerParams{
		Store:       fx.store,
		Auth:        mockUsecase.NewMockAuthUsecase(t),
		Translation: mockUsecase.NewMockTranslationUsecase(t),
		Message:     mockUsecase.NewMockMessageUsecase(t),
		Profile:     fx.profile,
		Locale:      mockUsecase.NewMockLocaleUsecase(t),
		Preference:  mockUsecase.NewMockPreferenceUsecase(t),
		History:     fx.history,
		Files:       mockService.NewMockFileSource(t),
		Logger:      discardLogger(),
	})
	fx.handler = NewStateHandler(StateHandlerParams{Controller: controller, Logger: discardLogger()})

	return fx
}

func TestStateHandler_GetState(t *testing.T) {
	fx := createTestStateHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/state", nil, "")
	require.NoError(t, fx.handler.GetState(c))

	var got state.AppState
	decodeData(t, rec, &got)
	assert.Equal(t, "ko", got.Language)
	assert.Equal(t, entity.TabSummary, got.Translation.ActiveTab)
}

func TestStateHandler_StreamState(t *testing.T) {
	fx := createTestStateHandler(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	c, rec := newTestContext(http.MethodGet, "/api/v1/state/stream", nil, "")
	c.SetRequest(c.Request().WithContext(ctx))

	require.NoError(t, fx.handler.StreamState(c))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "data: {"))
	assert.Contains(t, body, `"language":"ko"`)
	assert.True(t, strings.HasSuffix(body, "\n\n"))
}

func TestStateHandler_GetDashboard(t *testing.T) {
	fx := createTestStateHandler(t)

	fx.profile.EXPECT().FetchUser(mock.Anything).Return(&entity.User{ID: "user-1", Name: "Minji"}, nil)
	fx.history.EXPECT().FetchHistory(mock.Anything).Return([]entity.TranslationResult{
		{ID: "h1", OriginalFileName: "notice.pdf"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/dashboard", nil, "")
	require.NoError(t, fx.handler.GetDashboard(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Minji")
	assert.Contains(t, body, "notice.pdf")
}
