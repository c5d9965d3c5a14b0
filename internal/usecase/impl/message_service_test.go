package impl

import (
	"context"
	"testing"

	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	mockService "schoolnote/internal/mocks/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service usecase.MessageUsecase
	api     *mockService.MockMessageAPI
	tokens  *mockService.MockTokenProvider
	store   *state.Store
}

func createTestMessageService(t *testing.T, session entity.Session) messageServiceFixtures {
	api := mockService.NewMockMessageAPI(t)
	tokens := mockService.NewMockTokenProvider(t)
	store := newTestStore(t, session)

	return messageServiceFixtures{
		service: NewMessageService(api, tokens, store, stubLocalizer{}, newTestLogger()),
		api:     api,
		tokens:  tokens,
		store:   store,
	}
}

func TestMessageService_Compose_Success(t *testing.T) {
	fx := createTestMessageService(t, entity.Session{})
	ctx := context.Background()

	fx.tokens.EXPECT().Token(ctx).Return("guest", nil)
	fx.api.EXPECT().
		Compose(ctx, "guest", entity.MessageComposeRequest{Message: "Can my child leave early?", TargetLanguage: "KOREAN"}).
		Return(&entity.MessageComposeResult{TranslatedMessage: "아이가 일찍 하교해도 될까요?"}, nil)

	result, err := fx.service.Compose(ctx, &usecase.ComposeMessageInput{Message: "  Can my child leave early?  ", TargetLanguage: "ko"})

	require.NoError(t, err)
	assert.Equal(t, "아이가 일찍 하교해도 될까요?", result.TranslatedMessage)
	snapshot := fx.store.Snapshot()
	assert.Equal(t, "아이가 일찍 하교해도 될까요?", snapshot.Message.Result.TranslatedMessage)
	assert.Equal(t, "Can my child leave early?", snapshot.Message.Request.Message)
	assert.False(t, snapshot.Message.Loading)
}

func TestMessageService_Compose_EmptyMessage(t *testing.T) {
	fx := createTestMessageService(t, entity.Session{})

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := fx.service.Compose(context.Background(), &usecase.ComposeMessageInput{Message: message})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	snapshot := fx.store.Snapshot()
	assert.Nil(t, snapshot.Message.Request)
	assert.Zero(t, snapshot.Message.Seq)
}

func TestMessageService_Compose_BackendError(t *testing.T) {
	fx := createTestMessageService(t, entity.Session{})
	ctx := context.Background()
	fx.store.Update(func(st *state.AppState) {
		st.Message.Result = &entity.MessageComposeResult{TranslatedMessage: "previous"}
	})

	fx.tokens.EXPECT().Token(ctx).Return("guest", nil)
	fx.api.EXPECT().Compose(ctx, "guest", entity.MessageComposeRequest{Message: "hello"}).
		Return(nil, domainerrors.NewBackendError("/api/message/compose", 200, "QUOTA", "daily limit reached"))

	_, err := fx.service.Compose(ctx, &usecase.ComposeMessageInput{Message: "hello"})

	require.Error(t, err)
	snapshot := fx.store.Snapshot()
	assert.Equal(t, "previous", snapshot.Message.Result.TranslatedMessage)
	assert.Equal(t, "[errors.BACKEND_ERROR] (daily limit reached)", snapshot.Message.Error)
}

func TestMessageService_Recompose(t *testing.T) {
	fx := createTestMessageService(t, entity.NewGuestSession("guest", ""))
	ctx := context.Background()
	fx.store.Update(func(st *state.AppState) {
		st.Message.Request = &entity.MessageComposeRequest{Message: "hello", TargetLanguage: "RUSSIAN"}
	})

	fx.api.EXPECT().Compose(ctx, "guest", entity.MessageComposeRequest{Message: "hello", TargetLanguage: "RUSSIAN"}).
		Return(&entity.MessageComposeResult{TranslatedMessage: "привет"}, nil)

	result, err := fx.service.Recompose(ctx)

	require.NoError(t, err)
	assert.Equal(t, "привет", result.TranslatedMessage)
}

func TestMessageService_Recompose_Errors(t *testing.T) {
	fx := createTestMessageService(t, entity.Session{})
	ctx := context.Background()

	_, err := fx.service.Recompose(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoCurrentRequest)

	fx.store.Update(func(st *state.AppState) {
		st.Message.Request = &entity.MessageComposeRequest{Message: "hello"}
	})
	_, err = fx.service.Recompose(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoAccessToken)
}

func TestMessageService_ClearMessage_DropsInFlightResponse(t *testing.T) {
	fx := createTestMessageService(t, entity.Session{})
	ctx := context.Background()

	fx.tokens.EXPECT().Token(ctx).Return("guest", nil)
	fx.api.EXPECT().Compose(ctx, "guest", entity.MessageComposeRequest{Message: "hello"}).
		Run(func(context.Context, string, entity.MessageComposeRequest) {
			fx.service.ClearMessage()
		}).
		Return(&entity.MessageComposeResult{TranslatedMessage: "late"}, nil)

	_, err := fx.service.Compose(ctx, &usecase.ComposeMessageInput{Message: "hello"})

	require.NoError(t, err)
	snapshot := fx.store.Snapshot()
	assert.Nil(t, snapshot.Message.Result)
	assert.Nil(t, snapshot.Message.Request)
}
