package impl

import (
	"context"
	"testing"

	domainerrors "schoolnote/internal/domain/errors"
	mockService "schoolnote/internal/mocks/service"
	mockUsecase "schoolnote/internal/mocks/usecase"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localeServiceFixtures holds all test dependencies for locale service tests.
type localeServiceFixtures struct {
	service     usecase.LocaleUsecase
	catalog     *mockService.MockMessageCatalog
	device      *mockService.MockDeviceLocales
	preferences *mockUsecase.MockPreferenceUsecase
	store       *state.Store
}

func createTestLocaleService(t *testing.T) localeServiceFixtures {
	catalog := mockService.NewMockMessageCatalog(t)
	device := mockService.NewMockDeviceLocales(t)
	preferences := mockUsecase.NewMockPreferenceUsecase(t)
	store := state.NewStore(state.Initial(""))

	return localeServiceFixtures{
		service:     NewLocaleService(catalog, device, preferences, store, newTestLogger()),
		catalog:     catalog,
		device:      device,
		preferences: preferences,
		store:       store,
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		preferences []string
		want        string
	}{
		{name: "exact match", preferences: []string{"ko"}, want: "ko"},
		{name: "exact beats earlier base match", preferences: []string{"fr-FR", "en-US", "ja"}, want: "ja"},
		{name: "base match", preferences: []string{"fr-FR", "vi-VN"}, want: "vi"},
		{name: "posix locale", preferences: []string{"ko_KR.UTF-8"}, want: "ko"},
		{name: "script subtag", preferences: []string{"zh-Hant-TW"}, want: "zh"},
		{name: "filipino spelled fil", preferences: []string{"fil-PH"}, want: "tl"},
		{name: "tagalog", preferences: []string{"tl"}, want: "tl"},
		{name: "case insensitive", preferences: []string{"RU-ru"}, want: "ru"},
		{name: "posix default ignored", preferences: []string{"C", "POSIX"}, want: "en"},
		{name: "no match", preferences: []string{"de-DE", "fr"}, want: "en"},
		{name: "empty", preferences: nil, want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectLanguage(tt.preferences))
		})
	}
}

func TestLocaleService_DeviceLanguage(t *testing.T) {
	fx := createTestLocaleService(t)
	fx.device.EXPECT().Preferred().Return([]string{"th_TH.UTF-8", "en_US.UTF-8"})

	assert.Equal(t, "th", fx.service.DeviceLanguage())
}

func TestLocaleService_ChangeLanguage(t *testing.T) {
	fx := createTestLocaleService(t)
	ctx := context.Background()

	fx.preferences.EXPECT().SetLanguage(ctx, "ko").Return(nil)

	require.NoError(t, fx.service.ChangeLanguage(ctx, "ko"))
	assert.Equal(t, "ko", fx.service.CurrentLanguage())
	assert.Equal(t, "ko", fx.store.Snapshot().Language)
}

func TestLocaleService_ChangeLanguage_PersistFailureKeepsLanguage(t *testing.T) {
	fx := createTestLocaleService(t)
	ctx := context.Background()
	fx.store.Update(func(st *state.AppState) { st.Language = "en" })

	fx.preferences.EXPECT().SetLanguage(ctx, "ja").Return(errors.New("disk full"))

	require.Error(t, fx.service.ChangeLanguage(ctx, "ja"))
	assert.Equal(t, "en", fx.service.CurrentLanguage())
}

func TestLocaleService_ChangeLanguage_Unsupported(t *testing.T) {
	fx := createTestLocaleService(t)

	err := fx.service.ChangeLanguage(context.Background(), "KOREAN")

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedLanguage)
}

func TestLocaleService_Onboarding(t *testing.T) {
	fx := createTestLocaleService(t)
	ctx := context.Background()

	fx.preferences.EXPECT().Language(ctx).Return("", false, nil).Once()
	show, err := fx.service.ShouldShowLanguageOnboarding(ctx)
	require.NoError(t, err)
	assert.True(t, show)

	fx.preferences.EXPECT().Language(ctx).Return("ko", true, nil).Once()
	show, err = fx.service.ShouldShowLanguageOnboarding(ctx)
	require.NoError(t, err)
	assert.False(t, show)
}

func TestLocaleService_Initialize(t *testing.T) {
	t.Run("saved language wins", func(t *testing.T) {
		fx := createTestLocaleService(t)
		ctx := context.Background()
		fx.preferences.EXPECT().Language(ctx).Return("vi", true, nil)

		code, err := fx.service.Initialize(ctx)

		require.NoError(t, err)
		assert.Equal(t, "vi", code)
		assert.Equal(t, "vi", fx.service.CurrentLanguage())
	})

	t.Run("device language otherwise", func(t *testing.T) {
		fx := createTestLocaleService(t)
		ctx := context.Background()
		fx.preferences.EXPECT().Language(ctx).Return("", false, nil)
		fx.device.EXPECT().Preferred().Return([]string{"ja-JP"})

		code, err := fx.service.Initialize(ctx)

		require.NoError(t, err)
		assert.Equal(t, "ja", code)
	})

	t.Run("storage error falls back to device", func(t *testing.T) {
		fx := createTestLocaleService(t)
		ctx := context.Background()
		fx.preferences.EXPECT().Language(ctx).Return("", false, errors.New("locked"))
		fx.device.EXPECT().Preferred().Return(nil)

		code, err := fx.service.Initialize(ctx)

		require.NoError(t, err)
		assert.Equal(t, "en", code)
	})
}

func TestLocaleService_Localize(t *testing.T) {
	fx := createTestLocaleService(t)
	fx.store.Update(func(st *state.AppState) { st.Language = "ko" })

	fx.catalog.EXPECT().Lookup("ko", "home.title").Return("홈", true)
	fx.catalog.EXPECT().Lookup("ko", "home.subtitle").Return("", false)
	fx.catalog.EXPECT().Lookup("en", "home.subtitle").Return("Welcome", true)
	fx.catalog.EXPECT().Lookup("ko", "missing.key").Return("", false)
	fx.catalog.EXPECT().Lookup("en", "missing.key").Return("", false)

	assert.Equal(t, "홈", fx.service.Translate("home.title"))
	assert.Equal(t, "Welcome", fx.service.Localize("home.subtitle", "fallback"))
	assert.Equal(t, "missing.key", fx.service.Translate("missing.key"))
}

func TestLocaleService_Messages(t *testing.T) {
	fx := createTestLocaleService(t)
	fx.store.Update(func(st *state.AppState) { st.Language = "vi" })

	fx.catalog.EXPECT().Messages("en").Return(map[string]string{"a": "A", "b": "B"})
	fx.catalog.EXPECT().Messages("vi").Return(map[string]string{"a": "Á"})

	assert.Equal(t, map[string]string{"a": "Á", "b": "B"}, fx.service.Messages())
}

func TestLocaleService_Languages(t *testing.T) {
	fx := createTestLocaleService(t)

	languages := fx.service.Languages()
	require.Len(t, languages, 8)
	assert.Equal(t, "ko", languages[0].Code)
	assert.Equal(t, "FILIPINO", languages[6].BackendName)
}
