package handler

import (
	"net/http"
	"testing"

	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	mockUsecase "schoolnote/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocaleHandler(t *testing.T) (*LocaleHandler, *mockUsecase.MockLocaleUsecase) {
	locale := mockUsecase.NewMockLocaleUsecase(t)

	return NewLocaleHandler(LocaleHandlerParams{
		LocaleUC: locale,
		Logger:   discardLogger(),
	}), locale
}

func TestLocaleHandler_GetLocale(t *testing.T) {
	h, locale := createTestLocaleHandler(t)

	languages := []entity.Language{
		{Code: "ko", BackendName: "KOREAN", NativeName: "한국어"},
		{Code: "vi", BackendName: "VIETNAMESE", NativeName: "Tiếng Việt"},
	}
	locale.EXPECT().CurrentLanguage().Return("vi")
	locale.EXPECT().DeviceLanguage().Return("ko")
	locale.EXPECT().Languages().Return(languages)

	c, rec := newTestContext(http.MethodGet, "/api/v1/locale", nil, "")
	require.NoError(t, h.GetLocale(c))

	var got LocaleResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "vi", got.Current)
	assert.Equal(t, "ko", got.Device)
	assert.Equal(t, languages, got.Languages)
}

func TestLocaleHandler_ChangeLanguage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, locale := createTestLocaleHandler(t)

		locale.EXPECT().ChangeLanguage(mock.Anything, "th").Return(nil)
		locale.EXPECT().CurrentLanguage().Return("th")

		c, rec := newJSONContext(t, http.MethodPut, "/api/v1/locale", ChangeLanguageRequest{Language: "th"})
		require.NoError(t, h.ChangeLanguage(c))

		assert.Contains(t, rec.Body.String(), `"language":"th"`)
	})

	t.Run("unsupported", func(t *testing.T) {
		h, locale := createTestLocaleHandler(t)

		locale.EXPECT().ChangeLanguage(mock.Anything, "xx").Return(domainerrors.ErrUnsupportedLanguage)

		c, _ := newJSONContext(t, http.MethodPut, "/api/v1/locale", ChangeLanguageRequest{Language: "xx"})

		assert.ErrorIs(t, h.ChangeLanguage(c), domainerrors.ErrUnsupportedLanguage)
	})
}

func TestLocaleHandler_DetectLanguage(t *testing.T) {
	h, locale := createTestLocaleHandler(t)

	locale.EXPECT().DetectDeviceLanguage([]string{"zh-Hant-TW", "en-US"}).Return("zh")

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/locale/detect", DetectLanguageRequest{
		Preferences: []string{"zh-Hant-TW", "en-US"},
	})
	require.NoError(t, h.DetectLanguage(c))

	assert.Contains(t, rec.Body.String(), `"language":"zh"`)
}

func TestLocaleHandler_GetOnboarding(t *testing.T) {
	h, locale := createTestLocaleHandler(t)

	locale.EXPECT().ShouldShowLanguageOnboarding(mock.Anything).Return(true, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/locale/onboarding", nil, "")
	require.NoError(t, h.GetOnboarding(c))

	assert.Contains(t, rec.Body.String(), `"show":true`)
}
