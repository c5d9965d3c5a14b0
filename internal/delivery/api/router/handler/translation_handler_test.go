package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	mockUsecase "schoolnote/internal/mocks/usecase"
	"schoolnote/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTranslationHandler(t *testing.T) (*TranslationHandler, *mockUsecase.MockTranslationUsecase) {
	translation := mockUsecase.NewMockTranslationUsecase(t)

	return NewTranslationHandler(TranslationHandlerParams{
		TranslationUC: translation,
		Logger:        discardLogger(),
	}), translation
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestTranslationHandler_TranslateFile(t *testing.T) {
	h, translation := createTestTranslationHandler(t)

	content := []byte("%PDF-1.4 notice")
	translation.EXPECT().
		TranslateFile(mock.Anything, mock.MatchedBy(func(in *usecase.TranslateFileInput) bool {
			return in.FileName == "notice.pdf" &&
				bytes.Equal(in.Content, content) &&
				in.TargetLanguage == "vi" &&
				in.SourceLanguageHint == "ko" &&
				in.UseSimpleLanguage != nil && *in.UseSimpleLanguage
		})).
		Return(&entity.TranslationResult{OriginalFileName: "notice.pdf", Summary: "Field trip on Friday"}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"targetLanguage":     "vi",
		"useSimpleLanguage":  "true",
		"sourceLanguageHint": "ko",
	}, "notice.pdf", content)

	c, rec := newTestContext(http.MethodPost, "/api/v1/translations", body, contentType)
	require.NoError(t, h.TranslateFile(c))

	var got entity.TranslationResult
	decodeData(t, rec, &got)
	assert.Equal(t, "Field trip on Friday", got.Summary)
}

func TestTranslationHandler_TranslateFile_InvalidInput(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		h, _ := createTestTranslationHandler(t)

		body, contentType := multipartBody(t, map[string]string{"targetLanguage": "vi"}, "", nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/translations", body, contentType)
		require.NoError(t, h.TranslateFile(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	})

	t.Run("malformed simple language flag", func(t *testing.T) {
		h, _ := createTestTranslationHandler(t)

		body, contentType := multipartBody(t, map[string]string{
			"targetLanguage":    "vi",
			"useSimpleLanguage": "sometimes",
		}, "notice.pdf", []byte("x"))
		c, _ := newTestContext(http.MethodPost, "/api/v1/translations", body, contentType)

		assert.ErrorIs(t, h.TranslateFile(c), domainerrors.ErrValidationFailed)
	})
}

func TestTranslationHandler_Retarget(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, translation := createTestTranslationHandler(t)

		translation.EXPECT().
			Retarget(mock.Anything, &usecase.RetargetInput{TargetLanguage: "th"}).
			Return(&entity.TranslationResult{TargetLanguage: "th"}, nil)

		c, rec := newJSONContext(t, http.MethodPost, "/api/v1/translations/retarget", map[string]string{"targetLanguage": "th"})
		require.NoError(t, h.Retarget(c))

		var got entity.TranslationResult
		decodeData(t, rec, &got)
		assert.Equal(t, "th", got.TargetLanguage)
	})

	t.Run("missing target language", func(t *testing.T) {
		h, _ := createTestTranslationHandler(t)

		c, _ := newJSONContext(t, http.MethodPost, "/api/v1/translations/retarget", map[string]string{})

		assert.ErrorIs(t, h.Retarget(c), domainerrors.ErrValidationFailed)
	})
}

func TestTranslationHandler_Retranslate_NoRequest(t *testing.T) {
	h, translation := createTestTranslationHandler(t)

	translation.EXPECT().Retranslate(mock.Anything).Return(nil, domainerrors.ErrNoCurrentRequest)

	c, _ := newTestContext(http.MethodPost, "/api/v1/translations/retry", nil, "")

	assert.ErrorIs(t, h.Retranslate(c), domainerrors.ErrNoCurrentRequest)
}

func TestTranslationHandler_SetActiveTab(t *testing.T) {
	h, translation := createTestTranslationHandler(t)

	translation.EXPECT().SetActiveTab(entity.TabOriginal).Return(nil)

	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/translations/tab", SetTabRequest{Tab: entity.TabOriginal})
	require.NoError(t, h.SetActiveTab(c))

	assert.Contains(t, rec.Body.String(), `"tab":"original"`)
}

func TestTranslationHandler_ClearAndDismiss(t *testing.T) {
	h, translation := createTestTranslationHandler(t)

	translation.EXPECT().DismissWarning().Return()
	translation.EXPECT().ClearTranslation().Return()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/translations/warning", nil, "")
	require.NoError(t, h.DismissWarning(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodDelete, "/api/v1/translations", nil, "")
	require.NoError(t, h.ClearTranslation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
