package handler

import (
	"net/http"
	"testing"

	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	mockUsecase "schoolnote/internal/mocks/usecase"
	"schoolnote/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profile := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profile,
		Logger:    discardLogger(),
	}), profile
}

func TestProfileHandler_AddChild(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, profile := createTestProfileHandler(t)

		input := &usecase.AddChildInput{Name: "Jiho", School: "Hanbit Elementary", Grade: 3}
		profile.EXPECT().AddChild(mock.Anything, input).Return(&entity.User{
			ID:       "user-1",
			Children: []entity.Child{{ID: "c1", Name: "Jiho", School: "Hanbit Elementary", Grade: 3}},
		}, nil)

		c, rec := newJSONContext(t, http.MethodPost, "/api/v1/profile/children", input)
		require.NoError(t, h.AddChild(c))

		var got entity.User
		decodeData(t, rec, &got)
		require.Len(t, got.Children, 1)
		assert.Equal(t, "c1", got.Children[0].ID)
	})

	t.Run("grade out of range", func(t *testing.T) {
		h, _ := createTestProfileHandler(t)

		c, _ := newJSONContext(t, http.MethodPost, "/api/v1/profile/children", &usecase.AddChildInput{
			Name:   "Jiho",
			School: "Hanbit Elementary",
			Grade:  13,
		})

		assert.ErrorIs(t, h.AddChild(c), domainerrors.ErrValidationFailed)
	})
}

func TestProfileHandler_UpdateChild(t *testing.T) {
	h, profile := createTestProfileHandler(t)

	school := "Saebom Middle"
	profile.EXPECT().
		UpdateChild(mock.Anything, "c1", &service.ChildPatch{School: &school}).
		Return(&entity.User{ID: "user-1", Children: []entity.Child{{ID: "c1", School: school}}}, nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/v1/profile/children/c1", map[string]string{"school": school})
	c.SetParamNames("id")
	c.SetParamValues("c1")
	require.NoError(t, h.UpdateChild(c))

	assert.Contains(t, rec.Body.String(), school)
}

func TestProfileHandler_RemoveChild(t *testing.T) {
	h, profile := createTestProfileHandler(t)

	profile.EXPECT().RemoveChild(mock.Anything, "c2").Return(nil, domainerrors.ErrProfileFailed)

	c, _ := newTestContext(http.MethodDelete, "/api/v1/profile/children/c2", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("c2")

	assert.ErrorIs(t, h.RemoveChild(c), domainerrors.ErrProfileFailed)
}

func TestProfileHandler_UpdateProfile_InvalidEmail(t *testing.T) {
	h, _ := createTestProfileHandler(t)

	c, _ := newJSONContext(t, http.MethodPatch, "/api/v1/profile", map[string]string{"email": "not-an-email"})

	assert.ErrorIs(t, h.UpdateProfile(c), domainerrors.ErrValidationFailed)
}
