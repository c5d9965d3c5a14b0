package impl

import (
	"context"
	"testing"
	"time"

	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	mockService "schoolnote/internal/mocks/service"
	"schoolnote/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHistoryToTranslationResults(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	records := []entity.HistoryRecord{
		{
			ID:               "h2",
			OriginalFileName: "field-trip.pdf",
			FileType:         entity.FileTypePDF,
			FileSize:         2048,
			PageCount:        2,
			TargetLanguage:   "VIETNAMESE",
			ExtractedText:    "현장체험학습 안내",
			TranslatedText:   "Thông báo dã ngoại",
			Summary:          "Field trip on Friday",
			Events:           []entity.SchoolEvent{{Title: "Field trip", Date: "2025-03-21"}},
			ProcessingMs:     3200,
			CreatedAt:        createdAt,
		},
		{ID: "h1", OriginalFileName: "menu.jpg", FileType: entity.FileTypeImage},
	}

	results := MapHistoryToTranslationResults(records)

	require.Len(t, results, 2)
	assert.Equal(t, "h2", results[0].ID)
	assert.Equal(t, "h1", results[1].ID)

	first := results[0]
	assert.Equal(t, "field-trip.pdf", first.OriginalFileName)
	assert.Equal(t, "Thông báo dã ngoại", first.TranslatedText)
	assert.Equal(t, int64(3200), first.Timings.TotalMs)
	assert.Equal(t, entity.FileMeta{FileName: "field-trip.pdf", FileType: entity.FileTypePDF, SizeBytes: 2048, PageCount: 2}, first.FileMeta)
	assert.Equal(t, createdAt, first.CreatedAt)
	assert.Len(t, first.Events, 1)
	assert.NotNil(t, first.Vocabulary)
	assert.Empty(t, first.Vocabulary)

	assert.NotNil(t, results[1].Events)
	assert.Empty(t, results[1].Events)

	// The output must not alias the input collections.
	results[0].Events[0].Title = "changed"
	assert.Equal(t, "Field trip", records[0].Events[0].Title)
}

func TestMapHistoryToTranslationResults_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []entity.TranslationResult{}, MapHistoryToTranslationResults(nil))
}

func TestMapHistoryToTranslationResults_Deterministic(t *testing.T) {
	t.Parallel()

	records := []entity.HistoryRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, MapHistoryToTranslationResults(records), MapHistoryToTranslationResults(records))
}

func TestHistoryService_FetchHistory(t *testing.T) {
	api := mockService.NewMockHistoryAPI(t)
	store := newTestStore(t, signedIn())
	srv := NewHistoryService(api, store, stubLocalizer{}, newTestLogger())
	ctx := context.Background()

	api.EXPECT().ListHistory(ctx, "access").Return([]entity.HistoryRecord{{ID: "h1", OriginalFileName: "a.pdf"}}, nil)

	results, err := srv.FetchHistory(ctx)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a.pdf", store.Snapshot().History[0].OriginalFileName)
	assert.Empty(t, store.Snapshot().HistoryError)
}

func TestHistoryService_FetchHistory_RequiresToken(t *testing.T) {
	api := mockService.NewMockHistoryAPI(t)
	store := newTestStore(t, entity.Session{})
	srv := NewHistoryService(api, store, stubLocalizer{}, newTestLogger())

	_, err := srv.FetchHistory(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNoAccessToken)
	assert.Equal(t, "[errors.NO_ACCESS_TOKEN]", store.Snapshot().HistoryError)
}

func TestHistoryService_FetchHistory_LogoutWhileInFlight(t *testing.T) {
	api := mockService.NewMockHistoryAPI(t)
	store := newTestStore(t, signedIn())
	srv := NewHistoryService(api, store, stubLocalizer{}, newTestLogger())
	ctx := context.Background()

	api.EXPECT().ListHistory(ctx, "access").
		Run(func(context.Context, string) {
			store.Update(func(st *state.AppState) {
				st.ClearSession()
			})
		}).
		Return([]entity.HistoryRecord{{ID: "h1", OriginalFileName: "a.pdf"}}, nil)

	results, err := srv.FetchHistory(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrSessionChanged)
	assert.Nil(t, results)
	snapshot := store.Snapshot()
	assert.Empty(t, snapshot.History)
	assert.Empty(t, snapshot.HistoryError)
	assert.False(t, snapshot.Session.IsAuthenticated())
}
