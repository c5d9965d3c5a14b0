package impl

import (
	"context"
	"testing"

	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/repository"
	mockRepo "schoolnote/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_FirstLaunch(t *testing.T) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	srv := NewPreferenceService(repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().Get(ctx, repository.KeyFirstLaunch).Return("", repository.ErrPreferenceNotFound).Once()
	first, err := srv.IsFirstLaunch(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	repo.EXPECT().Set(ctx, repository.KeyFirstLaunch, "false").Return(nil)
	require.NoError(t, srv.MarkLaunched(ctx))

	repo.EXPECT().Get(ctx, repository.KeyFirstLaunch).Return("false", nil).Once()
	first, err = srv.IsFirstLaunch(ctx)
	require.NoError(t, err)
	assert.False(t, first)
}

func TestPreferenceService_Onboarding(t *testing.T) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	srv := NewPreferenceService(repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().Get(ctx, repository.KeyOnboardingCompleted).Return("", repository.ErrPreferenceNotFound).Once()
	done, err := srv.IsOnboardingCompleted(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	repo.EXPECT().Set(ctx, repository.KeyOnboardingCompleted, "true").Return(nil)
	require.NoError(t, srv.CompleteOnboarding(ctx))

	repo.EXPECT().Get(ctx, repository.KeyOnboardingCompleted).Return("not-a-bool", nil).Once()
	done, err = srv.IsOnboardingCompleted(ctx)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestPreferenceService_Language(t *testing.T) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	srv := NewPreferenceService(repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().Get(ctx, repository.KeyUserLanguage).Return("", repository.ErrPreferenceNotFound).Once()
	_, saved, err := srv.Language(ctx)
	require.NoError(t, err)
	assert.False(t, saved)

	assert.ErrorIs(t, srv.SetLanguage(ctx, "de"), domainerrors.ErrUnsupportedLanguage)

	repo.EXPECT().Set(ctx, repository.KeyUserLanguage, "tl").Return(nil)
	require.NoError(t, srv.SetLanguage(ctx, "tl"))

	repo.EXPECT().Get(ctx, repository.KeyUserLanguage).Return("tl", nil).Once()
	code, saved, err := srv.Language(ctx)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, "tl", code)
}

func TestPreferenceService_StorageErrors(t *testing.T) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	srv := NewPreferenceService(repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().Get(ctx, repository.KeyFirstLaunch).Return("", errors.New("disk I/O error"))
	_, err := srv.IsFirstLaunch(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrPreferenceFailed)

	repo.EXPECT().Set(ctx, repository.KeyOnboardingCompleted, "true").Return(errors.New("read-only database"))
	assert.ErrorIs(t, srv.CompleteOnboarding(ctx), domainerrors.ErrPreferenceFailed)
}
