package state

import (
	"sync"
	"testing"

	"schoolnote/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SnapshotIsDetached(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial("en"))
	store.Update(func(st *AppState) {
		st.User = &entity.User{ID: "u1", Children: []entity.Child{{ID: "c1", Name: "Mina"}}}
	})

	snapshot := store.Snapshot()
	snapshot.User.Children[0].Name = "changed"
	snapshot.Language = "ko"

	current := store.Snapshot()
	assert.Equal(t, "Mina", current.User.Children[0].Name)
	assert.Equal(t, "en", current.Language)
}

func TestStore_SubscribeReceivesLatest(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial("en"))
	ch, cancel := store.Subscribe()
	defer cancel()

	initial := <-ch
	assert.Equal(t, "en", initial.Language)

	store.Update(func(st *AppState) { st.Language = "ko" })
	store.Update(func(st *AppState) { st.Language = "ja" })

	latest := <-ch
	assert.Equal(t, "ja", latest.Language)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %+v", extra)
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial("en"))
	ch, cancel := store.Subscribe()
	<-ch
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Updates after cancel must not panic on the closed channel.
	store.Update(func(st *AppState) { st.Language = "vi" })
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial("en"))
	ch, cancel := store.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(func(st *AppState) { st.Translation.Seq++ })
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), store.Snapshot().Translation.Seq)

	var last AppState
	for {
		select {
		case last = <-ch:
			continue
		default:
		}

		break
	}
	assert.Equal(t, uint64(50), last.Translation.Seq)
}

func TestAppState_ClearSession(t *testing.T) {
	t.Parallel()

	st := Initial("en")
	st.SetSession(entity.NewAuthenticatedSession("access", "refresh", "u1"))
	st.User = &entity.User{ID: "u1"}
	st.Translation.Result = &entity.TranslationResult{OriginalFileName: "doc.pdf"}
	st.Translation.Seq = 3
	st.Message.Result = &entity.MessageComposeResult{TranslatedMessage: "hi"}
	st.History = []entity.TranslationResult{{ID: "h1"}}

	st.ClearSession()

	require.False(t, st.Session.IsAuthenticated())
	assert.Nil(t, st.User)
	assert.Nil(t, st.Translation.Result)
	assert.Equal(t, uint64(4), st.Translation.Seq)
	assert.Equal(t, entity.TabSummary, st.Translation.ActiveTab)
	assert.Nil(t, st.Message.Result)
	assert.Empty(t, st.History)
	assert.NotNil(t, st.History)
	assert.Equal(t, "en", st.Language)
	assert.Equal(t, uint64(2), st.SessionGen)
}
