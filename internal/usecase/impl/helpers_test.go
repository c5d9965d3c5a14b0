package impl

import (
	"io"
	"log/slog"
	"testing"

	"schoolnote/config"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/state"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore returns a store in English with an optional session already held.
func newTestStore(t *testing.T, session entity.Session) *state.Store {
	t.Helper()

	initial := state.Initial("en")
	initial.Session = session

	return state.NewStore(initial)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Translation: &config.TranslationConfig{MaxFileSize: "1KB"},
	}
}

// stubLocalizer answers every key with a bracketed marker so tests can see localisation happened.
type stubLocalizer struct{}

func (stubLocalizer) Localize(key, _ string) string {
	return "[" + key + "]"
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
