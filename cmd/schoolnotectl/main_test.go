package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"schoolnote/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendFixtures is a fake backend recording the calls it served.
type backendFixtures struct {
	server *httptest.Server

	mu   sync.Mutex
	seen []string
}

func (b *backendFixtures) calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.seen...)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{"isSuccess": true, "result": result}))
}

func createTestBackend(t *testing.T) *backendFixtures {
	t.Helper()

	b := &backendFixtures{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.seen = append(b.seen, r.Method+" "+r.URL.Path)
		b.mu.Unlock()

		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "kakao-token", body["authToken"])
			assert.Equal(t, "kakao", body["provider"])
			writeEnvelope(t, w, map[string]any{
				"accessToken":  "cli-access",
				"refreshToken": "cli-refresh",
				"user":         map[string]any{"id": "user-1", "name": "Jisoo", "provider": "kakao"},
			})
		case "/api/user":
			assert.Equal(t, "Bearer cli-access", r.Header.Get("Authorization"))
			writeEnvelope(t, w, map[string]any{
				"id":       "user-1",
				"name":     "Jisoo",
				"provider": "kakao",
				"children": []map[string]any{{"id": "c-1", "name": "Minji", "school": "Hana Elementary", "grade": 3}},
			})
		case "/api/translations/history":
			assert.Equal(t, "Bearer cli-access", r.Header.Get("Authorization"))
			writeEnvelope(t, w, []map[string]any{{
				"id":               "h1",
				"originalFileName": "lunch.jpg",
				"fileType":         "IMAGE",
				"targetLanguage":   "VIETNAMESE",
				"summary":          "Menu for March",
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(b.server.Close)

	t.Setenv("API_BASEURL", b.server.URL)
	t.Setenv("PREFERENCES_PATH", filepath.Join(t.TempDir(), "prefs.db"))
	t.Setenv("LOCALE_DEVICEOVERRIDE", "en")
	t.Setenv("AUTH_PROVIDER", "")
	t.Setenv("AUTH_TOKEN", "")

	return b
}

// runCLI executes one invocation the way main does and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	c := &cli{}
	root := newRootCmd(c)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	require.NoError(t, c.stop())

	return out.String(), err
}

func TestCLI_ProfileSignsInFromEnvironment(t *testing.T) {
	backend := createTestBackend(t)
	t.Setenv("AUTH_PROVIDER", "kakao")
	t.Setenv("AUTH_TOKEN", "kakao-token")

	out, err := runCLI(t, "--json", "profile")
	require.NoError(t, err)

	var user entity.User
	require.NoError(t, json.Unmarshal([]byte(out), &user))
	assert.Equal(t, "user-1", user.ID)
	require.Len(t, user.Children, 1)
	assert.Equal(t, "Hana Elementary", user.Children[0].School)
	assert.Equal(t, []string{"POST /api/auth/login", "GET /api/user"}, backend.calls())
}

func TestCLI_HistorySignsInFromFlags(t *testing.T) {
	backend := createTestBackend(t)

	out, err := runCLI(t, "--json", "--auth-provider", "Kakao", "--auth-token", "kakao-token", "history")
	require.NoError(t, err)

	var results []entity.TranslationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "lunch.jpg", results[0].OriginalFileName)
	assert.Equal(t, []string{"POST /api/auth/login", "GET /api/translations/history"}, backend.calls())
}

func TestCLI_ProfileWithoutTokenNeedsSignIn(t *testing.T) {
	backend := createTestBackend(t)

	_, err := runCLI(t, "profile")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No access token")
	assert.Empty(t, backend.calls())
}
