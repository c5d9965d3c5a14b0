package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"schoolnote/config"
	deliverycontext "schoolnote/internal/delivery/context"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixtures struct {
	client  *Client
	metrics *metrics.Metrics
	server  *httptest.Server
}

func createTestClient(t *testing.T, handler http.HandlerFunc) *testFixtures {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		API: &config.APIConfig{
			BaseURL:   server.URL,
			Timeout:   5 * time.Second,
			UserAgent: "schoolnote-test",
			Endpoints: config.EndpointsConfig{}.WithDefaults(),
		},
	}
	m := metrics.New()
	client, err := NewClient(cfg, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return &testFixtures{client: client, metrics: m, server: server}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{name: "missing api section", cfg: &config.Config{}, wantErr: true},
		{name: "relative base url", cfg: &config.Config{API: &config.APIConfig{BaseURL: "/api"}}, wantErr: true},
		{name: "valid", cfg: &config.Config{API: &config.APIConfig{BaseURL: "https://example.com/", RateLimit: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg, metrics.New(), slog.Default())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/api/user", client.url("/api/user"))
		})
	}
}

func TestClient_Guest(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/guest", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "schoolnote-test", r.Header.Get("User-Agent"))

		var body guestRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "KOREAN", body.Language)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"isSuccess": true,
			"result":    map[string]any{"accessToken": "guest-token", "userId": "g-1"},
		})
	})

	grant, err := fx.client.Guest(context.Background(), "KOREAN")

	require.NoError(t, err)
	assert.Equal(t, &service.GuestGrant{AccessToken: "guest-token", UserID: "g-1"}, grant)

	count, err := testutil.GatherAndCount(fx.metrics.Registry(), "schoolnote_backend_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClient_EnvelopeFailure(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"isSuccess": false,
			"code":      "MESSAGE_TOO_LONG",
			"message":   "message is too long",
		})
	})

	_, err := fx.client.Compose(context.Background(), "tok", entity.MessageComposeRequest{Message: "hi"})

	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "MESSAGE_TOO_LONG", backendErr.Code)
	assert.Equal(t, "message is too long", backendErr.Details())
	assert.Equal(t, "BACKEND_ERROR", backendErr.ErrorCode())
}

func TestClient_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantReason string
	}{
		{
			name:       "json error body",
			status:     http.StatusUnauthorized,
			body:       `{"code":"TOKEN_EXPIRED","message":"token expired"}`,
			wantCode:   "BACKEND_UNAUTHORIZED",
			wantReason: "token expired",
		},
		{
			name:       "error field",
			status:     http.StatusBadRequest,
			body:       `{"error":"bad file"}`,
			wantCode:   "BACKEND_ERROR",
			wantReason: "bad file",
		},
		{
			name:       "plain text body",
			status:     http.StatusInternalServerError,
			body:       "upstream exploded\n",
			wantCode:   "BACKEND_ERROR",
			wantReason: "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := fx.client.GetUser(context.Background(), "tok")

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			assert.Equal(t, tt.wantReason, appErr.Details())
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	fx.server.Close()

	_, err := fx.client.Refresh(context.Background(), "refresh")

	var netErr *domainerrors.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "NETWORK_ERROR", netErr.ErrorCode())
	assert.Equal(t, "/api/auth/refresh", netErr.Endpoint)
}

func TestClient_Translate(t *testing.T) {
	simple := true
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/translate/file", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "pdf", r.FormValue("fileType"))
		assert.Equal(t, "KOREAN", r.FormValue("targetLanguage"))
		assert.Equal(t, "true", r.FormValue("useSimpleLanguage"))
		assert.Empty(t, r.MultipartForm.Value["sourceLanguageHint"])

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		assert.NoError(t, err)
		assert.Equal(t, "doc.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.4", string(content))

		// Bare payload, no envelope.
		writeJSON(t, w, http.StatusOK, map[string]any{
			"originalFileName": "doc.pdf",
			"translatedText":   "번역",
			"summary":          "요약",
			"events":           []map[string]any{{"title": "Field trip", "date": "2026-05-01"}},
			"timings":          map[string]any{"totalMs": 1200},
			"fileMeta":         map[string]any{"fileName": "doc.pdf", "fileType": "pdf", "sizeBytes": 8, "pageCount": 1},
		})
	})

	result, err := fx.client.Translate(context.Background(), "tok", &entity.TranslationRequest{
		FileName:          "doc.pdf",
		Content:           []byte("%PDF-1.4"),
		ContentType:       "application/pdf",
		FileType:          entity.FileTypePDF,
		TargetLanguage:    "KOREAN",
		UseSimpleLanguage: &simple,
	})

	require.NoError(t, err)
	assert.Equal(t, "doc.pdf", result.OriginalFileName)
	assert.Equal(t, "번역", result.TranslatedText)
	assert.Equal(t, []entity.SchoolEvent{{Title: "Field trip", Date: "2026-05-01"}}, result.Events)
	assert.Nil(t, result.Vocabulary)
	assert.Equal(t, int64(1200), result.Timings.TotalMs)
	assert.Equal(t, entity.FileMeta{FileName: "doc.pdf", FileType: entity.FileTypePDF, SizeBytes: 8, PageCount: 1}, result.FileMeta)
	assert.True(t, result.CreatedAt.IsZero())
}

func TestClient_Retranslate(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/translate/retranslate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"originalFileName":   "doc.pdf",
			"targetLanguage":     "VIETNAMESE",
			"sourceLanguageHint": "ko",
		}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"originalFileName": "doc.pdf",
			"targetLanguage":   "VIETNAMESE",
			"createdAt":        "2026-03-02T09:00:00Z",
		})
	})

	result, err := fx.client.Retranslate(context.Background(), "tok", service.RetranslateInput{
		OriginalFileName:   "doc.pdf",
		TargetLanguage:     "VIETNAMESE",
		SourceLanguageHint: "ko",
	})

	require.NoError(t, err)
	assert.Equal(t, "VIETNAMESE", result.TargetLanguage)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), result.CreatedAt)
}

func TestClient_ComposeForwardsRequestID(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(deliverycontext.HeaderXRequestID))

		var body composeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, composeRequest{Message: "내일 결석합니다", TargetLanguage: "ENGLISH"}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"isSuccess": true,
			"result":    map[string]any{"translatedMessage": "Absent tomorrow"},
		})
	})
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	result, err := fx.client.Compose(ctx, "tok", entity.MessageComposeRequest{
		Message:        "내일 결석합니다",
		TargetLanguage: "ENGLISH",
	})

	require.NoError(t, err)
	assert.Equal(t, "Absent tomorrow", result.TranslatedMessage)
}

func TestClient_ComposeEmptyMessage(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"isSuccess": true,
			"result":    map[string]any{"translatedMessage": ""},
		})
	})

	result, err := fx.client.Compose(context.Background(), "tok", entity.MessageComposeRequest{Message: "hi"})

	assert.Nil(t, result)
	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "EMPTY_RESPONSE", backendErr.Code)
	assert.Equal(t, "/api/message/compose", backendErr.Endpoint)
}

func TestClient_Profile(t *testing.T) {
	user := map[string]any{
		"id":       "u-1",
		"name":     "Kim",
		"email":    "kim@example.com",
		"provider": "kakao",
		"children": []map[string]any{{"id": "c-1", "name": "Minji", "school": "Hana Elementary", "grade": 3}},
	}
	var (
		mu   sync.Mutex
		seen []string
	)
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		mu.Unlock()
		writeJSON(t, w, http.StatusOK, map[string]any{"isSuccess": true, "result": user})
	})
	ctx := context.Background()

	got, err := fx.client.GetUser(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderKakao, got.Provider)
	assert.Equal(t, []entity.Child{{ID: "c-1", Name: "Minji", School: "Hana Elementary", Grade: 3}}, got.Children)

	name := "Lee"
	_, err = fx.client.UpdateUser(ctx, "tok", service.UserPatch{Name: &name})
	require.NoError(t, err)
	_, err = fx.client.AddChild(ctx, "tok", entity.Child{Name: "Jun", School: "Hana Elementary"})
	require.NoError(t, err)
	_, err = fx.client.UpdateChild(ctx, "tok", "c 1", service.ChildPatch{Name: &name})
	require.NoError(t, err)
	_, err = fx.client.RemoveChild(ctx, "tok", "c-1")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /api/user",
		"PATCH /api/user",
		"POST /api/user/children",
		"PATCH /api/user/children/c%201",
		"DELETE /api/user/children/c-1",
	}, seen)
}

func TestClient_ProfileMissingUser(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"isSuccess": true, "result": nil})
	})

	_, err := fx.client.GetUser(context.Background(), "tok")

	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "EMPTY_RESPONSE", backendErr.Code)
}

func TestClient_ListHistory(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/translations/history", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"isSuccess": true,
			"result": []map[string]any{
				{"id": "h-2", "originalFileName": "b.png", "fileType": "image", "fileSize": 2048, "processingTimeMs": 900},
				{"id": "h-1", "originalFileName": "a.pdf", "fileType": "pdf", "pageCount": 3},
			},
		})
	})

	records, err := fx.client.ListHistory(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "h-2", records[0].ID)
	assert.Equal(t, entity.FileTypeImage, records[0].FileType)
	assert.Equal(t, int64(2048), records[0].FileSize)
	assert.Equal(t, int64(900), records[0].ProcessingMs)
	assert.Equal(t, 3, records[1].PageCount)
}

func TestClient_Logout(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		writeJSON(t, w, http.StatusOK, map[string]any{"isSuccess": true})
	})

	assert.NoError(t, fx.client.Logout(context.Background(), "tok"))
}
