package locale

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"schoolnote/config"
	"schoolnote/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errorCodes = []string{
	"NO_ACCESS_TOKEN", "GUEST_TOKEN_FAILED", "LOGIN_FAILED", "REFRESH_TOKEN_MISSING",
	"REFRESH_FAILED", "SESSION_CHANGED", "UNSUPPORTED_PROVIDER", "TRANSLATION_FAILED", "NO_CURRENT_REQUEST",
	"UNSUPPORTED_FILE_TYPE", "FILE_TOO_LARGE", "COMPOSE_FAILED", "PROFILE_FAILED",
	"HISTORY_FAILED", "UNSUPPORTED_LANGUAGE", "PREFERENCE_FAILED", "VALIDATION_FAILED",
	"INTERNAL_ERROR", "NOT_FOUND", "BACKEND_UNAUTHORIZED", "BACKEND_ERROR", "NETWORK_ERROR",
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalog_EmbeddedLanguages(t *testing.T) {
	c, err := loadCatalog("", newTestLogger())
	require.NoError(t, err)

	for _, code := range entity.LanguageCodes() {
		t.Run(code, func(t *testing.T) {
			title, ok := c.Lookup(code, "app.title")
			assert.True(t, ok)
			assert.NotEmpty(t, title)

			for _, tab := range []string{"summary", "translation", "original", "events", "vocabulary"} {
				_, ok := c.Lookup(code, "translation.tabs."+tab)
				assert.True(t, ok, "missing tab %s", tab)
			}
		})
	}
}

func TestCatalog_FallbackLanguageIsComplete(t *testing.T) {
	c, err := loadCatalog("", newTestLogger())
	require.NoError(t, err)

	en := c.Messages(entity.FallbackLanguage)
	for _, code := range errorCodes {
		assert.Contains(t, en, "errors."+code)
	}

}

func TestCatalog_EveryLanguageCoversFallbackKeys(t *testing.T) {
	c, err := loadCatalog("", newTestLogger())
	require.NoError(t, err)

	en := c.Messages(entity.FallbackLanguage)
	for _, code := range entity.LanguageCodes() {
		t.Run(code, func(t *testing.T) {
			messages := c.Messages(code)
			for key := range en {
				assert.NotEmpty(t, messages[key], "missing %s", key)
			}
			assert.Len(t, messages, len(en))
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := loadCatalog("", newTestLogger())
	require.NoError(t, err)

	message, ok := c.Lookup("ko", "translation.tabs.summary")
	assert.True(t, ok)
	assert.Equal(t, "요약", message)

	_, ok = c.Lookup("ko", "does.not.exist")
	assert.False(t, ok)

	_, ok = c.Lookup("xx", "app.title")
	assert.False(t, ok)
	assert.Empty(t, c.Messages("xx"))
}

func TestCatalog_MessagesReturnsCopy(t *testing.T) {
	c, err := loadCatalog("", newTestLogger())
	require.NoError(t, err)

	messages := c.Messages("en")
	messages["app.title"] = "changed"

	title, _ := c.Lookup("en", "app.title")
	assert.Equal(t, "School Notice Translator", title)
}

func TestCatalog_Override(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vi.yaml"), []byte("app:\n  title: Thông báo\nextra:\n  key: value\n"), 0o600))

	cat, err := NewCatalog(&config.Config{Locale: &config.LocaleConfig{CatalogDir: dir}}, newTestLogger())
	require.NoError(t, err)

	title, _ := cat.Lookup("vi", "app.title")
	assert.Equal(t, "Thông báo", title)
	extra, ok := cat.Lookup("vi", "extra.key")
	assert.True(t, ok)
	assert.Equal(t, "value", extra)
	// Keys absent from the override keep their embedded value.
	retry, _ := cat.Lookup("vi", "translation.retry")
	assert.Equal(t, "Thử lại", retry)
}

func TestDeviceLocales_Preferred(t *testing.T) {
	tests := []struct {
		name     string
		override string
		env      map[string]string
		want     []string
	}{
		{
			name: "language list first",
			env: map[string]string{
				"LANGUAGE": "vi_VN:en",
				"LC_ALL":   "",
				"LANG":     "ko_KR.UTF-8",
			},
			want: []string{"vi_VN", "en", "ko_KR.UTF-8"},
		},
		{
			name: "duplicates dropped",
			env:  map[string]string{"LC_ALL": "ja_JP.UTF-8", "LC_MESSAGES": "ja_JP.UTF-8", "LANG": "C"},
			want: []string{"ja_JP.UTF-8", "C"},
		},
		{
			name:     "override wins",
			override: "th-TH, en-US",
			env:      map[string]string{"LANG": "ko_KR.UTF-8"},
			want:     []string{"th-TH", "en-US"},
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Locale: &config.LocaleConfig{DeviceOverride: tt.override}}
			d, ok := NewDeviceLocales(cfg).(*deviceLocales)
			require.True(t, ok)
			d.getenv = func(key string) string { return tt.env[key] }

			got := d.Preferred()

			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
