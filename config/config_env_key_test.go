package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl":   "",
			"rateLimit": 5,
			"endpoints": map[string]any{
				"retranslate": "",
			},
		},
		"translation": map[string]any{
			"maxFileSize": "20MB",
		},
		"http": map[string]any{
			"maxRequestBodySize": "25MB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_RATELIMIT", want: "api.rateLimit"},
		{envKey: "API_ENDPOINTS_RETRANSLATE", want: "api.endpoints.retranslate"},
		{envKey: "TRANSLATION_MAXFILESIZE", want: "translation.maxFileSize"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{API: &APIConfig{BaseURL: "http://backend"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, "/api/auth/guest", cfg.API.Endpoints.Guest)
	assert.Equal(t, "/api/translations/history", cfg.API.Endpoints.History)
	assert.Equal(t, defaultPreferencesPath, cfg.Preferences.Path)
	assert.Equal(t, int64(20_000_000), cfg.Translation.MaxFileBytes())
}

func TestApplyDefaults_KeepsConfiguredEndpoints(t *testing.T) {
	cfg := &Config{API: &APIConfig{
		BaseURL:   "http://backend",
		Endpoints: EndpointsConfig{Translate: "/api/번역/file"},
	}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "/api/번역/file", cfg.API.Endpoints.Translate)
	assert.Equal(t, "/api/message/compose", cfg.API.Endpoints.Compose)
}

func TestApplyDefaults_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "missing api", cfg: &Config{}},
		{name: "blank base url", cfg: &Config{API: &APIConfig{BaseURL: " "}}},
		{name: "bad file size", cfg: &Config{
			API:         &APIConfig{BaseURL: "http://backend"},
			Translation: &TranslationConfig{MaxFileSize: "lots"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.applyDefaults())
		})
	}
}

func TestTranslationConfig_MaxFileBytes(t *testing.T) {
	var nilCfg *TranslationConfig
	assert.Equal(t, int64(20_000_000), nilCfg.MaxFileBytes())
	assert.Equal(t, int64(5*1024*1024), (&TranslationConfig{MaxFileSize: "5MiB"}).MaxFileBytes())
	assert.Equal(t, int64(20_000_000), (&TranslationConfig{MaxFileSize: "garbage"}).MaxFileBytes())
}
