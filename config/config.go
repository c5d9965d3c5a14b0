package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "25MB"
	defaultMaxFileSize        = "20MB"
	defaultAPITimeout         = 60 * time.Second
	defaultPreferencesPath    = "schoolnote.db"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// HTTP configures the local companion API a UI shell talks to
	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API configures the remote translation backend
	API *APIConfig `json:"api" yaml:"api"`

	Translation *TranslationConfig `json:"translation" yaml:"translation"`

	Preferences *PreferencesConfig `json:"preferences" yaml:"preferences"`

	Locale *LocaleConfig `json:"locale" yaml:"locale"`

	// Auth signs the command-line client in at startup when a token is set
	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

// APIConfig defines how the backend is reached
type APIConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`

	// Client-side request rate in requests per second; 0 disables throttling
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`

	Endpoints EndpointsConfig `json:"endpoints" yaml:"endpoints"`
}

// EndpointsConfig holds backend paths relative to BaseURL.
// The contract is provisional, so every path is configurable.
type EndpointsConfig struct {
	Guest       string `json:"guest" yaml:"guest"`
	Login       string `json:"login" yaml:"login"`
	Logout      string `json:"logout" yaml:"logout"`
	Refresh     string `json:"refresh" yaml:"refresh"`
	Compose     string `json:"compose" yaml:"compose"`
	Translate   string `json:"translate" yaml:"translate"`
	Retranslate string `json:"retranslate" yaml:"retranslate"`
	User        string `json:"user" yaml:"user"`
	Children    string `json:"children" yaml:"children"`
	History     string `json:"history" yaml:"history"`
}

// TranslationConfig defines upload limits
type TranslationConfig struct {
	// Largest accepted file, e.g. "20MB"
	MaxFileSize string `json:"maxFileSize" yaml:"maxFileSize"`
}

// MaxFileBytes returns MaxFileSize in bytes, or the default when unset or malformed.
func (c *TranslationConfig) MaxFileBytes() int64 {
	size := defaultMaxFileSize
	if c != nil && strings.TrimSpace(c.MaxFileSize) != "" {
		size = c.MaxFileSize
	}

	n, err := bytes.Parse(size)
	if err != nil || n <= 0 {
		n, _ = bytes.Parse(defaultMaxFileSize)
	}

	return n
}

// PreferencesConfig defines where device-local settings are stored
type PreferencesConfig struct {
	// SQLite database file; ":memory:" keeps preferences for the process lifetime only
	Path        string        `json:"path" yaml:"path"`
	BusyTimeout time.Duration `json:"busyTimeout" yaml:"busyTimeout"`
}

// AuthConfig holds a provider token exchanged through login at startup.
type AuthConfig struct {
	Provider string `json:"provider" yaml:"provider"`
	Token    string `json:"token" yaml:"token"`
}

// LocaleConfig defines device locale detection
type LocaleConfig struct {
	// Comma separated locales used instead of LANGUAGE/LC_ALL/LC_MESSAGES/LANG
	DeviceOverride string `json:"deviceOverride" yaml:"deviceOverride"`
	// Optional directory of <code>.yaml files merged over the embedded catalogs
	CatalogDir string `json:"catalogDir" yaml:"catalogDir"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config/config.yaml with environment overrides. A .env file in the
// working directory, when present, is applied to the environment first.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects values that cannot be parsed.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if _, err := bytes.Parse(cfg.HTTP.MaxRequestBodySize); err != nil {
		return errors.Wrapf(err, "invalid http.maxRequestBodySize %q", cfg.HTTP.MaxRequestBodySize)
	}

	if cfg.API == nil || strings.TrimSpace(cfg.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	cfg.API.Endpoints = cfg.API.Endpoints.WithDefaults()

	if cfg.Translation == nil {
		cfg.Translation = &TranslationConfig{MaxFileSize: defaultMaxFileSize}
	}
	if strings.TrimSpace(cfg.Translation.MaxFileSize) != "" {
		if _, err := bytes.Parse(cfg.Translation.MaxFileSize); err != nil {
			return errors.Wrapf(err, "invalid translation.maxFileSize %q", cfg.Translation.MaxFileSize)
		}
	}

	if cfg.Preferences == nil {
		cfg.Preferences = &PreferencesConfig{}
	}
	if strings.TrimSpace(cfg.Preferences.Path) == "" {
		cfg.Preferences.Path = defaultPreferencesPath
	}

	if cfg.Locale == nil {
		cfg.Locale = &LocaleConfig{}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	return nil
}

// WithDefaults fills empty paths with the default backend routes.
func (e EndpointsConfig) WithDefaults() EndpointsConfig {
	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}
	fill(&e.Guest, "/api/auth/guest")
	fill(&e.Login, "/api/auth/login")
	fill(&e.Logout, "/api/auth/logout")
	fill(&e.Refresh, "/api/auth/refresh")
	fill(&e.Compose, "/api/message/compose")
	fill(&e.Translate, "/api/translate/file")
	fill(&e.Retranslate, "/api/translate/retranslate")
	fill(&e.User, "/api/user")
	fill(&e.Children, "/api/user/children")
	fill(&e.History, "/api/translations/history")

	return e
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
