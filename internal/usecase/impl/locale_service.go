package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// baseAliases maps ISO 639 bases the registry spells differently.
var baseAliases = map[string]string{
	"fil": "tl",
	"cmn": "zh",
	"yue": "zh",
}

// localeService implements the LocaleUsecase interface.
type localeService struct {
	catalog     service.MessageCatalog
	device      service.DeviceLocales
	preferences usecase.PreferenceUsecase
	store       *state.Store
	logger      *slog.Logger
}

// NewLocaleService is the constructor for localeService.
func NewLocaleService(
	catalog service.MessageCatalog,
	device service.DeviceLocales,
	preferences usecase.PreferenceUsecase,
	store *state.Store,
	logger *slog.Logger,
) usecase.LocaleUsecase {
	return &localeService{
		catalog:     catalog,
		device:      device,
		preferences: preferences,
		store:       store,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *localeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DetectDeviceLanguage returns the first exact registered match, then the first
// base-language match, then the fallback language.
func (srv *localeService) DetectDeviceLanguage(preferences []string) string {
	return DetectLanguage(preferences)
}

// DeviceLanguage detects the registered language from the device locales.
func (srv *localeService) DeviceLanguage() string {
	return DetectLanguage(srv.device.Preferred())
}

// CurrentLanguage returns the display language.
func (srv *localeService) CurrentLanguage() string {
	var code string
	srv.store.Read(func(st *state.AppState) {
		code = st.Language
	})
	if code == "" {
		return entity.FallbackLanguage
	}

	return code
}

// Languages returns the registered languages in picker order.
func (srv *localeService) Languages() []entity.Language {
	return slices.Clone(entity.Languages)
}

// ChangeLanguage persists code and then makes it current.
func (srv *localeService) ChangeLanguage(ctx context.Context, code string) error {
	if !entity.IsRegisteredLanguage(code) {
		return domainerrors.ErrUnsupportedLanguage.WithDetails(code)
	}
	if err := srv.preferences.SetLanguage(ctx, code); err != nil {
		return errors.Wrap(err, "failed to change language")
	}

	srv.store.Update(func(st *state.AppState) {
		st.Language = code
	})
	srv.log(ctx).Info("Language changed", slog.String("language", code))

	return nil
}

// ShouldShowLanguageOnboarding is true while no language was ever chosen.
func (srv *localeService) ShouldShowLanguageOnboarding(ctx context.Context) (bool, error) {
	_, saved, err := srv.preferences.Language(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to check language onboarding")
	}

	return !saved, nil
}

// Initialize makes the persisted language current, falling back to the device language.
func (srv *localeService) Initialize(ctx context.Context) (string, error) {
	code, saved, err := srv.preferences.Language(ctx)
	if err != nil {
		srv.log(ctx).Warn("Could not read saved language, using device language", slog.Any("error", err))
	}
	if err != nil || !saved || !entity.IsRegisteredLanguage(code) {
		code = srv.DeviceLanguage()
	}

	srv.store.Update(func(st *state.AppState) {
		st.Language = code
	})
	srv.log(ctx).Info("Locale initialized", slog.String("language", code), slog.Bool("saved", saved))

	return code, nil
}

// Translate returns the message for key, or key itself when no catalog has it.
func (srv *localeService) Translate(key string) string {
	return srv.Localize(key, key)
}

// Localize looks key up in the current language, then the fallback language.
func (srv *localeService) Localize(key, fallback string) string {
	if message, ok := srv.catalog.Lookup(srv.CurrentLanguage(), key); ok {
		return message
	}
	if message, ok := srv.catalog.Lookup(entity.FallbackLanguage, key); ok {
		return message
	}

	return fallback
}

// Messages returns every message of the current language, filled from the fallback language.
func (srv *localeService) Messages() map[string]string {
	messages := maps.Clone(srv.catalog.Messages(entity.FallbackLanguage))
	if messages == nil {
		messages = make(map[string]string)
	}
	maps.Copy(messages, srv.catalog.Messages(srv.CurrentLanguage()))

	return messages
}

// DetectLanguage picks a registered language code from locale preferences,
// most preferred first. POSIX spellings such as "ko_KR.UTF-8" are accepted.
func DetectLanguage(preferences []string) string {
	normalized := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		if tag := normalizeLocale(pref); tag != "" {
			normalized = append(normalized, tag)
		}
	}

	for _, tag := range normalized {
		if entity.IsRegisteredLanguage(tag) {
			return tag
		}
	}
	for _, tag := range normalized {
		if base := baseLanguage(tag); entity.IsRegisteredLanguage(base) {
			return base
		}
	}

	return entity.FallbackLanguage
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if locale == "c" || locale == "posix" {
		return ""
	}

	return locale
}

func baseLanguage(tag string) string {
	base := tag
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		base = tag[:i]
	}
	if parsed, err := language.Parse(tag); err == nil {
		if b, confidence := parsed.Base(); confidence != language.No {
			base = b.String()
		}
	}
	if alias, ok := baseAliases[base]; ok {
		return alias
	}

	return base
}
