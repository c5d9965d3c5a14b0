package locale

import (
	"os"
	"slices"
	"strings"

	"schoolnote/config"
	"schoolnote/internal/domain/service"
)

// deviceLocales reads the POSIX locale environment in priority order.
type deviceLocales struct {
	override []string
	getenv   func(string) string
}

// NewDeviceLocales is the constructor for deviceLocales.
func NewDeviceLocales(cfg *config.Config) service.DeviceLocales {
	var override []string
	if cfg.Locale != nil {
		override = splitList(cfg.Locale.DeviceOverride, ",")
	}

	return &deviceLocales{override: override, getenv: os.Getenv}
}

// Preferred returns the configured override, or LANGUAGE followed by
// LC_ALL, LC_MESSAGES and LANG, without duplicates.
func (d *deviceLocales) Preferred() []string {
	if len(d.override) > 0 {
		return slices.Clone(d.override)
	}

	locales := splitList(d.getenv("LANGUAGE"), ":")
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := strings.TrimSpace(d.getenv(name)); value != "" {
			locales = append(locales, value)
		}
	}

	seen := make(map[string]struct{}, len(locales))
	out := locales[:0]
	for _, locale := range locales {
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}

	return out
}

func splitList(value, sep string) []string {
	var out []string
	for part := range strings.SplitSeq(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
