// Package locale holds the UI message catalogs and reads the device locale.
package locale

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"schoolnote/config"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

//go:embed catalogs/*.yaml
var embedded embed.FS

// embeddedProvider feeds one embedded catalog file to koanf.
type embeddedProvider struct {
	name string
}

func (p embeddedProvider) ReadBytes() ([]byte, error) {
	return embedded.ReadFile("catalogs/" + p.name)
}

func (p embeddedProvider) Read() (map[string]any, error) {
	return nil, errors.New("embedded catalogs must be read with a parser")
}

// catalog keeps every language's messages flattened to dotted keys.
type catalog struct {
	messages map[string]map[string]string
}

// NewCatalog loads the embedded catalogs and merges overrides from locale.catalogDir.
func NewCatalog(cfg *config.Config, logger *slog.Logger) (service.MessageCatalog, error) {
	var dir string
	if cfg.Locale != nil {
		dir = cfg.Locale.CatalogDir
	}

	return loadCatalog(dir, logger)
}

func loadCatalog(overrideDir string, logger *slog.Logger) (*catalog, error) {
	c := &catalog{messages: make(map[string]map[string]string, len(entity.Languages))}

	for _, code := range entity.LanguageCodes() {
		k := koanf.New(".")
		name := code + ".yaml"

		if err := k.Load(embeddedProvider{name: name}, yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load catalog %s", name)
		}

		if overrideDir != "" {
			path := filepath.Join(overrideDir, name)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
					return nil, errors.Wrapf(err, "failed to load catalog override %s", path)
				}
				logger.Info("Loaded catalog override", slog.String("path", path))
			}
		}

		flat := make(map[string]string, len(k.Keys()))
		for key, value := range k.All() {
			flat[key] = fmt.Sprint(value)
		}
		c.messages[code] = flat
	}

	return c, nil
}

// Lookup returns the message stored under key for lang.
func (c *catalog) Lookup(lang, key string) (string, bool) {
	message, ok := c.messages[lang][key]

	return message, ok
}

// Messages returns a copy of lang's messages; unknown languages yield an empty map.
func (c *catalog) Messages(lang string) map[string]string {
	out := make(map[string]string, len(c.messages[lang]))
	for key, value := range c.messages[lang] {
		out[key] = value
	}

	return out
}
