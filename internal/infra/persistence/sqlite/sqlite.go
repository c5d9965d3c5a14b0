// Package sqlite stores device-local preferences in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"schoolnote/config"
	"schoolnote/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

const (
	driverName         = "sqlite"
	memoryPath         = ":memory:"
	defaultBusyTimeout = 5 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the preference database and closes it when the app stops.
func New(params Params) (*sql.DB, error) {
	cfg := params.Config.Preferences
	if cfg == nil {
		cfg = &config.PreferencesConfig{Path: memoryPath}
	}

	db, err := Open(context.Background(), cfg.Path, cfg.BusyTimeout)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping preference database")
			}
			params.Logger.Info("Preference database ready", slog.String("path", cfg.Path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open creates the database file if needed, applies pragmas through the DSN and migrates the schema.
func Open(ctx context.Context, path string, busyTimeout time.Duration) (*sql.DB, error) {
	if path == "" {
		path = memoryPath
	}
	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "failed to create preference directory")
			}
		}
	}

	db, err := sql.Open(driverName, BuildDSN(path, busyTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open preference database")
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

// BuildDSN embeds the pragmas in the DSN so every pooled connection gets them.
func BuildDSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeout
	}

	query := url.Values{}
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	if path != memoryPath {
		query.Add("_pragma", "journal_mode(WAL)")
	}
	query.Add("_pragma", "synchronous(NORMAL)")

	return "file:" + path + "?" + query.Encode()
}
