package sqlite

import (
	"context"
	"database/sql"
	"time"

	"schoolnote/internal/domain/repository"

	"github.com/pkg/errors"
)

// preferenceRepository implements repository.PreferenceRepository on SQLite.
type preferenceRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewPreferenceRepository returns the repository as a domain interface.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db, now: time.Now}
}

func (repo *preferenceRepository) Get(ctx context.Context, key repository.PreferenceKey) (string, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, string(key))

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrPreferenceNotFound
		}

		return "", errors.Wrapf(err, "failed to read preference %s", key)
	}

	return value, nil
}

func (repo *preferenceRepository) Set(ctx context.Context, key repository.PreferenceKey, value string) error {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, string(key), value, repo.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrapf(err, "failed to write preference %s", key)
	}

	return nil
}
