package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RedirectStore holds medium urls whose redirects are not followed.
type RedirectStore struct {
	db *sqlx.DB
}

func NewRedirectStore(db *sqlx.DB) *RedirectStore {
	return &RedirectStore{db: db}
}

func (s *RedirectStore) IsIgnored(ctx context.Context, mediumURL string) (bool, error) {
	var ignored bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &ignored,
		"SELECT EXISTS (SELECT 1 FROM ignore_redirects WHERE url = $1)",
		mediumURL,
	)
	return ignored, err
}

func (s *RedirectStore) Add(ctx context.Context, mediumURL string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO ignore_redirects (url) VALUES ($1) ON CONFLICT DO NOTHING",
		mediumURL,
	)
	return err
}
