package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"story_ingest/internal/domain"
)

type MediaStore struct {
	db *sqlx.DB
}

func NewMediaStore(db *sqlx.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediumColumns = `
	m.media_id, m.url, m.name, m.dup_media_id, m.foreign_rss_links,
	EXISTS (SELECT 1 FROM media d WHERE d.dup_media_id = m.media_id) AS is_dup_target`

func (s *MediaStore) FindByIDs(ctx context.Context, ids []int64) ([]domain.Medium, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + mediumColumns + ` FROM media m WHERE m.media_id = ANY($1) ORDER BY m.media_id`

	var media []domain.Medium
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &media, query, pq.Array(ids))
	return media, err
}

func (s *MediaStore) GetByID(ctx context.Context, id int64) (*domain.Medium, error) {
	query := `SELECT ` + mediumColumns + ` FROM media m WHERE m.media_id = $1`

	var medium domain.Medium
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &medium, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("medium %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &medium, nil
}

// GetOrCreate returns the medium with the given url or, failing that, the
// given name, creating it when neither exists. Concurrent callers racing on
// the same url or name end up with the same row.
func (s *MediaStore) GetOrCreate(ctx context.Context, url, name string) (*domain.Medium, error) {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"INSERT INTO media (url, name, foreign_rss_links) VALUES ($1, $2, false) ON CONFLICT DO NOTHING",
		url, name,
	)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + mediumColumns + `
		FROM media m
		WHERE m.url = $1 OR lower(m.name) = lower($2)
		ORDER BY (m.url = $1) DESC, m.media_id
		LIMIT 1`

	var medium domain.Medium
	if err := sqlx.GetContext(ctx, exec, &medium, query, url, name); err != nil {
		return nil, err
	}
	return &medium, nil
}
