package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"story_ingest/internal/domain"
)

type DownloadStore struct {
	db *sqlx.DB
}

func NewDownloadStore(db *sqlx.DB) *DownloadStore {
	return &DownloadStore{db: db}
}

func (s *DownloadStore) Create(ctx context.Context, d *domain.Download) error {
	query := `
		INSERT INTO downloads (
			feeds_id, stories_id, url, host, type, sequence, state, path, priority, extracted
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING downloads_id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		d.FeedID,
		d.StoryID,
		d.URL,
		d.Host,
		d.Type,
		d.Sequence,
		d.State,
		d.Path,
		d.Priority,
		d.Extracted,
	).Scan(&d.ID)
}
