package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"story_ingest/internal/domain"
)

type FeedStore struct {
	db *sqlx.DB
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db}
}

func (s *FeedStore) GetOrCreate(ctx context.Context, mediaID int64, name, url string) (*domain.Feed, error) {
	query := `
		INSERT INTO feeds (media_id, name, url)
		VALUES ($1, $2, $3)
		ON CONFLICT (media_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING feeds_id, media_id, name, url`

	var feed domain.Feed
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &feed, query, mediaID, name, url); err != nil {
		return nil, err
	}
	return &feed, nil
}
