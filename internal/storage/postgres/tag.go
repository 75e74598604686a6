package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"story_ingest/internal/domain"
)

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// GetOrCreate returns the tag named tag in the tag set named tagSet, creating
// either as needed. The no-op DO UPDATE makes RETURNING yield the existing
// row on conflict.
func (s *TagStore) GetOrCreate(ctx context.Context, tagSet, tag string) (*domain.Tag, error) {
	exec := GetExecutor(ctx, s.db)

	var ts domain.TagSet
	err := sqlx.GetContext(ctx, exec, &ts, `
		INSERT INTO tag_sets (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING tag_sets_id, name`,
		tagSet,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert tag set: %w", err)
	}

	var t domain.Tag
	err = sqlx.GetContext(ctx, exec, &t, `
		INSERT INTO tags (tag_sets_id, tag) VALUES ($1, $2)
		ON CONFLICT (tag_sets_id, tag) DO UPDATE SET tag = EXCLUDED.tag
		RETURNING tags_id, tag, tag_sets_id`,
		ts.ID, tag,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert tag: %w", err)
	}
	return &t, nil
}

func (s *TagStore) LinkToStory(ctx context.Context, storyID, tagID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO stories_tags_map (stories_id, tags_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		storyID, tagID,
	)
	return err
}
