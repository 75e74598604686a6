package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"story_ingest/internal/domain"
)

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

const storyColumns = `s.stories_id, s.url, s.guid, s.media_id, s.collect_date, s.title, s.description, s.publish_date`

func (s *StoryStore) FindByKeys(ctx context.Context, keys []string) ([]domain.Story, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		JOIN media m ON m.media_id = s.media_id
		WHERE (s.url = ANY($1) OR s.guid = ANY($1))
			AND m.foreign_rss_links = false
		UNION
		SELECT ` + storyColumns + `
		FROM stories s
		JOIN media m ON m.media_id = s.media_id
		JOIN seed_urls su ON su.stories_id = s.stories_id
		WHERE su.url = ANY($1)
			AND m.foreign_rss_links = false
		ORDER BY stories_id`

	var stories []domain.Story
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &stories, query, pq.Array(keys))
	return stories, err
}

func (s *StoryStore) Create(ctx context.Context, story *domain.Story) error {
	query := `
		INSERT INTO stories (
			url, guid, media_id, collect_date, title, description, publish_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING stories_id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		story.URL,
		story.GUID,
		story.MediaID,
		story.CollectDate,
		story.Title,
		story.Description,
		story.PublishDate,
	).Scan(&story.ID)
}

func (s *StoryStore) StoryWithMostSentences(ctx context.Context, ids []int64) (int64, error) {
	query := `
		SELECT stories_id
		FROM story_sentences
		WHERE stories_id = ANY($1)
		GROUP BY stories_id
		ORDER BY count(*) DESC, stories_id
		LIMIT 1`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query, pq.Array(ids))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *StoryStore) LinkToFeed(ctx context.Context, storyID, feedID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO feeds_stories_map (feeds_id, stories_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		feedID, storyID,
	)
	return err
}

// AddSeedURL registers url as an extra matching key for a story.
func (s *StoryStore) AddSeedURL(ctx context.Context, url string, storyID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO seed_urls (url, stories_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		url, storyID,
	)
	return err
}
