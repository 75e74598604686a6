package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"story_ingest/internal/domain"
)

type StoryStore interface {
	// FindByKeys returns stories whose url or guid, or a seed url linked to
	// them, is one of keys. Stories of foreign_rss_links media are excluded.
	FindByKeys(ctx context.Context, keys []string) ([]domain.Story, error)
	Create(ctx context.Context, story *domain.Story) error
	// StoryWithMostSentences returns domain.ErrNotFound when none of ids has
	// any sentences.
	StoryWithMostSentences(ctx context.Context, ids []int64) (int64, error)
	LinkToFeed(ctx context.Context, storyID, feedID int64) error
	AddSeedURL(ctx context.Context, url string, storyID int64) error
}

type MediaStore interface {
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Medium, error)
	GetByID(ctx context.Context, id int64) (*domain.Medium, error)
	GetOrCreate(ctx context.Context, url, name string) (*domain.Medium, error)
}

type FeedStore interface {
	GetOrCreate(ctx context.Context, mediaID int64, name, url string) (*domain.Feed, error)
}

type TagStore interface {
	GetOrCreate(ctx context.Context, tagSet, tag string) (*domain.Tag, error)
	LinkToStory(ctx context.Context, storyID, tagID int64) error
}

type DownloadStore interface {
	Create(ctx context.Context, download *domain.Download) error
}

type RedirectStore interface {
	Add(ctx context.Context, mediumURL string) error
	IsIgnored(ctx context.Context, mediumURL string) (bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DownloadSink interface {
	Enqueue(ctx context.Context, download *domain.Download, content string) error
}

type URLNormalizer interface {
	NormalizeLossy(url string) (string, bool)
	DistinctiveDomain(url string) string
	Host(url string) string
	MediumURLAndName(storyURL string) (string, string)
}

type TitleExtractor interface {
	ExtractTitle(html, url string, maxLen int) string
}

type DateGuesser interface {
	Guess(url, content string) domain.DateGuess
}
