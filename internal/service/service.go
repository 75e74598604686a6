// Package service decides whether a fetched URL is a story the system already
// knows and, if not, creates the story and queues it for extraction.
package service

import (
	"log/slog"
	"strings"
	"time"

	"story_ingest/internal/config"
)

// Stores groups the content store adapters the service reads and writes.
type Stores struct {
	Stories   StoryStore
	Media     MediaStore
	Feeds     FeedStore
	Tags      TagStore
	Downloads DownloadStore
	Redirects RedirectStore
}

type StoryService struct {
	stories   StoryStore
	media     MediaStore
	feeds     FeedStore
	tags      TagStore
	downloads DownloadStore
	redirects RedirectStore
	txManager TransactionManager
	sink      DownloadSink
	urls      URLNormalizer
	titles    TitleExtractor
	dates     DateGuesser
	logger    *slog.Logger
	config    config.IngestConfig
	now       func() time.Time
}

func NewStoryService(
	stores Stores,
	txManager TransactionManager,
	sink DownloadSink,
	urls URLNormalizer,
	titles TitleExtractor,
	dates DateGuesser,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *StoryService {
	return &StoryService{
		stories:   stores.Stories,
		media:     stores.Media,
		feeds:     stores.Feeds,
		tags:      stores.Tags,
		downloads: stores.Downloads,
		redirects: stores.Redirects,
		txManager: txManager,
		sink:      sink,
		urls:      urls,
		titles:    titles,
		dates:     dates,
		logger:    logger.With("component", "story_service"),
		config:    cfg,
		now:       time.Now,
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func stripNulls(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
