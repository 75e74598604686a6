package service

import (
	"context"
	"fmt"

	"story_ingest/internal/domain"
)

// CreateDownloadForNewStory records the initial content download for a new
// story and hands content to the sink for extraction.
func (s *StoryService) CreateDownloadForNewStory(ctx context.Context, story *domain.Story, feed *domain.Feed, content string) (*domain.Download, error) {
	download := &domain.Download{
		FeedID:    feed.ID,
		StoryID:   story.ID,
		URL:       story.URL,
		Host:      s.urls.Host(story.URL),
		Type:      domain.DownloadTypeContent,
		Sequence:  1,
		State:     domain.DownloadStateSuccess,
		Path:      domain.DownloadPathPending,
		Priority:  1,
		Extracted: false,
	}

	if err := s.downloads.Create(ctx, download); err != nil {
		return nil, fmt.Errorf("create download: %w", err)
	}

	if err := s.sink.Enqueue(ctx, download, content); err != nil {
		return nil, fmt.Errorf("enqueue download %d: %w", download.ID, err)
	}

	return download, nil
}
