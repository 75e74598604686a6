package service

import (
	"context"
	"fmt"
	"time"

	"story_ingest/internal/domain"
)

// AddNewStory creates a spidered story for url, guessing its medium, feed,
// title and publish date from url and content. The publish date is the
// guessed date, else fallbackDate, else now.
//
// Null characters are stripped from the url, guid and title since the store
// rejects them. Medium, feed and tag lookups are idempotent and run first. The story row,
// its tags, its feed link, its download and the sink hand-off then run in one
// transaction, so a failure in any of them leaves no story behind. The sink
// sees the download before the commit, so consumers may briefly miss it.
func (s *StoryService) AddNewStory(ctx context.Context, url, content string, fallbackDate *time.Time) (*domain.Story, error) {
	url = stripNulls(truncate(url, s.config.MaxURLLength))

	medium, err := s.SpiderMedium(ctx, url)
	if err != nil {
		return nil, err
	}
	feed, err := s.SpiderFeed(ctx, medium)
	if err != nil {
		return nil, err
	}
	spidered, err := s.spideredTag(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	story := &domain.Story{
		URL:         url,
		GUID:        url,
		MediaID:     medium.ID,
		CollectDate: now,
		Title:       stripNulls(s.titles.ExtractTitle(content, url, s.config.MaxTitleLength)),
		Description: "",
	}

	guess := s.dates.Guess(url, content)
	switch {
	case guess.Found:
		story.PublishDate = guess.Date
	case fallbackDate != nil:
		story.PublishDate = *fallbackDate
	default:
		story.PublishDate = now
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.stories.Create(txCtx, story); err != nil {
			return fmt.Errorf("create story: %w", err)
		}
		if err := s.tags.LinkToStory(txCtx, story.ID, spidered.ID); err != nil {
			return fmt.Errorf("link spidered tag: %w", err)
		}
		if err := s.AssignDateGuessTag(txCtx, story, guess, fallbackDate); err != nil {
			return err
		}
		if err := s.stories.LinkToFeed(txCtx, story.ID, feed.ID); err != nil {
			return fmt.Errorf("link story to feed: %w", err)
		}
		if _, err := s.CreateDownloadForNewStory(txCtx, story, feed, content); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("added story",
		"stories_id", story.ID,
		"media_id", story.MediaID,
		"url", story.URL,
		"title", story.Title,
		"publish_date", story.PublishDate,
	)

	return story, nil
}
