package service

import (
	"context"
	"fmt"

	"story_ingest/internal/domain"
)

const (
	spiderFeedName = "Spider Feed"

	spideredTagSet = "spidered"
	spideredTag    = "spidered"
)

// SpiderMedium returns the medium for a spidered story url, creating it from
// the url's host when no medium with that url or name exists. A medium that
// duplicates another resolves to its dup target, one hop only.
func (s *StoryService) SpiderMedium(ctx context.Context, storyURL string) (*domain.Medium, error) {
	mediumURL, name := s.urls.MediumURLAndName(storyURL)

	medium, err := s.media.GetOrCreate(ctx, mediumURL, name)
	if err != nil {
		return nil, fmt.Errorf("get or create medium %s: %w", mediumURL, err)
	}

	if medium.DupMediaID != nil {
		target, err := s.media.GetByID(ctx, *medium.DupMediaID)
		if err != nil {
			return nil, fmt.Errorf("get dup target %d of medium %d: %w", *medium.DupMediaID, medium.ID, err)
		}
		return target, nil
	}

	return medium, nil
}

// SpiderFeed returns the per-medium feed that spidered stories belong to.
func (s *StoryService) SpiderFeed(ctx context.Context, medium *domain.Medium) (*domain.Feed, error) {
	feed, err := s.feeds.GetOrCreate(ctx, medium.ID, spiderFeedName, medium.URL)
	if err != nil {
		return nil, fmt.Errorf("get or create spider feed for medium %d: %w", medium.ID, err)
	}
	return feed, nil
}

func (s *StoryService) spideredTag(ctx context.Context) (*domain.Tag, error) {
	tag, err := s.tags.GetOrCreate(ctx, spideredTagSet, spideredTag)
	if err != nil {
		return nil, fmt.Errorf("get or create spidered tag: %w", err)
	}
	return tag, nil
}
