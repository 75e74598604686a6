package service

import (
	"context"
	"errors"
	"fmt"

	"story_ingest/internal/domain"
)

// Ingest returns the existing story for req's url, or creates one. New
// stories take the redirect url when there is one that is not ignored.
func (s *StoryService) Ingest(ctx context.Context, req domain.IngestRequest) (*domain.IngestResult, error) {
	if req.URL == "" {
		return nil, errors.New("ingest request has no url")
	}

	keys, storyURL, err := s.urlVariants(ctx, req.URL, req.RedirectURL)
	if err != nil {
		return nil, fmt.Errorf("url variants: %w", err)
	}

	matches, err := s.FindMatchingStories(ctx, keys)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		story, err := s.PreferredStory(ctx, keys, matches)
		if err != nil {
			return nil, fmt.Errorf("preferred story: %w", err)
		}
		s.logger.Debug("matched existing story",
			"url", req.URL,
			"stories_id", story.ID,
			"candidates", len(matches),
		)
		return &domain.IngestResult{Story: story}, nil
	}

	story, err := s.AddNewStory(ctx, storyURL, req.Content, req.FallbackDate)
	if err != nil {
		return nil, fmt.Errorf("add new story: %w", err)
	}
	return &domain.IngestResult{Story: story, Created: true}, nil
}
