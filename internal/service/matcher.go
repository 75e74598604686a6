package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"story_ingest/internal/domain"
)

// FindMatchingStories returns the stories matching any of keys, deduplicated
// and ordered by id.
func (s *StoryService) FindMatchingStories(ctx context.Context, keys []string) ([]domain.Story, error) {
	found, err := s.stories.FindByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("find stories by keys: %w", err)
	}
	return uniqueStories(found), nil
}

// MatchStory returns the preferred existing story for url and its optional
// redirect, or nil when the system has no matching story.
func (s *StoryService) MatchStory(ctx context.Context, url, redirectURL string) (*domain.Story, error) {
	keys, err := s.URLVariants(ctx, url, redirectURL)
	if err != nil {
		return nil, err
	}

	matches, err := s.FindMatchingStories(ctx, keys)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	return s.PreferredStory(ctx, keys, matches)
}

func uniqueStories(stories []domain.Story) []domain.Story {
	seen := make(map[int64]struct{}, len(stories))
	out := make([]domain.Story, 0, len(stories))
	for _, st := range stories {
		if _, ok := seen[st.ID]; ok {
			continue
		}
		seen[st.ID] = struct{}{}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddSeedURL makes url match storyID in later ingests.
func (s *StoryService) AddSeedURL(ctx context.Context, storyID int64, url string) error {
	url = stripNulls(truncate(url, s.config.MaxURLLength))
	if url == "" {
		return errors.New("seed url is empty")
	}

	if err := s.stories.AddSeedURL(ctx, url, storyID); err != nil {
		return fmt.Errorf("add seed url for story %d: %w", storyID, err)
	}
	s.logger.Info("added seed url", "stories_id", storyID, "url", url)
	return nil
}
