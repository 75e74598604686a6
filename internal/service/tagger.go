package service

import (
	"context"
	"fmt"
	"time"

	"story_ingest/internal/domain"
)

const (
	tagSetDateGuessMethod = "date_guess_method"
	tagSetDateInvalid     = "date_invalid"

	tagGuessByURL     = "guess_by_url"
	tagGuessByTag     = "guess_by_tag_"
	tagGuessByUnknown = "guess_by_unknown"
	tagFallbackDate   = "fallback_date"
	tagDateInvalid    = "date_invalid"
)

// DateGuessTag classifies the outcome of date resolution into a
// (tag set, tag) pair.
func DateGuessTag(guess domain.DateGuess, fallbackDate *time.Time) (string, string) {
	switch {
	case guess.Found:
		switch guess.Method.Kind {
		case domain.GuessByURL:
			return tagSetDateGuessMethod, tagGuessByURL
		case domain.GuessByTag:
			htmlTag := guess.Method.HTMLTag
			if htmlTag == "" {
				htmlTag = "unknown"
			}
			return tagSetDateGuessMethod, tagGuessByTag + htmlTag
		default:
			return tagSetDateGuessMethod, tagGuessByUnknown
		}
	case fallbackDate != nil:
		return tagSetDateGuessMethod, tagFallbackDate
	default:
		return tagSetDateInvalid, tagDateInvalid
	}
}

// AssignDateGuessTag tags story with how its publish date was decided.
func (s *StoryService) AssignDateGuessTag(ctx context.Context, story *domain.Story, guess domain.DateGuess, fallbackDate *time.Time) error {
	tagSet, name := DateGuessTag(guess, fallbackDate)

	tag, err := s.tags.GetOrCreate(ctx, tagSet, name)
	if err != nil {
		return fmt.Errorf("get or create tag %s:%s: %w", tagSet, name, err)
	}

	if err := s.tags.LinkToStory(ctx, story.ID, tag.ID); err != nil {
		return fmt.Errorf("link tag %s:%s: %w", tagSet, name, err)
	}
	return nil
}
