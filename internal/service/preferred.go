package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"story_ingest/internal/domain"
)

// mediumRank holds the sort keys for one candidate medium. Media sort
// ascending on (isDupTarget, isNotDupSource, matchesDomain, id).
type mediumRank struct {
	isDupTarget    int
	isNotDupSource int
	matchesDomain  int
	id             int64
	stories        []domain.Story
}

func (a mediumRank) less(b mediumRank) bool {
	if a.isDupTarget != b.isDupTarget {
		return a.isDupTarget < b.isDupTarget
	}
	if a.isNotDupSource != b.isNotDupSource {
		return a.isNotDupSource < b.isNotDupSource
	}
	if a.matchesDomain != b.matchesDomain {
		return a.matchesDomain < b.matchesDomain
	}
	return a.id < b.id
}

// PreferredStory picks one story out of several matches for urls. Stories are
// grouped by medium, media are ranked by mediumRank, and within the first
// medium the story with the most sentences wins.
//
// The ascending rank puts media that are not dup targets, that do have a
// dup_media_id, and whose domain does not match ahead of the others. That is
// the literal ordering the ranking has always used and is kept as is.
//
// PreferredStory panics if stories is empty.
func (s *StoryService) PreferredStory(ctx context.Context, urls []string, stories []domain.Story) (*domain.Story, error) {
	if len(stories) == 0 {
		panic("service: PreferredStory called with no stories")
	}

	stories = uniqueStories(stories)
	if len(stories) == 1 {
		return &stories[0], nil
	}

	s.logger.Debug("choosing preferred story", "stories", len(stories))

	byMedium := make(map[int64][]domain.Story)
	var mediaIDs []int64
	for _, st := range stories {
		if _, ok := byMedium[st.MediaID]; !ok {
			mediaIDs = append(mediaIDs, st.MediaID)
		}
		byMedium[st.MediaID] = append(byMedium[st.MediaID], st)
	}

	if len(mediaIDs) == 1 {
		return s.storyWithMostSentences(ctx, stories)
	}

	media, err := s.media.FindByIDs(ctx, mediaIDs)
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}
	if len(media) == 0 {
		return nil, fmt.Errorf("find media %v: %w", mediaIDs, domain.ErrNotFound)
	}

	storyDomains := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		storyDomains[s.urls.DistinctiveDomain(u)] = struct{}{}
	}

	ranks := make([]mediumRank, 0, len(media))
	for _, m := range media {
		r := mediumRank{id: m.ID, stories: byMedium[m.ID], isNotDupSource: 1}
		if m.IsDupTarget {
			r.isDupTarget = 1
		}
		if m.DupMediaID != nil {
			r.isNotDupSource = 0
		}
		if _, ok := storyDomains[s.urls.DistinctiveDomain(m.URL)]; ok {
			r.matchesDomain = 1
		}
		if len(r.stories) == 0 {
			continue
		}
		ranks = append(ranks, r)
	}
	if len(ranks) == 0 {
		return nil, fmt.Errorf("no candidate media among %v: %w", mediaIDs, domain.ErrNotFound)
	}

	sort.Slice(ranks, func(i, j int) bool { return ranks[i].less(ranks[j]) })

	return s.storyWithMostSentences(ctx, ranks[0].stories)
}

// storyWithMostSentences falls back to the lowest story id when none of the
// stories has sentences yet.
func (s *StoryService) storyWithMostSentences(ctx context.Context, stories []domain.Story) (*domain.Story, error) {
	if len(stories) == 1 {
		return &stories[0], nil
	}

	ids := make([]int64, len(stories))
	for i, st := range stories {
		ids[i] = st.ID
	}

	id, err := s.stories.StoryWithMostSentences(ctx, ids)
	if errors.Is(err, domain.ErrNotFound) {
		return &stories[0], nil
	}
	if err != nil {
		return nil, fmt.Errorf("count story sentences: %w", err)
	}

	for i := range stories {
		if stories[i].ID == id {
			return &stories[i], nil
		}
	}
	return nil, fmt.Errorf("story %d not among candidates %v", id, ids)
}
