package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"story_ingest/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func (s *StoryServiceTestSuite) TestPreferredStory_SingleStory() {
	story := domain.Story{ID: 1, MediaID: 1}

	got, err := s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, []domain.Story{story, story})

	s.NoError(err)
	s.Equal(int64(1), got.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_PanicsOnEmpty() {
	s.Panics(func() {
		_, _ = s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, nil)
	})
}

// O2 duplicates O1, so O1 is a dup target. The ascending rank puts O2, which
// is not a dup target and is a dup source, first.
func (s *StoryServiceTestSuite) TestPreferredStory_DupTargetOrdering() {
	stories := []domain.Story{
		{ID: 10, MediaID: 1, URL: "http://one.com/a"},
		{ID: 20, MediaID: 2, URL: "http://two.com/a"},
	}
	s.media.EXPECT().FindByIDs(s.ctx, []int64{1, 2}).Return([]domain.Medium{
		{ID: 1, URL: "http://one.com/", IsDupTarget: true},
		{ID: 2, URL: "http://two.com/", DupMediaID: int64Ptr(1)},
	}, nil)

	got, err := s.service.PreferredStory(s.ctx, []string{"http://one.com/a"}, stories)

	s.NoError(err)
	s.Equal(int64(20), got.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_DomainMatchSortsLater() {
	stories := []domain.Story{
		{ID: 10, MediaID: 1},
		{ID: 20, MediaID: 2},
	}
	s.media.EXPECT().FindByIDs(s.ctx, []int64{1, 2}).Return([]domain.Medium{
		{ID: 1, URL: "http://www.example.com/"},
		{ID: 2, URL: "http://elsewhere.org/"},
	}, nil)

	got, err := s.service.PreferredStory(s.ctx, []string{"http://news.example.com/a"}, stories)

	s.NoError(err)
	s.Equal(int64(20), got.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_LowestMediaIDBreaksTies() {
	stories := []domain.Story{
		{ID: 30, MediaID: 9},
		{ID: 40, MediaID: 4},
	}
	s.media.EXPECT().FindByIDs(s.ctx, []int64{9, 4}).Return([]domain.Medium{
		{ID: 9, URL: "http://nine.com/"},
		{ID: 4, URL: "http://four.com/"},
	}, nil)

	got, err := s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, stories)

	s.NoError(err)
	s.Equal(int64(40), got.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_MostSentencesWithinMedium() {
	stories := []domain.Story{
		{ID: 1, MediaID: 5},
		{ID: 2, MediaID: 5},
	}
	s.stories.EXPECT().StoryWithMostSentences(s.ctx, []int64{1, 2}).Return(int64(2), nil)

	got, err := s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, stories)

	s.NoError(err)
	s.Equal(int64(2), got.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_NoSentencesFallsBackToLowestID() {
	stories := []domain.Story{
		{ID: 8, MediaID: 5},
		{ID: 3, MediaID: 5},
	}
	s.stories.EXPECT().StoryWithMostSentences(s.ctx, []int64{3, 8}).Return(int64(0), domain.ErrNotFound)

	got, err := s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, stories)

	s.NoError(err)
	s.Equal(int64(3), got.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_SentenceCountError() {
	stories := []domain.Story{
		{ID: 1, MediaID: 5},
		{ID: 2, MediaID: 5},
	}
	s.stories.EXPECT().StoryWithMostSentences(s.ctx, []int64{1, 2}).Return(int64(0), errors.New("timeout"))

	got, err := s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, stories)

	s.Error(err)
	s.Nil(got)
}

func (s *StoryServiceTestSuite) TestPreferredStory_Deterministic() {
	media := []domain.Medium{
		{ID: 1, URL: "http://one.com/"},
		{ID: 2, URL: "http://two.com/", DupMediaID: int64Ptr(1)},
		{ID: 3, URL: "http://three.com/", DupMediaID: int64Ptr(1)},
	}
	s.media.EXPECT().FindByIDs(s.ctx, gomock.Any()).Return(media, nil).Times(2)
	s.stories.EXPECT().StoryWithMostSentences(s.ctx, []int64{20, 21}).Return(int64(21), nil).Times(2)

	first := []domain.Story{
		{ID: 10, MediaID: 1},
		{ID: 20, MediaID: 2},
		{ID: 21, MediaID: 2},
		{ID: 30, MediaID: 3},
	}
	second := []domain.Story{first[3], first[2], first[0], first[1]}

	a, err := s.service.PreferredStory(s.ctx, []string{"http://x.com/a"}, first)
	s.NoError(err)
	b, err := s.service.PreferredStory(s.ctx, []string{"http://x.com/a"}, second)
	s.NoError(err)

	s.Equal(int64(21), a.ID)
	s.Equal(a.ID, b.ID)
}

func (s *StoryServiceTestSuite) TestPreferredStory_MediaLookupError() {
	stories := []domain.Story{
		{ID: 10, MediaID: 1},
		{ID: 20, MediaID: 2},
	}
	s.media.EXPECT().FindByIDs(s.ctx, []int64{1, 2}).Return(nil, errors.New("db down"))

	_, err := s.service.PreferredStory(s.ctx, []string{"http://example.com/a"}, stories)

	s.Error(err)
	s.Contains(err.Error(), "find media")
}
