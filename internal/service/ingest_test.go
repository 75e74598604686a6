package service

import (
	"errors"

	"story_ingest/internal/domain"
)

func (s *StoryServiceTestSuite) TestIngest_ReturnsExistingStory() {
	existing := domain.Story{ID: 5, MediaID: 1, URL: "http://example.com/a"}
	s.stories.EXPECT().FindByKeys(s.ctx, []string{"http://example.com/a"}).Return([]domain.Story{existing}, nil).Times(2)

	for i := 0; i < 2; i++ {
		result, err := s.service.Ingest(s.ctx, domain.IngestRequest{URL: "http://example.com/a", Content: testContent})

		s.NoError(err)
		s.False(result.Created)
		s.Equal(int64(5), result.Story.ID)
	}
}

func (s *StoryServiceTestSuite) TestIngest_CreatesWithRedirectURL() {
	redirect := "http://example.com/final"
	s.redirects.EXPECT().IsIgnored(s.ctx, "http://example.com/").Return(false, nil)
	s.stories.EXPECT().FindByKeys(s.ctx, []string{"http://example.com/final", "http://example.com/start"}).Return(nil, nil)
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, redirect, 1024).Return("Title")
	s.dates.EXPECT().Guess(redirect, testContent).Return(domain.DateGuess{})
	s.expectStoryWrites(tagSetDateInvalid, tagDateInvalid, testContent)

	result, err := s.service.Ingest(s.ctx, domain.IngestRequest{
		URL:         "http://example.com/start",
		RedirectURL: redirect,
		Content:     testContent,
	})

	s.NoError(err)
	s.True(result.Created)
	s.Equal(redirect, result.Story.URL)
}

func (s *StoryServiceTestSuite) TestIngest_IgnoredRedirectCreatesWithURL() {
	url := "http://example.com/a"
	s.redirects.EXPECT().IsIgnored(s.ctx, "http://parked.com/").Return(true, nil)
	s.stories.EXPECT().FindByKeys(s.ctx, []string{url}).Return(nil, nil)
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	s.expectStoryWrites(tagSetDateInvalid, tagDateInvalid, testContent)

	result, err := s.service.Ingest(s.ctx, domain.IngestRequest{
		URL:         url,
		RedirectURL: "http://parked.com/landing",
		Content:     testContent,
	})

	s.NoError(err)
	s.True(result.Created)
	s.Equal(url, result.Story.URL)
}

func (s *StoryServiceTestSuite) TestIngest_MatchError() {
	s.stories.EXPECT().FindByKeys(s.ctx, []string{"http://example.com/a"}).Return(nil, errors.New("db down"))

	result, err := s.service.Ingest(s.ctx, domain.IngestRequest{URL: "http://example.com/a"})

	s.Error(err)
	s.Nil(result)
}

func (s *StoryServiceTestSuite) TestIngest_RequiresURL() {
	_, err := s.service.Ingest(s.ctx, domain.IngestRequest{})

	s.Error(err)
}

func (s *StoryServiceTestSuite) TestMatchStory_NoMatch() {
	s.stories.EXPECT().FindByKeys(s.ctx, []string{"http://example.com/a"}).Return(nil, nil)

	story, err := s.service.MatchStory(s.ctx, "http://example.com/a", "")

	s.NoError(err)
	s.Nil(story)
}

func (s *StoryServiceTestSuite) TestMatchStory_DeduplicatesMatches() {
	dup := domain.Story{ID: 5, MediaID: 1}
	s.stories.EXPECT().FindByKeys(s.ctx, []string{"http://example.com/a"}).Return([]domain.Story{dup, dup}, nil)

	story, err := s.service.MatchStory(s.ctx, "http://example.com/a", "")

	s.NoError(err)
	s.Equal(int64(5), story.ID)
}

func (s *StoryServiceTestSuite) TestIngest_StripsNullsBeforeLookup() {
	existing := domain.Story{ID: 5, MediaID: 1, URL: "http://example.com/ab"}
	s.stories.EXPECT().FindByKeys(s.ctx, []string{"http://example.com/ab"}).Return([]domain.Story{existing}, nil)

	result, err := s.service.Ingest(s.ctx, domain.IngestRequest{URL: "http://example.com/a\x00b"})

	s.NoError(err)
	s.Equal(int64(5), result.Story.ID)
}

func (s *StoryServiceTestSuite) TestAddSeedURL_StoresCleanedURL() {
	s.stories.EXPECT().AddSeedURL(s.ctx, "http://seed.com/ab", int64(5)).Return(nil)

	err := s.service.AddSeedURL(s.ctx, 5, "http://seed.com/a\x00b")

	s.NoError(err)
}

func (s *StoryServiceTestSuite) TestAddSeedURL_Empty() {
	err := s.service.AddSeedURL(s.ctx, 5, "\x00")

	s.Error(err)
}

func (s *StoryServiceTestSuite) TestAddSeedURL_StoreError() {
	s.stories.EXPECT().AddSeedURL(s.ctx, "http://seed.com/a", int64(5)).Return(errors.New("fk violation"))

	err := s.service.AddSeedURL(s.ctx, 5, "http://seed.com/a")

	s.ErrorContains(err, "add seed url for story 5")
}
