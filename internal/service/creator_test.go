package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"story_ingest/internal/domain"
)

const testContent = "<html><head><title>Title</title></head></html>"

func (s *StoryServiceTestSuite) TestAddNewStory_NoDateNoFallback() {
	url := "http://example.com/a"
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	created := s.expectStoryWrites(tagSetDateInvalid, tagDateInvalid, testContent)

	story, err := s.service.AddNewStory(s.ctx, url, testContent, nil)

	s.NoError(err)
	s.Equal(int64(100), story.ID)
	s.Equal(url, story.URL)
	s.Equal(url, story.GUID)
	s.Equal(int64(7), story.MediaID)
	s.Equal("Title", story.Title)
	s.Equal("", story.Description)
	s.Equal(s.now, story.CollectDate)
	s.Equal(s.now, story.PublishDate)
	s.Equal(*story, *created)
}

func (s *StoryServiceTestSuite) TestAddNewStory_UsesGuessedDate() {
	url := "http://example.com/2024/01/02/a"
	guessed := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{
		Found:  true,
		Date:   guessed,
		Method: domain.GuessMethod{Kind: domain.GuessByURL},
	})
	s.expectStoryWrites(tagSetDateGuessMethod, tagGuessByURL, testContent)

	story, err := s.service.AddNewStory(s.ctx, url, testContent, &fallback)

	s.NoError(err)
	s.Equal(guessed, story.PublishDate)
}

func (s *StoryServiceTestSuite) TestAddNewStory_UsesFallbackDate() {
	url := "http://example.com/a"
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	s.expectStoryWrites(tagSetDateGuessMethod, tagFallbackDate, testContent)

	story, err := s.service.AddNewStory(s.ctx, url, testContent, &fallback)

	s.NoError(err)
	s.Equal(fallback, story.PublishDate)
}

func (s *StoryServiceTestSuite) TestAddNewStory_StripsNullCharacters() {
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, "http://example.com/ab", 1024).Return("Foo\x00Bar")
	s.dates.EXPECT().Guess("http://example.com/ab", testContent).Return(domain.DateGuess{})
	s.expectStoryWrites(tagSetDateInvalid, tagDateInvalid, testContent)

	story, err := s.service.AddNewStory(s.ctx, "http://example.com/a\x00b", testContent, nil)

	s.NoError(err)
	s.Equal("http://example.com/ab", story.URL)
	s.Equal("http://example.com/ab", story.GUID)
	s.Equal("FooBar", story.Title)
}

func (s *StoryServiceTestSuite) TestAddNewStory_DownloadShape() {
	url := "http://www.example.com/a"
	s.media.EXPECT().GetOrCreate(s.ctx, "http://example.com/", "example.com").Return(&domain.Medium{ID: 7, URL: "http://example.com/"}, nil)
	s.feeds.EXPECT().GetOrCreate(s.ctx, int64(7), spiderFeedName, "http://example.com/").Return(&domain.Feed{ID: 3, MediaID: 7}, nil)
	s.tags.EXPECT().GetOrCreate(s.ctx, spideredTagSet, spideredTag).Return(&domain.Tag{ID: 11}, nil)
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	s.expectTransaction()
	s.stories.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, st *domain.Story) error {
		st.ID = 100
		return nil
	})
	s.tags.EXPECT().LinkToStory(s.ctx, int64(100), int64(11)).Return(nil)
	s.tags.EXPECT().GetOrCreate(s.ctx, tagSetDateInvalid, tagDateInvalid).Return(&domain.Tag{ID: 12}, nil)
	s.tags.EXPECT().LinkToStory(s.ctx, int64(100), int64(12)).Return(nil)
	s.stories.EXPECT().LinkToFeed(s.ctx, int64(100), int64(3)).Return(nil)

	var created domain.Download
	s.downloads.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *domain.Download) error {
		d.ID = 500
		created = *d
		return nil
	})
	s.sink.EXPECT().Enqueue(s.ctx, gomock.Any(), testContent).DoAndReturn(
		func(_ context.Context, d *domain.Download, _ string) error {
			s.Equal(int64(500), d.ID)
			return nil
		},
	)

	_, err := s.service.AddNewStory(s.ctx, url, testContent, nil)

	s.NoError(err)
	s.Equal(domain.Download{
		ID:        500,
		FeedID:    3,
		StoryID:   100,
		URL:       url,
		Host:      "www.example.com",
		Type:      "content",
		Sequence:  1,
		State:     "success",
		Path:      "content:pending",
		Priority:  1,
		Extracted: false,
	}, created)
}

func (s *StoryServiceTestSuite) TestAddNewStory_FollowsDupMedium() {
	url := "http://example.com/a"
	s.media.EXPECT().GetOrCreate(s.ctx, "http://example.com/", "example.com").
		Return(&domain.Medium{ID: 7, URL: "http://example.com/", DupMediaID: int64Ptr(2)}, nil)
	s.media.EXPECT().GetByID(s.ctx, int64(2)).Return(&domain.Medium{ID: 2, URL: "http://canonical.com/"}, nil)
	s.feeds.EXPECT().GetOrCreate(s.ctx, int64(2), spiderFeedName, "http://canonical.com/").Return(&domain.Feed{ID: 3, MediaID: 2}, nil)
	s.tags.EXPECT().GetOrCreate(s.ctx, spideredTagSet, spideredTag).Return(&domain.Tag{ID: 11}, nil)
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	s.expectStoryWrites(tagSetDateInvalid, tagDateInvalid, testContent)

	story, err := s.service.AddNewStory(s.ctx, url, testContent, nil)

	s.NoError(err)
	s.Equal(int64(2), story.MediaID)
}

func (s *StoryServiceTestSuite) TestAddNewStory_DownloadFailureRollsBack() {
	url := "http://example.com/a"
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	s.expectTransaction()
	s.stories.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, st *domain.Story) error {
		st.ID = 100
		return nil
	})
	s.tags.EXPECT().LinkToStory(s.ctx, int64(100), gomock.Any()).Return(nil).Times(2)
	s.tags.EXPECT().GetOrCreate(s.ctx, tagSetDateInvalid, tagDateInvalid).Return(&domain.Tag{ID: 12}, nil)
	s.stories.EXPECT().LinkToFeed(s.ctx, int64(100), int64(3)).Return(nil)
	s.downloads.EXPECT().Create(s.ctx, gomock.Any()).Return(errors.New("insert failed"))

	story, err := s.service.AddNewStory(s.ctx, url, testContent, nil)

	s.Error(err)
	s.Nil(story)
	s.Contains(err.Error(), "create download")
}

func (s *StoryServiceTestSuite) TestAddNewStory_SinkFailure() {
	url := "http://example.com/a"
	s.expectSpiderIdentity()
	s.titles.EXPECT().ExtractTitle(testContent, url, 1024).Return("Title")
	s.dates.EXPECT().Guess(url, testContent).Return(domain.DateGuess{})
	s.expectTransaction()
	s.stories.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, st *domain.Story) error {
		st.ID = 100
		return nil
	})
	s.tags.EXPECT().LinkToStory(s.ctx, int64(100), gomock.Any()).Return(nil).Times(2)
	s.tags.EXPECT().GetOrCreate(s.ctx, tagSetDateInvalid, tagDateInvalid).Return(&domain.Tag{ID: 12}, nil)
	s.stories.EXPECT().LinkToFeed(s.ctx, int64(100), int64(3)).Return(nil)
	s.downloads.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.sink.EXPECT().Enqueue(s.ctx, gomock.Any(), testContent).Return(errors.New("channel closed"))

	_, err := s.service.AddNewStory(s.ctx, url, testContent, nil)

	s.Error(err)
	s.Contains(err.Error(), "enqueue download")
}

func (s *StoryServiceTestSuite) TestAddNewStory_MediumFailure() {
	s.media.EXPECT().GetOrCreate(s.ctx, "http://example.com/", "example.com").Return(nil, errors.New("db down"))

	_, err := s.service.AddNewStory(s.ctx, "http://example.com/a", testContent, nil)

	s.Error(err)
	s.Contains(err.Error(), "get or create medium")
}
