package service

import (
	"errors"
	"strings"
)

func (s *StoryServiceTestSuite) TestURLVariants_NoRedirect() {
	keys, err := s.service.URLVariants(s.ctx, "https://www.Example.com/a", "")

	s.NoError(err)
	s.Equal([]string{"http://example.com/a", "https://www.Example.com/a"}, keys)
}

func (s *StoryServiceTestSuite) TestURLVariants_RedirectEqualToURL() {
	keys, err := s.service.URLVariants(s.ctx, "http://example.com/a", "http://example.com/a")

	s.NoError(err)
	s.Equal([]string{"http://example.com/a"}, keys)
}

func (s *StoryServiceTestSuite) TestURLVariants_WithRedirect() {
	s.redirects.EXPECT().IsIgnored(s.ctx, "http://other.com/").Return(false, nil)

	keys, err := s.service.URLVariants(s.ctx, "https://www.example.com/a", "http://other.com/b?utm_source=x")

	s.NoError(err)
	s.Equal([]string{
		"http://example.com/a",
		"http://other.com/b",
		"http://other.com/b?utm_source=x",
		"https://www.example.com/a",
	}, keys)
}

func (s *StoryServiceTestSuite) TestURLVariants_IgnoredRedirectCollapsesToURL() {
	s.redirects.EXPECT().IsIgnored(s.ctx, "http://reseller.com/").Return(true, nil)

	withRedirect, err := s.service.URLVariants(s.ctx, "https://www.example.com/a", "http://www.reseller.com/parked")
	s.NoError(err)

	alone, err := s.service.URLVariants(s.ctx, "https://www.example.com/a", "")
	s.NoError(err)

	s.Equal(alone, withRedirect)
}

func (s *StoryServiceTestSuite) TestURLVariants_MalformedURLKeptRaw() {
	keys, err := s.service.URLVariants(s.ctx, "not a url", "")

	s.NoError(err)
	s.Equal([]string{"not a url"}, keys)
}

func (s *StoryServiceTestSuite) TestURLVariants_Truncates() {
	long := "http://example.com/" + strings.Repeat("a", 2000)

	keys, err := s.service.URLVariants(s.ctx, long, "")

	s.NoError(err)
	s.Len(keys, 1)
	s.Len(keys[0], 1024)
}

func (s *StoryServiceTestSuite) TestURLVariants_RedirectLookupError() {
	s.redirects.EXPECT().IsIgnored(s.ctx, "http://other.com/").Return(false, errors.New("db down"))

	keys, err := s.service.URLVariants(s.ctx, "http://example.com/a", "http://other.com/b")

	s.Error(err)
	s.Nil(keys)
	s.Contains(err.Error(), "lookup ignored redirect")
}

func (s *StoryServiceTestSuite) TestAddIgnoredRedirect_StoresNormalizedMediumURL() {
	s.redirects.EXPECT().Add(s.ctx, "http://reseller.com/").Return(nil)

	err := s.service.AddIgnoredRedirect(s.ctx, "https://www.Reseller.com/parked/page")

	s.NoError(err)
}

func (s *StoryServiceTestSuite) TestAddIgnoredRedirect_StoreError() {
	s.redirects.EXPECT().Add(s.ctx, "http://reseller.com/").Return(errors.New("db down"))

	err := s.service.AddIgnoredRedirect(s.ctx, "http://reseller.com/x")

	s.Error(err)
	s.Contains(err.Error(), "add ignored redirect")
}

func (s *StoryServiceTestSuite) TestURLVariants_StripsNulls() {
	keys, err := s.service.URLVariants(s.ctx, "http://example.com/a\x00b", "")

	s.NoError(err)
	s.Equal([]string{"http://example.com/ab"}, keys)
	for _, k := range keys {
		s.NotContains(k, "\x00")
	}
}
