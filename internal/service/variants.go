package service

import (
	"context"
	"fmt"
	"sort"
)

// effectiveRedirect returns the redirect url to match and create stories
// with. It collapses to url when there is no redirect or the redirect's
// medium is on the ignore list. Both inputs must already be truncated.
func (s *StoryService) effectiveRedirect(ctx context.Context, url, redirectURL string) (string, error) {
	if redirectURL == "" || redirectURL == url {
		return url, nil
	}

	ignored, err := s.ignoreRedirect(ctx, redirectURL)
	if err != nil {
		return "", err
	}
	if ignored {
		s.logger.Debug("ignoring redirect", "url", url, "redirect_url", redirectURL)
		return url, nil
	}
	return redirectURL, nil
}

// ignoreRedirect reports whether redirects onto the medium of redirectURL are
// ignored, usually because the domain now belongs to a reseller.
func (s *StoryService) ignoreRedirect(ctx context.Context, redirectURL string) (bool, error) {
	mediumURL, _ := s.urls.MediumURLAndName(redirectURL)
	normalized := s.normalizeOrSelf(mediumURL)

	ignored, err := s.redirects.IsIgnored(ctx, normalized)
	if err != nil {
		return false, fmt.Errorf("lookup ignored redirect: %w", err)
	}
	return ignored, nil
}

// URLVariants returns the sorted, deduplicated lookup keys for url and its
// optional redirect: the raw and lossy-normalized forms of each.
func (s *StoryService) URLVariants(ctx context.Context, url, redirectURL string) ([]string, error) {
	keys, _, err := s.urlVariants(ctx, url, redirectURL)
	return keys, err
}

// urlVariants also returns the effective url a new story would be created
// with.
func (s *StoryService) urlVariants(ctx context.Context, url, redirectURL string) ([]string, string, error) {
	u := stripNulls(truncate(url, s.config.MaxURLLength))
	ru := stripNulls(truncate(redirectURL, s.config.MaxURLLength))

	ru, err := s.effectiveRedirect(ctx, u, ru)
	if err != nil {
		return nil, "", err
	}

	return dedupe(u, ru, s.normalizeOrSelf(u), s.normalizeOrSelf(ru)), ru, nil
}

func (s *StoryService) normalizeOrSelf(url string) string {
	if normalized, ok := s.urls.NormalizeLossy(url); ok {
		return normalized
	}
	return url
}

func dedupe(values ...string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// AddIgnoredRedirect stops redirects onto the medium of url from being
// followed by later ingests.
func (s *StoryService) AddIgnoredRedirect(ctx context.Context, url string) error {
	mediumURL, _ := s.urls.MediumURLAndName(truncate(url, s.config.MaxURLLength))
	normalized := s.normalizeOrSelf(mediumURL)

	if err := s.redirects.Add(ctx, normalized); err != nil {
		return fmt.Errorf("add ignored redirect %s: %w", normalized, err)
	}
	s.logger.Info("ignoring redirects", "medium_url", normalized)
	return nil
}
