// Package urls canonicalizes story URLs for matching and derives the
// publisher identity of a URL.
package urls

import (
	"net"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var hostPrefixRe = regexp.MustCompile(`^(www\d*|m|mobile)\.`)

var trackingQueryKeys = map[string]struct{}{
	"fbclid":  {},
	"gclid":   {},
	"ocid":    {},
	"cmpid":   {},
	"ncid":    {},
	"rss":     {},
	"ref":     {},
	"source":  {},
	"partner": {},
	"mc_cid":  {},
	"mc_eid":  {},
}

// Normalizer implements the lossy URL normalization used for story matching.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeLossy maps URLs that very likely name the same page onto a single
// string. The result is not guaranteed to be fetchable. ok is false when raw
// is not an absolute http(s) URL.
func (n *Normalizer) NormalizeLossy(raw string) (string, bool) {
	parsed, ok := parseHTTP(raw)
	if !ok {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	host = hostPrefixRe.ReplaceAllString(host, "")
	if port := parsed.Port(); port != "" && port != "80" && port != "443" {
		host = net.JoinHostPort(host, port)
	}

	path := strings.ToLower(parsed.EscapedPath())
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	path = strings.TrimSuffix(path, "/index.html")
	path = strings.TrimSuffix(path, "/index.php")
	if path == "" {
		path = "/"
	}

	out := "http://" + host + path
	if q := cleanQuery(parsed.Query()); q != "" {
		out += "?" + q
	}

	return out, true
}

// DistinctiveDomain returns the registrable domain of raw, e.g.
// "news.bbc.co.uk" -> "bbc.co.uk". Hosts without a public suffix (IPs,
// localhost) are returned as is; unparseable input is returned lowercased.
func (n *Normalizer) DistinctiveDomain(raw string) string {
	parsed, ok := parseHTTP(raw)
	if !ok {
		return strings.ToLower(raw)
	}

	host := strings.ToLower(parsed.Hostname())
	if net.ParseIP(host) != nil {
		return host
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// Host returns the lowercased host of raw, or raw itself when it has none.
func (n *Normalizer) Host(raw string) string {
	parsed, ok := parseHTTP(raw)
	if !ok {
		return raw
	}
	return strings.ToLower(parsed.Hostname())
}

var mediumURLRe = regexp.MustCompile(`(?i)^(https?://([^/]+))`)

// MediumURLAndName derives the medium url ("http://host/") and name (host) for
// a story url. Both fall back to the story url when no host can be found.
func (n *Normalizer) MediumURLAndName(storyURL string) (string, string) {
	normalized, ok := n.NormalizeLossy(storyURL)
	if !ok {
		return storyURL, storyURL
	}

	m := mediumURLRe.FindStringSubmatch(normalized)
	if m == nil {
		return storyURL, storyURL
	}

	mediumURL := strings.ToLower(m[1])
	if !strings.HasSuffix(mediumURL, "/") {
		mediumURL += "/"
	}
	return mediumURL, strings.ToLower(m[2])
}

func parseHTTP(raw string) (*url.URL, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, false
	}
	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Hostname() == "" {
		return nil, false
	}
	return parsed, true
}

func cleanQuery(q url.Values) string {
	for key := range q {
		lower := strings.ToLower(key)
		if strings.HasPrefix(lower, "utm_") {
			q.Del(key)
			continue
		}
		if _, ok := trackingQueryKeys[lower]; ok {
			q.Del(key)
		}
	}
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := q[key]
		sort.Strings(values)
		for _, value := range values {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(strings.ToLower(key)))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(strings.ToLower(value)))
		}
	}
	return sb.String()
}
