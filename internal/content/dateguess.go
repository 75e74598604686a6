package content

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"story_ingest/internal/domain"
)

const minGuessYear = 1990

var urlDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/(\d{4})/(\d{1,2})/(\d{1,2})(?:/|$)`),
	regexp.MustCompile(`(?:^|[/_-])(\d{4})-(\d{2})-(\d{2})(?:[/_.-]|$)`),
	regexp.MustCompile(`/(\d{4})(\d{2})(\d{2})(?:/|$)`),
}

// dateSelector is an element that commonly carries a publication date.
type dateSelector struct {
	selector string
	attr     string
	htmlTag  string
}

var dateSelectors = []dateSelector{
	{"meta[property='article:published_time']", "content", "meta"},
	{"meta[itemprop='datePublished']", "content", "meta"},
	{"meta[name='pubdate']", "content", "meta"},
	{"meta[name='publishdate']", "content", "meta"},
	{"meta[name='DC.date.issued']", "content", "meta"},
	{"meta[name='date']", "content", "meta"},
	{"time[pubdate]", "datetime", "time"},
	{"time[datetime]", "datetime", "time"},
	{"abbr.published", "title", "abbr"},
}

// DateGuesser guesses story publication dates from the url path and from
// date-bearing HTML elements.
type DateGuesser struct {
	now func() time.Time
}

func NewDateGuesser() *DateGuesser {
	return &DateGuesser{now: time.Now}
}

// Guess tries the url first, then the HTML. Dates before 1990 or more than a
// day in the future are discarded.
func (g *DateGuesser) Guess(storyURL, html string) domain.DateGuess {
	if t, ok := g.guessFromURL(storyURL); ok {
		return domain.DateGuess{
			Found:  true,
			Date:   t,
			Method: domain.GuessMethod{Kind: domain.GuessByURL},
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.DateGuess{}
	}

	for _, sel := range dateSelectors {
		value, exists := doc.Find(sel.selector).First().Attr(sel.attr)
		if !exists {
			continue
		}
		t, err := dateparse.ParseAny(strings.TrimSpace(value))
		if err != nil || !g.plausible(t) {
			continue
		}
		return domain.DateGuess{
			Found:  true,
			Date:   t,
			Method: domain.GuessMethod{Kind: domain.GuessByTag, HTMLTag: sel.htmlTag},
		}
	}

	return domain.DateGuess{}
}

func (g *DateGuesser) guessFromURL(storyURL string) (time.Time, bool) {
	for _, re := range urlDatePatterns {
		m := re.FindStringSubmatch(storyURL)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes Feb 31 into March
		if t.Day() != day {
			continue
		}
		if g.plausible(t) {
			return t, true
		}
	}
	return time.Time{}, false
}

func (g *DateGuesser) plausible(t time.Time) bool {
	return t.Year() >= minGuessYear && !t.After(g.now().Add(24*time.Hour))
}
