package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type Story struct {
	ID          int64     `db:"stories_id" json:"stories_id"`
	URL         string    `db:"url" json:"url"`
	GUID        string    `db:"guid" json:"guid"`
	MediaID     int64     `db:"media_id" json:"media_id"`
	CollectDate time.Time `db:"collect_date" json:"collect_date"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	PublishDate time.Time `db:"publish_date" json:"publish_date"`
}

// Medium is a publisher. DupMediaID points at the canonical medium this one
// duplicates; it is never followed more than one hop.
type Medium struct {
	ID              int64  `db:"media_id"`
	URL             string `db:"url"`
	Name            string `db:"name"`
	DupMediaID      *int64 `db:"dup_media_id"`
	ForeignRSSLinks bool   `db:"foreign_rss_links"`

	// IsDupTarget is computed on read: some other medium names this one as
	// its dup_media_id.
	IsDupTarget bool `db:"is_dup_target"`
}

type Feed struct {
	ID      int64  `db:"feeds_id"`
	MediaID int64  `db:"media_id"`
	Name    string `db:"name"`
	URL     string `db:"url"`
}

type TagSet struct {
	ID   int64  `db:"tag_sets_id"`
	Name string `db:"name"`
}

type Tag struct {
	ID       int64  `db:"tags_id"`
	Tag      string `db:"tag"`
	TagSetID int64  `db:"tag_sets_id"`
}

const (
	DownloadTypeContent  = "content"
	DownloadStateSuccess = "success"
	DownloadPathPending  = "content:pending"
)

type Download struct {
	ID        int64  `db:"downloads_id" json:"downloads_id"`
	FeedID    int64  `db:"feeds_id" json:"feeds_id"`
	StoryID   int64  `db:"stories_id" json:"stories_id"`
	URL       string `db:"url" json:"url"`
	Host      string `db:"host" json:"host"`
	Type      string `db:"type" json:"type"`
	Sequence  int    `db:"sequence" json:"sequence"`
	State     string `db:"state" json:"state"`
	Path      string `db:"path" json:"path"`
	Priority  int    `db:"priority" json:"priority"`
	Extracted bool   `db:"extracted" json:"extracted"`
}
