package model

import "time"

// RawVideo is a video as returned by the detail endpoint, before enrichment.
// Counters default to zero when the API omits them; Latitude/Longitude are
// nil when the video carries no recording location.
type RawVideo struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"publishedAt"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
}

// Highlight is a fully enriched video row as stored in f1_highlights.
// Region is nil when the video has coordinates (the coordinates win over
// the lexicon) and a lexicon label or the unknown sentinel otherwise.
type Highlight struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"publishedAt"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Driver       string    `json:"driver"`
	Region       *string   `json:"region,omitempty"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Day          int       `json:"day"`
	Weekday      string    `json:"weekday"`
}

// DateWindow is the half-open ingestion interval [Start, End).
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
