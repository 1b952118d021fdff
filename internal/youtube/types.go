package youtube

import (
	"strconv"
	"time"
)

// Wire types for the two YouTube Data API v3 read operations the pipeline
// depends on. Only the fields the pipeline reads are modeled.

type playlistItemsResponse struct {
	Items         []playlistItem `json:"items"`
	NextPageToken string         `json:"nextPageToken"`
}

type playlistItem struct {
	Snippet struct {
		PublishedAt time.Time `json:"publishedAt"`
		ResourceID  struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string    `json:"title"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"snippet"`
	Statistics       videoStatistics `json:"statistics"`
	RecordingDetails struct {
		Location *geoPoint `json:"location"`
	} `json:"recordingDetails"`
}

// The API serializes counters as decimal strings and omits the ones the
// uploader disabled (likeCount most commonly).
type videoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type geoPoint struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// parseCount turns an API counter string into a non-negative int64,
// defaulting to 0 when the counter is absent or malformed.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
