// Package youtube is the read-only client for the two Data API v3 endpoints
// the pipeline needs: paginated playlist listing and batched video detail
// lookup. Failures are fatal to the caller; there is no retry layer here.
package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Ranmdom/Desafio-Ray/internal/metrics"
	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

// maxBatchSize is the API ceiling for both page size and ids per detail call.
const maxBatchSize = 50

type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient builds a client against the given API base URL
// (https://www.googleapis.com/youtube/v3 outside of tests).
func NewClient(baseURL, apiKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	return &Client{http: httpClient, apiKey: apiKey}
}

// CollectIDs walks the playlist with the opaque pageToken cursor and returns,
// in source order, every video id whose publish timestamp falls in the
// half-open window [start, end). Each playlist item is visited exactly once;
// the walk ends when a page carries no nextPageToken.
func (c *Client) CollectIDs(ctx context.Context, playlistID string, window model.DateWindow) ([]string, error) {
	var ids []string
	pageToken := ""

	for {
		req := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"part":       "snippet",
				"playlistId": playlistID,
				"maxResults": "50",
				"key":        c.apiKey,
			}).
			SetResult(&playlistItemsResponse{})
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}

		resp, err := req.Get("/playlistItems")
		if err != nil {
			metrics.APICalls.WithLabelValues("playlistItems", "error").Inc()
			return nil, fmt.Errorf("list playlist items: %w", err)
		}
		if resp.IsError() {
			metrics.APICalls.WithLabelValues("playlistItems", "error").Inc()
			return nil, fmt.Errorf("list playlist items: %s: %s", resp.Status(), resp.String())
		}
		metrics.APICalls.WithLabelValues("playlistItems", "success").Inc()
		metrics.PagesFetched.Inc()

		page := resp.Result().(*playlistItemsResponse)
		for _, item := range page.Items {
			if window.Contains(item.Snippet.PublishedAt) {
				ids = append(ids, item.Snippet.ResourceID.VideoID)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}

// ResolveDetails fetches snippet, statistics and recording location for the
// given ids in consecutive chunks of at most 50. Output order follows the
// API's response order per chunk. Ids missing from a response (deleted or
// private videos) are dropped without error.
func (c *Client) ResolveDetails(ctx context.Context, ids []string) ([]model.RawVideo, error) {
	records := make([]model.RawVideo, 0, len(ids))

	for _, batch := range chunk(ids, maxBatchSize) {
		metrics.BatchSize.Observe(float64(len(batch)))

		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"part": "snippet,statistics,recordingDetails",
				"id":   strings.Join(batch, ","),
				"key":  c.apiKey,
			}).
			SetResult(&videoListResponse{}).
			Get("/videos")
		if err != nil {
			metrics.APICalls.WithLabelValues("videos", "error").Inc()
			return nil, fmt.Errorf("list video details: %w", err)
		}
		if resp.IsError() {
			metrics.APICalls.WithLabelValues("videos", "error").Inc()
			return nil, fmt.Errorf("list video details: %s: %s", resp.Status(), resp.String())
		}
		metrics.APICalls.WithLabelValues("videos", "success").Inc()

		page := resp.Result().(*videoListResponse)
		for _, item := range page.Items {
			records = append(records, toRawVideo(item))
		}
	}

	return records, nil
}

func toRawVideo(item videoItem) model.RawVideo {
	raw := model.RawVideo{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		PublishedAt:  item.Snippet.PublishedAt,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
	}
	if loc := item.RecordingDetails.Location; loc != nil {
		raw.Latitude = loc.Latitude
		raw.Longitude = loc.Longitude
	}
	return raw
}

// chunk splits ids into consecutive slices of at most size elements.
func chunk(ids []string, size int) [][]string {
	var out [][]string
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}
