package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

func window2024() model.DateWindow {
	return model.DateWindow{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func playlistPage(ids []string, publishedAt string, nextToken string) map[string]any {
	items := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		items = append(items, map[string]any{
			"snippet": map[string]any{
				"publishedAt": publishedAt,
				"resourceId":  map[string]any{"videoId": id},
			},
		})
	}
	page := map[string]any{"items": items}
	if nextToken != "" {
		page["nextPageToken"] = nextToken
	}
	return page
}

func TestCollectIDs_SinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlistItems" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("playlistId"); got != "PL123" {
			t.Errorf("playlistId = %q, want PL123", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(playlistPage([]string{"a", "b", "c"}, "2024-06-01T00:00:00Z", ""))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	ids, err := c.CollectIDs(context.Background(), "PL123", window2024())
	if err != nil {
		t.Fatalf("CollectIDs() error: %v", err)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("ids = %v, want [a b c]", ids)
	}
}

func TestCollectIDs_FollowsCursorAcrossPages(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		switch token := r.URL.Query().Get("pageToken"); token {
		case "":
			json.NewEncoder(w).Encode(playlistPage([]string{"p1a", "p1b"}, "2024-03-01T00:00:00Z", "TOK2"))
		case "TOK2":
			json.NewEncoder(w).Encode(playlistPage([]string{"p2a"}, "2024-03-02T00:00:00Z", "TOK3"))
		case "TOK3":
			json.NewEncoder(w).Encode(playlistPage([]string{"p3a"}, "2024-03-03T00:00:00Z", ""))
		default:
			t.Errorf("unexpected pageToken %q", token)
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	ids, err := c.CollectIDs(context.Background(), "PL123", window2024())
	if err != nil {
		t.Fatalf("CollectIDs() error: %v", err)
	}
	want := []string{"p1a", "p1b", "p2a", "p3a"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q (source order preserved)", i, ids[i], want[i])
		}
	}
	if requests != 3 {
		t.Errorf("requests = %d, want 3 (each page visited once)", requests)
	}
}

func TestCollectIDs_DateWindowIsHalfOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := map[string]any{"items": []map[string]any{
			{"snippet": map[string]any{"publishedAt": "2024-06-01T00:00:00Z", "resourceId": map[string]any{"videoId": "a"}}},
			{"snippet": map[string]any{"publishedAt": "2025-01-01T00:00:00Z", "resourceId": map[string]any{"videoId": "b"}}},
			{"snippet": map[string]any{"publishedAt": "2024-01-01T00:00:00Z", "resourceId": map[string]any{"videoId": "start"}}},
			{"snippet": map[string]any{"publishedAt": "2023-12-31T23:59:59Z", "resourceId": map[string]any{"videoId": "early"}}},
		}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	ids, err := c.CollectIDs(context.Background(), "PL123", window2024())
	if err != nil {
		t.Fatalf("CollectIDs() error: %v", err)
	}
	// "a" in window, "start" exactly at start (inclusive), "b" exactly at end
	// (exclusive) and "early" before start are filtered.
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "start" {
		t.Errorf("ids = %v, want [a start]", ids)
	}
}

func TestCollectIDs_APIErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	if _, err := c.CollectIDs(context.Background(), "PL123", window2024()); err == nil {
		t.Error("expected error on non-2xx response")
	}
}

func videoJSON(id string, stats map[string]string) map[string]any {
	return map[string]any{
		"id": id,
		"snippet": map[string]any{
			"title":       "Video " + id,
			"publishedAt": "2024-06-01T00:00:00Z",
		},
		"statistics": stats,
	}
}

func TestResolveDetails_ChunksOfAtMostFifty(t *testing.T) {
	var batchSizes []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := strings.Split(r.URL.Query().Get("id"), ",")
		batchSizes = append(batchSizes, len(ids))
		items := make([]map[string]any, 0, len(ids))
		for _, id := range ids {
			items = append(items, videoJSON(id, map[string]string{"viewCount": "1"}))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"items": items})
	}))
	defer srv.Close()

	ids := make([]string, 120)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%03d", i)
	}

	c := NewClient(srv.URL, "k")
	records, err := c.ResolveDetails(context.Background(), ids)
	if err != nil {
		t.Fatalf("ResolveDetails() error: %v", err)
	}
	if len(records) != 120 {
		t.Errorf("records = %d, want 120", len(records))
	}
	// ceil(120/50) = 3 requests: 50, 50, 20.
	if len(batchSizes) != 3 {
		t.Fatalf("requests = %d, want 3", len(batchSizes))
	}
	for i, size := range batchSizes {
		if size > 50 {
			t.Errorf("batch %d carried %d ids, limit is 50", i, size)
		}
	}
	if batchSizes[2] != 20 {
		t.Errorf("last batch = %d ids, want 20", batchSizes[2])
	}
}

func TestResolveDetails_MissingCountersDefaultToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{
			videoJSON("a", map[string]string{"viewCount": "100", "commentCount": "3"}),
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	records, err := c.ResolveDetails(context.Background(), []string{"a"})
	if err != nil {
		t.Fatalf("ResolveDetails() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.ViewCount != 100 || r.CommentCount != 3 {
		t.Errorf("counters = %d/%d, want 100/3", r.ViewCount, r.CommentCount)
	}
	if r.LikeCount != 0 {
		t.Errorf("likeCount = %d, want 0 default for absent counter", r.LikeCount)
	}
}

func TestResolveDetails_VanishedIDsAreDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// "gone" requested but not returned (deleted video).
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{
			videoJSON("a", map[string]string{"viewCount": "1"}),
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	records, err := c.ResolveDetails(context.Background(), []string{"a", "gone"})
	if err != nil {
		t.Fatalf("ResolveDetails() error: %v", err)
	}
	if len(records) != 1 || records[0].VideoID != "a" {
		t.Errorf("records = %v, want just video a", records)
	}
}

func TestResolveDetails_RecordingLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		item := videoJSON("a", map[string]string{"viewCount": "1"})
		item["recordingDetails"] = map[string]any{
			"location": map[string]any{"latitude": 43.7347, "longitude": 7.4206},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{item}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	records, err := c.ResolveDetails(context.Background(), []string{"a"})
	if err != nil {
		t.Fatalf("ResolveDetails() error: %v", err)
	}
	r := records[0]
	if r.Latitude == nil || *r.Latitude != 43.7347 {
		t.Errorf("latitude = %v, want 43.7347", r.Latitude)
	}
	if r.Longitude == nil || *r.Longitude != 7.4206 {
		t.Errorf("longitude = %v, want 7.4206", r.Longitude)
	}
}

func TestResolveDetails_NoIDsNoRequests(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	records, err := c.ResolveDetails(context.Background(), nil)
	if err != nil {
		t.Fatalf("ResolveDetails() error: %v", err)
	}
	if len(records) != 0 || requests != 0 {
		t.Errorf("records=%d requests=%d, want 0/0", len(records), requests)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		size  int
		want  []int // chunk lengths
	}{
		{"empty", 0, 50, nil},
		{"under limit", 10, 50, []int{10}},
		{"exact limit", 50, 50, []int{50}},
		{"one over", 51, 50, []int{50, 1}},
		{"several", 120, 50, []int{50, 50, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, tt.n)
			got := chunk(ids, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("chunks = %d, want %d", len(got), len(tt.want))
			}
			for i, c := range got {
				if len(c) != tt.want[i] {
					t.Errorf("chunk[%d] len = %d, want %d", i, len(c), tt.want[i])
				}
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"", 0},
		{"0", 0},
		{"12345", 12345},
		{"not-a-number", 0},
		{"-5", 0},
	}
	for _, tt := range tests {
		if got := parseCount(tt.input); got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
