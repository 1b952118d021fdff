package handler

import (
	"testing"
	"time"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

func TestCsvRow(t *testing.T) {
	region := "Mônaco (Monte Carlo)"
	h := model.Highlight{
		VideoID:      "abc123",
		Title:        "Monaco Grand Prix Highlights",
		PublishedAt:  time.Date(2024, 5, 26, 16, 30, 0, 0, time.UTC),
		ViewCount:    1000,
		LikeCount:    50,
		CommentCount: 7,
		Driver:       "Lewis Hamilton",
		Region:       &region,
		Year:         2024,
		Month:        5,
		Day:          26,
		Weekday:      "Sunday",
	}

	row := csvRow(h)
	want := []string{
		"abc123", "Monaco Grand Prix Highlights", "2024-05-26T16:30:00Z",
		"1000", "50", "7", "", "", "Lewis Hamilton", "Mônaco (Monte Carlo)",
		"2024", "5", "26", "Sunday",
	}
	if len(row) != len(want) {
		t.Fatalf("row has %d columns, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestCsvRow_Coordinates(t *testing.T) {
	lat, lon := 43.7347, 7.4206
	h := model.Highlight{
		VideoID:     "xyz",
		PublishedAt: time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC),
		Latitude:    &lat,
		Longitude:   &lon,
		Driver:      "Desconhecido",
	}

	row := csvRow(h)
	if row[6] != "43.7347" || row[7] != "7.4206" {
		t.Errorf("coordinates = %q/%q, want 43.7347/7.4206", row[6], row[7])
	}
	// Region column is empty when coordinates are present.
	if row[9] != "" {
		t.Errorf("region = %q, want empty", row[9])
	}
}
