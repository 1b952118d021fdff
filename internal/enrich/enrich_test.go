package enrich

import (
	"testing"
	"time"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

func rawVideo() model.RawVideo {
	return model.RawVideo{
		VideoID:      "abc123",
		Title:        "Lewis Hamilton wins Monaco Grand Prix Highlights",
		PublishedAt:  time.Date(2024, 5, 26, 16, 30, 0, 0, time.UTC),
		ViewCount:    1000,
		LikeCount:    50,
		CommentCount: 7,
	}
}

func TestEnrich_CalendarFields(t *testing.T) {
	h := Enrich(rawVideo(), DefaultExtractor())

	if h.Year != 2024 || h.Month != 5 || h.Day != 26 {
		t.Errorf("calendar = %d-%d-%d, want 2024-5-26", h.Year, h.Month, h.Day)
	}
	// 2024-05-26 is a Sunday; weekday names are fixed English.
	if h.Weekday != "Sunday" {
		t.Errorf("weekday = %q, want Sunday", h.Weekday)
	}
}

func TestEnrich_CalendarFieldsUseUTC(t *testing.T) {
	raw := rawVideo()
	// 23:30 -03:00 on the 25th is 02:30 UTC on the 26th.
	loc := time.FixedZone("BRT", -3*3600)
	raw.PublishedAt = time.Date(2024, 5, 25, 23, 30, 0, 0, loc)

	h := Enrich(raw, DefaultExtractor())
	if h.Day != 26 {
		t.Errorf("day = %d, want 26 (UTC derivation)", h.Day)
	}
}

func TestEnrich_DriverAndRegionFallback(t *testing.T) {
	h := Enrich(rawVideo(), DefaultExtractor())

	if h.Driver != "Lewis Hamilton" {
		t.Errorf("driver = %q, want Lewis Hamilton", h.Driver)
	}
	if h.Region == nil || *h.Region != "Mônaco (Monte Carlo)" {
		t.Errorf("region = %v, want Mônaco (Monte Carlo)", h.Region)
	}
}

func TestEnrich_GeolocationSuppressesRegion(t *testing.T) {
	raw := rawVideo()
	lat, lon := 43.7347, 7.4206
	raw.Latitude = &lat
	raw.Longitude = &lon

	h := Enrich(raw, DefaultExtractor())
	if h.Region != nil {
		t.Errorf("region = %q, want nil when coordinates are present", *h.Region)
	}
	if h.Latitude == nil || h.Longitude == nil {
		t.Error("coordinates should be carried through")
	}
}

func TestEnrich_PartialGeolocationFallsBackToLexicon(t *testing.T) {
	raw := rawVideo()
	lat := 43.7347
	raw.Latitude = &lat // longitude missing

	h := Enrich(raw, DefaultExtractor())
	if h.Latitude != nil || h.Longitude != nil {
		t.Error("a lone coordinate should be discarded")
	}
	if h.Region == nil || *h.Region != "Mônaco (Monte Carlo)" {
		t.Errorf("region = %v, want lexicon fallback", h.Region)
	}
}

func TestEnrich_UnknownSentinels(t *testing.T) {
	raw := rawVideo()
	raw.Title = "Season review: best moments"

	h := Enrich(raw, DefaultExtractor())
	if h.Driver != UnknownDriver {
		t.Errorf("driver = %q, want %q", h.Driver, UnknownDriver)
	}
	if h.Region == nil || *h.Region != UnknownRegion {
		t.Errorf("region = %v, want %q", h.Region, UnknownRegion)
	}
}

func TestEnrich_ZeroCountersPassThrough(t *testing.T) {
	raw := rawVideo()
	raw.ViewCount, raw.LikeCount, raw.CommentCount = 0, 0, 0

	h := Enrich(raw, DefaultExtractor())
	if h.ViewCount != 0 || h.LikeCount != 0 || h.CommentCount != 0 {
		t.Errorf("counters = %d/%d/%d, want zeros", h.ViewCount, h.LikeCount, h.CommentCount)
	}
}
