package enrich

import "github.com/Ranmdom/Desafio-Ray/internal/model"

// Enrich turns a raw API record into a storable highlight: calendar fields
// come from publishedAt in UTC (weekday names are fixed English, not locale
// dependent), the driver always comes from the roster scan, and the region
// lexicon is consulted only when the video has no usable geolocation.
func Enrich(raw model.RawVideo, ex *Extractor) model.Highlight {
	ts := raw.PublishedAt.UTC()

	h := model.Highlight{
		VideoID:      raw.VideoID,
		Title:        raw.Title,
		PublishedAt:  raw.PublishedAt,
		ViewCount:    raw.ViewCount,
		LikeCount:    raw.LikeCount,
		CommentCount: raw.CommentCount,
		Driver:       ex.Driver(raw.Title),
		Year:         ts.Year(),
		Month:        int(ts.Month()),
		Day:          ts.Day(),
		Weekday:      ts.Weekday().String(),
	}

	// Coordinates are stored only as a pair; a lone latitude or longitude is
	// discarded and the record falls through to the lexicon.
	if raw.Latitude != nil && raw.Longitude != nil {
		h.Latitude = raw.Latitude
		h.Longitude = raw.Longitude
		return h
	}

	region := ex.Region(raw.Title)
	h.Region = &region
	return h
}
