package model

import "time"

// Overview is the headline metrics block of the dashboard.
// AvgLikeRate excludes rows with zero views, where the ratio is undefined.
type Overview struct {
	Videos      int64   `json:"videos"`
	TotalViews  int64   `json:"totalViews"`
	AvgLikes    float64 `json:"avgLikes"`
	AvgComments float64 `json:"avgComments"`
	AvgLikeRate float64 `json:"avgLikeRate"`
}

// TopHighlight is one bar of the top-N-by-views chart.
type TopHighlight struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	ViewCount int64  `json:"viewCount"`
}

// ScatterPoint feeds the views-vs-engagement scatter. LikeRate is nil for
// videos with zero views.
type ScatterPoint struct {
	VideoID   string   `json:"videoId"`
	Title     string   `json:"title"`
	ViewCount int64    `json:"viewCount"`
	LikeRate  *float64 `json:"likeRate"`
}

// MonthlyPoint is one sample of a per-month time series (total views or
// mean like rate, depending on the endpoint).
type MonthlyPoint struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// MonthlySummary mirrors one row of reporting.monthly_summary.
type MonthlySummary struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Videos        int64   `json:"videos"`
	TotalViews    int64   `json:"totalViews"`
	AvgLikes      float64 `json:"avgLikes"`
	TotalComments int64   `json:"totalComments"`
}

// DriverSummary mirrors one row of reporting.driver_summary.
type DriverSummary struct {
	Driver        string  `json:"driver"`
	Videos        int64   `json:"videos"`
	TotalViews    int64   `json:"totalViews"`
	TotalComments int64   `json:"totalComments"`
	AvgLikes      float64 `json:"avgLikes"`
}
