package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

// DashboardRepo serves the read-only queries behind the dashboard API.
// All per-video queries accept an optional [start, end) publish filter;
// nil bounds mean unbounded.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

func NewDashboardRepo(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

const windowFilter = `
	($1::timestamptz IS NULL OR published_at >= $1)
	AND ($2::timestamptz IS NULL OR published_at < $2)`

// Overview returns the headline metrics. The like-rate average skips rows
// with zero views (NULLIF makes the ratio NULL, and AVG ignores NULLs).
func (r *DashboardRepo) Overview(ctx context.Context, start, end *time.Time) (*model.Overview, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(view_count), 0),
			COALESCE(AVG(like_count), 0),
			COALESCE(AVG(comment_count), 0),
			COALESCE(AVG(like_count::float8 / NULLIF(view_count, 0)), 0)
		FROM f1_highlights
		WHERE ` + windowFilter

	var o model.Overview
	err := r.pool.QueryRow(ctx, query, start, end).Scan(
		&o.Videos, &o.TotalViews, &o.AvgLikes, &o.AvgComments, &o.AvgLikeRate,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// TopByViews returns the limit most-viewed highlights in the window.
func (r *DashboardRepo) TopByViews(ctx context.Context, start, end *time.Time, limit int) ([]model.TopHighlight, error) {
	query := `
		SELECT video_id, title, view_count
		FROM f1_highlights
		WHERE ` + windowFilter + `
		ORDER BY view_count DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []model.TopHighlight
	for rows.Next() {
		var h model.TopHighlight
		if err := rows.Scan(&h.VideoID, &h.Title, &h.ViewCount); err != nil {
			return nil, err
		}
		top = append(top, h)
	}
	return top, rows.Err()
}

// MonthlyViews returns the total views per publish month, ascending.
func (r *DashboardRepo) MonthlyViews(ctx context.Context, start, end *time.Time) ([]model.MonthlyPoint, error) {
	query := `
		SELECT date_trunc('month', published_at) AS month, SUM(view_count)::float8
		FROM f1_highlights
		WHERE ` + windowFilter + `
		GROUP BY month
		ORDER BY month`
	return r.monthlySeries(ctx, query, start, end)
}

// MonthlyEngagement returns the mean like rate per publish month, ascending.
// Zero-view rows are excluded from each month's mean.
func (r *DashboardRepo) MonthlyEngagement(ctx context.Context, start, end *time.Time) ([]model.MonthlyPoint, error) {
	query := `
		SELECT date_trunc('month', published_at) AS month,
		       COALESCE(AVG(like_count::float8 / NULLIF(view_count, 0)), 0)
		FROM f1_highlights
		WHERE ` + windowFilter + `
		GROUP BY month
		ORDER BY month`
	return r.monthlySeries(ctx, query, start, end)
}

func (r *DashboardRepo) monthlySeries(ctx context.Context, query string, start, end *time.Time) ([]model.MonthlyPoint, error) {
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []model.MonthlyPoint
	for rows.Next() {
		var p model.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Value); err != nil {
			return nil, err
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// Scatter returns per-video views and like rate for the engagement chart.
// LikeRate is nil for zero-view videos.
func (r *DashboardRepo) Scatter(ctx context.Context, start, end *time.Time) ([]model.ScatterPoint, error) {
	query := `
		SELECT video_id, title, view_count,
		       like_count::float8 / NULLIF(view_count, 0)
		FROM f1_highlights
		WHERE ` + windowFilter + `
		ORDER BY view_count DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.ScatterPoint
	for rows.Next() {
		var p model.ScatterPoint
		if err := rows.Scan(&p.VideoID, &p.Title, &p.ViewCount, &p.LikeRate); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// MonthlySummary reads the rebuilt reporting.monthly_summary table.
func (r *DashboardRepo) MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error) {
	query := `
		SELECT year, month, videos, total_views, avg_likes, total_comments
		FROM reporting.monthly_summary
		ORDER BY year, month`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MonthlySummary
	for rows.Next() {
		var s model.MonthlySummary
		if err := rows.Scan(&s.Year, &s.Month, &s.Videos, &s.TotalViews, &s.AvgLikes, &s.TotalComments); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DriverSummary reads the rebuilt reporting.driver_summary table, ordered by
// total comments descending.
func (r *DashboardRepo) DriverSummary(ctx context.Context) ([]model.DriverSummary, error) {
	query := `
		SELECT driver, videos, total_views, total_comments, avg_likes
		FROM reporting.driver_summary
		ORDER BY total_comments DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DriverSummary
	for rows.Next() {
		var s model.DriverSummary
		if err := rows.Scan(&s.Driver, &s.Videos, &s.TotalViews, &s.TotalComments, &s.AvgLikes); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllHighlights streams the full table for the CSV export, most recent first.
func (r *DashboardRepo) AllHighlights(ctx context.Context) ([]model.Highlight, error) {
	query := `
		SELECT video_id, title, published_at, view_count, like_count, comment_count,
		       latitude, longitude, driver, region, year, month, day, weekday
		FROM f1_highlights
		ORDER BY published_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Highlight
	for rows.Next() {
		var h model.Highlight
		err := rows.Scan(
			&h.VideoID, &h.Title, &h.PublishedAt,
			&h.ViewCount, &h.LikeCount, &h.CommentCount,
			&h.Latitude, &h.Longitude, &h.Driver, &h.Region,
			&h.Year, &h.Month, &h.Day, &h.Weekday,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
