package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

type HighlightRepo struct {
	pool *pgxpool.Pool
}

func NewHighlightRepo(pool *pgxpool.Pool) *HighlightRepo {
	return &HighlightRepo{pool: pool}
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS f1_highlights (
		video_id      TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		published_at  TIMESTAMPTZ NOT NULL,
		view_count    BIGINT NOT NULL DEFAULT 0,
		like_count    BIGINT NOT NULL DEFAULT 0,
		comment_count BIGINT NOT NULL DEFAULT 0,
		latitude      DOUBLE PRECISION,
		longitude     DOUBLE PRECISION,
		driver        TEXT NOT NULL,
		region        TEXT,
		year          INT NOT NULL,
		month         INT NOT NULL,
		day           INT NOT NULL,
		weekday       TEXT NOT NULL
	)`

const upsertSQL = `
	INSERT INTO f1_highlights (
		video_id, title, published_at, view_count, like_count, comment_count,
		latitude, longitude, driver, region, year, month, day, weekday
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (video_id) DO UPDATE SET
		title         = EXCLUDED.title,
		published_at  = EXCLUDED.published_at,
		view_count    = EXCLUDED.view_count,
		like_count    = EXCLUDED.like_count,
		comment_count = EXCLUDED.comment_count,
		latitude      = EXCLUDED.latitude,
		longitude     = EXCLUDED.longitude,
		driver        = EXCLUDED.driver,
		region        = EXCLUDED.region,
		year          = EXCLUDED.year,
		month         = EXCLUDED.month,
		day           = EXCLUDED.day,
		weekday       = EXCLUDED.weekday`

// Rebuilt wholesale on every run, never incrementally maintained.
const rebuildMonthlySQL = `
	CREATE TABLE reporting.monthly_summary AS
	SELECT
		year,
		month,
		COUNT(*)            AS videos,
		SUM(view_count)     AS total_views,
		AVG(like_count)     AS avg_likes,
		SUM(comment_count)  AS total_comments
	FROM f1_highlights
	GROUP BY year, month
	ORDER BY year, month`

const rebuildDriverSQL = `
	CREATE TABLE reporting.driver_summary AS
	SELECT
		driver,
		COUNT(*)            AS videos,
		SUM(view_count)     AS total_views,
		SUM(comment_count)  AS total_comments,
		AVG(like_count)     AS avg_likes
	FROM f1_highlights
	GROUP BY driver
	ORDER BY total_comments DESC`

// Reconcile persists the record set as one unit of work: ensure the target
// table, upsert every record keyed on video_id with full-column overwrite,
// then rebuild both reporting tables. Everything happens inside a single
// transaction, so a failure anywhere leaves the store in its pre-run state.
func (r *HighlightRepo) Reconcile(ctx context.Context, records []model.Highlight) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reconcile: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("ensure f1_highlights: %w", err)
	}

	for _, rec := range records {
		if err := upsertOne(ctx, tx, rec); err != nil {
			return fmt.Errorf("upsert %s: %w", rec.VideoID, err)
		}
	}

	if err := rebuildSummaries(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reconcile: %w", err)
	}
	return nil
}

func upsertOne(ctx context.Context, tx pgx.Tx, rec model.Highlight) error {
	_, err := tx.Exec(ctx, upsertSQL,
		rec.VideoID, rec.Title, rec.PublishedAt,
		rec.ViewCount, rec.LikeCount, rec.CommentCount,
		rec.Latitude, rec.Longitude,
		rec.Driver, rec.Region,
		rec.Year, rec.Month, rec.Day, rec.Weekday,
	)
	return err
}

func rebuildSummaries(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `CREATE SCHEMA IF NOT EXISTS reporting`); err != nil {
		return fmt.Errorf("ensure reporting schema: %w", err)
	}
	for _, stmt := range []struct{ drop, create string }{
		{`DROP TABLE IF EXISTS reporting.monthly_summary`, rebuildMonthlySQL},
		{`DROP TABLE IF EXISTS reporting.driver_summary`, rebuildDriverSQL},
	} {
		if _, err := tx.Exec(ctx, stmt.drop); err != nil {
			return fmt.Errorf("drop summary: %w", err)
		}
		if _, err := tx.Exec(ctx, stmt.create); err != nil {
			return fmt.Errorf("rebuild summary: %w", err)
		}
	}
	return nil
}
