package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
	"github.com/Ranmdom/Desafio-Ray/internal/repository"
)

// DashboardService is the read path of the dashboard. It layers a cache-aside
// Redis cache over the repository; cache failures degrade to direct queries.
type DashboardService struct {
	repo  *repository.DashboardRepo
	cache *CacheService
}

func NewDashboardService(repo *repository.DashboardRepo, cache *CacheService) *DashboardService {
	return &DashboardService{repo: repo, cache: cache}
}

func (s *DashboardService) Overview(ctx context.Context, start, end *time.Time) (*model.Overview, error) {
	key := rangeKey("overview", start, end)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var o model.Overview
		if json.Unmarshal(cached, &o) == nil {
			return &o, nil
		}
	}

	o, err := s.repo.Overview(ctx, start, end)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, o, DashboardCacheTTL)
	return o, nil
}

func (s *DashboardService) TopByViews(ctx context.Context, start, end *time.Time, limit int) ([]model.TopHighlight, error) {
	return s.repo.TopByViews(ctx, start, end, limit)
}

func (s *DashboardService) MonthlyViews(ctx context.Context, start, end *time.Time) ([]model.MonthlyPoint, error) {
	return s.repo.MonthlyViews(ctx, start, end)
}

func (s *DashboardService) MonthlyEngagement(ctx context.Context, start, end *time.Time) ([]model.MonthlyPoint, error) {
	return s.repo.MonthlyEngagement(ctx, start, end)
}

func (s *DashboardService) Scatter(ctx context.Context, start, end *time.Time) ([]model.ScatterPoint, error) {
	return s.repo.Scatter(ctx, start, end)
}

func (s *DashboardService) MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error) {
	key := "summary:monthly"
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var out []model.MonthlySummary
		if json.Unmarshal(cached, &out) == nil {
			return out, nil
		}
	}

	out, err := s.repo.MonthlySummary(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, DashboardCacheTTL)
	return out, nil
}

func (s *DashboardService) DriverSummary(ctx context.Context) ([]model.DriverSummary, error) {
	key := "summary:drivers"
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var out []model.DriverSummary
		if json.Unmarshal(cached, &out) == nil {
			return out, nil
		}
	}

	out, err := s.repo.DriverSummary(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, DashboardCacheTTL)
	return out, nil
}

func (s *DashboardService) AllHighlights(ctx context.Context) ([]model.Highlight, error) {
	return s.repo.AllHighlights(ctx)
}

func rangeKey(prefix string, start, end *time.Time) string {
	s, e := "-", "-"
	if start != nil {
		s = start.UTC().Format(time.RFC3339)
	}
	if end != nil {
		e = end.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("dashboard:%s:%s:%s", prefix, s, e)
}
