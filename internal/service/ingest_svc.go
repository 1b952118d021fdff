package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ranmdom/Desafio-Ray/internal/enrich"
	"github.com/Ranmdom/Desafio-Ray/internal/metrics"
	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

// Source is the upstream video-platform API as the pipeline sees it.
type Source interface {
	CollectIDs(ctx context.Context, playlistID string, window model.DateWindow) ([]string, error)
	ResolveDetails(ctx context.Context, ids []string) ([]model.RawVideo, error)
}

// Reconciler is the transactional write side of the store.
type Reconciler interface {
	Reconcile(ctx context.Context, records []model.Highlight) error
}

// IngestService runs the ETL as one strictly sequential pass: collect ids,
// resolve details in batches, enrich each record in memory, reconcile into
// the store. Any upstream or store failure aborts the run; the caller retries
// the whole run.
type IngestService struct {
	source     Source
	store      Reconciler
	extractor  *enrich.Extractor
	playlistID string
	window     model.DateWindow
	log        zerolog.Logger
}

func NewIngestService(source Source, store Reconciler, extractor *enrich.Extractor, playlistID string, window model.DateWindow, log zerolog.Logger) *IngestService {
	return &IngestService{
		source:     source,
		store:      store,
		extractor:  extractor,
		playlistID: playlistID,
		window:     window,
		log:        log,
	}
}

// Run executes one pipeline pass.
func (s *IngestService) Run(ctx context.Context) error {
	start := time.Now()
	err := s.run(ctx)
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RunsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.RunsTotal.WithLabelValues("success").Inc()
	return nil
}

func (s *IngestService) run(ctx context.Context) error {
	s.log.Info().
		Str("playlist_id", s.playlistID).
		Time("window_start", s.window.Start).
		Time("window_end", s.window.End).
		Msg("pipeline run started")

	ids, err := s.source.CollectIDs(ctx, s.playlistID, s.window)
	if err != nil {
		return fmt.Errorf("collect ids: %w", err)
	}
	s.log.Info().Int("ids", len(ids)).Msg("ids collected")

	raws, err := s.source.ResolveDetails(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve details: %w", err)
	}
	// Vanished ids (deleted/private videos) are dropped silently per record,
	// but the run logs how many for auditability.
	if dropped := len(ids) - len(raws); dropped > 0 {
		metrics.DroppedIDs.Add(float64(dropped))
		s.log.Warn().Int("dropped", dropped).Msg("ids absent from detail response")
	}

	records := make([]model.Highlight, 0, len(raws))
	for _, raw := range raws {
		records = append(records, enrich.Enrich(raw, s.extractor))
	}

	if err := s.store.Reconcile(ctx, records); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	metrics.RecordsUpserted.Add(float64(len(records)))

	s.log.Info().Int("records", len(records)).Msg("pipeline run finished")
	return nil
}
