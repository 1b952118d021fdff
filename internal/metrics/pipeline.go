// Package metrics holds the Prometheus collectors for the ingestion
// pipeline. Collectors register on the default registry at init so both the
// pipeline binary and the API server expose whichever of them they touch.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "f1_pipeline_api_calls_total",
			Help: "Calls made to the YouTube Data API, by endpoint and outcome.",
		},
		[]string{"endpoint", "status"},
	)

	PagesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "f1_pipeline_pages_fetched_total",
			Help: "Playlist pages walked during id collection.",
		},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "f1_pipeline_batch_size",
			Help:    "Number of ids per detail request.",
			Buckets: prometheus.LinearBuckets(5, 5, 10),
		},
	)

	RecordsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "f1_pipeline_records_upserted_total",
			Help: "Highlight rows written through the upsert reconciler.",
		},
	)

	DroppedIDs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "f1_pipeline_dropped_ids_total",
			Help: "Ids requested from the detail endpoint but absent from its response.",
		},
	)

	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "f1_pipeline_runs_total",
			Help: "Pipeline runs, by outcome.",
		},
		[]string{"status"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "f1_pipeline_run_duration_seconds",
			Help:    "Wall-clock duration of a full pipeline run.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)
)
