package handler

import (
	"context"
	"sync"

	"github.com/taskhub/taskhub-backend/pkg/telemetry"
)

var (
	metricsOnce     sync.Once
	mutationCounter *telemetry.Counter
	statsDuration   *telemetry.Histogram
)

func initMetrics() {
	metricsOnce.Do(func() {
		mutationCounter, _ = telemetry.NewCounter(telemetry.MetricOpts{
			Name:        "taskhub_mutations_total",
			Description: "Create and update operations by organization",
			Unit:        "{operation}",
		})
		statsDuration, _ = telemetry.NewHistogram(telemetry.MetricOpts{
			Name:        "taskhub_statistics_duration_ms",
			Description: "Time spent computing completion statistics",
			Unit:        "ms",
		})
	})
}

// countMutation records one successful create or update under the
// organization's slug
func countMutation(ctx context.Context, slug, op string) {
	initMetrics()
	if mutationCounter != nil {
		mutationCounter.Inc(ctx, telemetry.OrganizationAttr(slug), telemetry.OperationAttr(op))
	}
}

func recordStatsDuration(ctx context.Context, slug string, ms float64) {
	initMetrics()
	if statsDuration != nil {
		statsDuration.Record(ctx, ms, telemetry.OrganizationAttr(slug))
	}
}
