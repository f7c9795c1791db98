package repository

import "context"

// StatsRow holds the raw counters a statistics query aggregates; rate
// derivation happens in the domain layer
type StatsRow struct {
	TotalProjects  int
	TotalTasks     int
	CompletedTasks int
}

// StatisticsRepository aggregates task counters across the ownership
// chain of one organization
type StatisticsRepository interface {
	// GetStats aggregates counters for the organization, narrowed to one
	// project when projectID is non-empty. Returns (nil, nil) when the
	// organization does not exist; a non-empty projectID that does not
	// belong to the organization yields TotalProjects == 0.
	GetStats(ctx context.Context, orgSlug, projectID string) (*StatsRow, error)
}
