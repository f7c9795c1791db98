package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStatisticsRepository implements StatisticsRepository using
// PostgreSQL. Counters are aggregated from live rows on every call.
type PostgresStatisticsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStatisticsRepository creates a new PostgresStatisticsRepository
func NewPostgresStatisticsRepository(pool *pgxpool.Pool) *PostgresStatisticsRepository {
	return &PostgresStatisticsRepository{pool: pool}
}

// GetStats aggregates the organization's counters in one query. The
// project filter sits in the join condition so an organization with no
// matching project still returns a row (with zero counts), which lets
// the service distinguish a missing organization from a missing project.
func (r *PostgresStatisticsRepository) GetStats(ctx context.Context, orgSlug, projectID string) (*StatsRow, error) {
	query := `
		SELECT COUNT(DISTINCT p.id) AS total_projects,
		       COUNT(t.id) AS total_tasks,
		       COUNT(t.id) FILTER (WHERE t.status = 'DONE') AS completed_tasks
		FROM organizations o
		LEFT JOIN projects p ON p.organization_id = o.id AND ($2 = '' OR p.id::text = $2)
		LEFT JOIN tasks t ON t.project_id = p.id
		WHERE o.slug = $1
		GROUP BY o.id
	`
	row := &StatsRow{}
	err := r.pool.QueryRow(ctx, query, orgSlug, projectID).Scan(
		&row.TotalProjects,
		&row.TotalTasks,
		&row.CompletedTasks,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
