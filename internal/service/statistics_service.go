package service

import (
	"context"

	"github.com/taskhub/taskhub-backend/internal/domain"
	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// StatisticsService derives completion statistics for an organization or
// one of its projects. Nothing is cached; every call aggregates live
// task rows.
type StatisticsService interface {
	// GetStatistics returns the counters for the organization, narrowed
	// to one project when projectID is non-empty
	GetStatistics(ctx context.Context, orgSlug, projectID string) (*dto.StatisticsResponse, error)
}

// statisticsService implements StatisticsService
type statisticsService struct {
	statsRepo repository.StatisticsRepository
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(statsRepo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{statsRepo: statsRepo}
}

// GetStatistics aggregates the counters and derives active tasks and the
// completion rate
func (s *statisticsService) GetStatistics(ctx context.Context, orgSlug, projectID string) (*dto.StatisticsResponse, error) {
	row, err := s.statsRepo.GetStats(ctx, orgSlug, projectID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrOrganizationNotFound
	}
	if projectID != "" && row.TotalProjects == 0 {
		return nil, ErrProjectNotFound
	}

	stats := domain.NewProjectStatistics(row.TotalProjects, row.TotalTasks, row.CompletedTasks)
	resp := dto.NewStatisticsResponse(stats)
	return &resp, nil
}
