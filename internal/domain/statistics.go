package domain

import "math"

// ProjectStatistics holds the derived completion counters for an
// organization or a single project. Values are computed from live task
// rows on each request.
type ProjectStatistics struct {
	TotalProjects  int `json:"total_projects"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	ActiveTasks    int `json:"active_tasks"`
	CompletionRate int `json:"completion_rate"`
}

// CompletionRate returns completed/total as a whole percentage, rounded
// to the nearest integer. A total of zero yields zero.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// NewProjectStatistics builds the stats value from raw counters,
// deriving active tasks and the completion rate.
func NewProjectStatistics(totalProjects, totalTasks, completedTasks int) ProjectStatistics {
	return ProjectStatistics{
		TotalProjects:  totalProjects,
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		ActiveTasks:    totalTasks - completedTasks,
		CompletionRate: CompletionRate(completedTasks, totalTasks),
	}
}
