// internal/service/stats.go
package service

import (
	"context"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
)

// dashboardWindowDays is the trailing window for dashboard hour and cost
// totals. The boundary day is included.
const dashboardWindowDays = 30

// StatsService exposes the read-only aggregations. now is injectable so
// tests can pin the dashboard anchor date.
type StatsService struct {
	stats *repository.StatsRepository
	labs  *repository.LabRepository
	now   func() time.Time
}

func NewStatsService(stats *repository.StatsRepository, labs *repository.LabRepository, now func() time.Time) *StatsService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &StatsService{stats: stats, labs: labs, now: now}
}

func (s *StatsService) Dashboard(ctx context.Context) (*repository.DashboardSummary, error) {
	since := model.DateOf(s.now().AddDate(0, 0, -dashboardWindowDays))
	return s.stats.Dashboard(ctx, since)
}

func (s *StatsService) LabStats(ctx context.Context, labID uint, filter repository.StatsFilter) (*repository.LabStats, error) {
	return s.stats.LabStats(ctx, labID, filter)
}

// ConnectionRow is one resolved edge of the inter-lab support matrix.
type ConnectionRow struct {
	SupportingLab    string     `json:"supporting_lab"`
	SupportedLab     string     `json:"supported_lab"`
	TotalHours       float64    `json:"total_hours"`
	LastActivityDate model.Date `json:"last_activity_date"`
}

// Connections recomputes the support matrix and resolves lab names. Ids
// that no longer resolve degrade to "Unknown" rather than failing.
func (s *StatsService) Connections(ctx context.Context, filter repository.StatsFilter) ([]ConnectionRow, error) {
	edges, err := s.stats.Connections(ctx, filter)
	if err != nil {
		return nil, err
	}
	names, err := s.labs.NameMap(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ConnectionRow, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, ConnectionRow{
			SupportingLab:    nameOrUnknown(names, edge.SupportingLabID),
			SupportedLab:     nameOrUnknown(names, edge.SupportedLabID),
			TotalHours:       edge.TotalHours,
			LastActivityDate: edge.LastActivityDate,
		})
	}
	return rows, nil
}

func nameOrUnknown(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}
