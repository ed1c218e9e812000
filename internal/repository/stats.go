// internal/repository/stats.go
package repository

import (
	"context"
	"fmt"

	"github.com/futurelabs/labtrack/internal/model"
	"gorm.io/gorm"
)

// StatsRepository runs the read-only aggregate queries behind the dashboard,
// per-lab statistics and the lab-connection matrix.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// StatsFilter narrows aggregates by inclusive date bounds and an optional
// project. Zero values impose no restriction.
type StatsFilter struct {
	StartDate model.Date
	EndDate   model.Date
	ProjectID uint
}

type DashboardSummary struct {
	TotalLabs       int64
	TotalProjects   int64
	TotalHours      float64
	ActivePersonnel int64
	TotalCost       float64
}

// Dashboard aggregates org-wide totals. since bounds the trailing window for
// hours and actual costs (inclusive); counts ignore it.
func (r *StatsRepository) Dashboard(ctx context.Context, since model.Date) (*DashboardSummary, error) {
	db := r.db.WithContext(ctx)
	summary := &DashboardSummary{}

	if err := db.Model(&model.Lab{}).Where("is_active = ?", true).Count(&summary.TotalLabs).Error; err != nil {
		return nil, fmt.Errorf("counting labs: %w", err)
	}
	if err := db.Model(&model.Project{}).Count(&summary.TotalProjects).Error; err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}
	if err := db.Model(&model.Personnel{}).Where("is_active = ?", true).Count(&summary.ActivePersonnel).Error; err != nil {
		return nil, fmt.Errorf("counting personnel: %w", err)
	}
	if err := db.Model(&model.Activity{}).
		Select("COALESCE(SUM(hours), 0)").
		Where("activity_date >= ?", since).
		Scan(&summary.TotalHours).Error; err != nil {
		return nil, fmt.Errorf("summing hours: %w", err)
	}
	if err := db.Model(&model.Cost{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("cost_date >= ? AND cost_type = ?", since, model.CostActual).
		Scan(&summary.TotalCost).Error; err != nil {
		return nil, fmt.Errorf("summing costs: %w", err)
	}

	return summary, nil
}

type LabStats struct {
	TotalHours       float64
	ParticipantCount int64
	TotalCost        float64
}

// LabStats aggregates one lab's activity hours, distinct contributors and
// costs. The date/project filter applies to the activity and cost tables
// independently.
func (r *StatsRepository) LabStats(ctx context.Context, labID uint, filter StatsFilter) (*LabStats, error) {
	db := r.db.WithContext(ctx)
	stats := &LabStats{}

	activities := r.applyFilter(db.Model(&model.Activity{}).Where("lab_id = ?", labID), "activity_date", filter)
	if err := activities.Select("COALESCE(SUM(hours), 0)").Scan(&stats.TotalHours).Error; err != nil {
		return nil, fmt.Errorf("summing lab hours: %w", err)
	}

	participants := r.applyFilter(db.Model(&model.Activity{}).Where("lab_id = ?", labID), "activity_date", filter)
	if err := participants.Select("COUNT(DISTINCT personnel_id)").Scan(&stats.ParticipantCount).Error; err != nil {
		return nil, fmt.Errorf("counting lab participants: %w", err)
	}

	costs := r.applyFilter(db.Model(&model.Cost{}).Where("lab_id = ?", labID), "cost_date", filter)
	if err := costs.Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalCost).Error; err != nil {
		return nil, fmt.Errorf("summing lab costs: %w", err)
	}

	return stats, nil
}

// SupportEdge is one ordered (supporting, supported) pair from the live
// matrix recomputation.
type SupportEdge struct {
	SupportingLabID  uint
	SupportedLabID   uint
	TotalHours       float64
	LastActivityDate model.Date
}

// Connections recomputes the inter-lab support matrix from raw activity
// rows: support entries with a named supported lab, grouped by ordered pair.
// Unlike the persisted summary table this uses the true MAX of the activity
// dates, so the two can diverge under retroactive entry.
func (r *StatsRepository) Connections(ctx context.Context, filter StatsFilter) ([]SupportEdge, error) {
	query := r.db.WithContext(ctx).Model(&model.Activity{}).
		Select("lab_id AS supporting_lab_id, supported_lab_id, SUM(hours) AS total_hours, MAX(activity_date) AS last_activity_date").
		Where("activity_type = ? AND supported_lab_id IS NOT NULL", model.ActivitySupport)
	query = r.applyFilter(query, "activity_date", filter)

	var edges []SupportEdge
	if err := query.
		Group("lab_id, supported_lab_id").
		Order("lab_id, supported_lab_id").
		Scan(&edges).Error; err != nil {
		return nil, fmt.Errorf("computing lab connections: %w", err)
	}
	return edges, nil
}

func (r *StatsRepository) applyFilter(query *gorm.DB, dateColumn string, filter StatsFilter) *gorm.DB {
	if filter.StartDate != "" {
		query = query.Where(dateColumn+" >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where(dateColumn+" <= ?", filter.EndDate)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	return query
}
