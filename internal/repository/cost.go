// internal/repository/cost.go
package repository

import (
	"context"
	"fmt"

	"github.com/futurelabs/labtrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

// CostFilter narrows cost listings. Zero values impose no restriction;
// filters compose with logical AND and date bounds are inclusive.
type CostFilter struct {
	LabID     uint
	ProjectID uint
	StartDate model.Date
	EndDate   model.Date
}

func (r *CostRepository) Create(ctx context.Context, cost *model.Cost) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(cost).Error; err != nil {
		return translate("creating", "cost", err)
	}
	return nil
}

func (r *CostRepository) FindAll(ctx context.Context, filter CostFilter) ([]*model.Cost, error) {
	query := r.db.WithContext(ctx)

	if filter.LabID != 0 {
		query = query.Where("lab_id = ?", filter.LabID)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.StartDate != "" {
		query = query.Where("cost_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("cost_date <= ?", filter.EndDate)
	}

	var costs []*model.Cost
	if err := query.Order("cost_date, id").Find(&costs).Error; err != nil {
		return nil, fmt.Errorf("failed to find costs: %w", err)
	}
	return costs, nil
}
