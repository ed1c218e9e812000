// internal/repository/activity.go
package repository

import (
	"context"
	"fmt"

	"github.com/futurelabs/labtrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ActivityFilter narrows activity listings. Zero values impose no
// restriction; date bounds are inclusive.
type ActivityFilter struct {
	StartDate model.Date
	EndDate   model.Date
	LabID     uint
}

// Create inserts the activity and, for support activities that name a
// supported lab, maintains the per-pair summary row in the same transaction.
// The summary step is a single insert-or-increment upsert so concurrent
// entries for the same pair cannot lose an update or race the pair's
// uniqueness constraint.
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(activity).Error; err != nil {
			return err
		}

		if activity.ActivityType != model.ActivitySupport || activity.SupportedLabID == nil {
			return nil
		}

		relation := model.LabSupportRelation{
			SupportingLabID:  activity.LabID,
			SupportedLabID:   *activity.SupportedLabID,
			TotalHours:       activity.Hours,
			LastActivityDate: activity.ActivityDate,
		}
		// last_activity_date is overwritten, not maxed: it tracks the most
		// recently recorded entry.
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "supporting_lab_id"}, {Name: "supported_lab_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_hours":        gorm.Expr("lab_support_relations.total_hours + ?", activity.Hours),
				"last_activity_date": activity.ActivityDate,
			}),
		}).Create(&relation).Error
	})
	if err != nil {
		return translate("creating", "activity", err)
	}
	return nil
}

// FindAll returns activities matching the filter with all referenced rows
// preloaded for display.
func (r *ActivityRepository) FindAll(ctx context.Context, filter ActivityFilter) ([]*model.Activity, error) {
	query := r.db.WithContext(ctx).
		Preload("Personnel").
		Preload("Lab").
		Preload("Project").
		Preload("SupportedLab")

	if filter.StartDate != "" {
		query = query.Where("activity_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("activity_date <= ?", filter.EndDate)
	}
	if filter.LabID != 0 {
		query = query.Where("lab_id = ?", filter.LabID)
	}

	var activities []*model.Activity
	if err := query.Order("activity_date, id").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}
	return activities, nil
}

// FindSupportRelation loads the summary row for one ordered lab pair.
func (r *ActivityRepository) FindSupportRelation(ctx context.Context, supportingLabID, supportedLabID uint) (*model.LabSupportRelation, error) {
	var relation model.LabSupportRelation
	err := r.db.WithContext(ctx).
		Where("supporting_lab_id = ? AND supported_lab_id = ?", supportingLabID, supportedLabID).
		First(&relation).Error
	if err != nil {
		return nil, fmt.Errorf("finding support relation: %w", err)
	}
	return &relation, nil
}
