// internal/repository/lab.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futurelabs/labtrack/internal/domain"
	"github.com/futurelabs/labtrack/internal/model"
	"gorm.io/gorm"
)

type LabRepository struct {
	db *gorm.DB
}

func NewLabRepository(db *gorm.DB) *LabRepository {
	return &LabRepository{db: db}
}

func (r *LabRepository) Create(ctx context.Context, lab *model.Lab) error {
	if err := r.db.WithContext(ctx).Create(lab).Error; err != nil {
		return translate("creating", "lab", err)
	}
	return nil
}

// FindActive returns all labs that have not been deactivated.
func (r *LabRepository) FindActive(ctx context.Context) ([]*model.Lab, error) {
	var labs []*model.Lab
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&labs).Error; err != nil {
		return nil, fmt.Errorf("failed to find active labs: %w", err)
	}
	return labs, nil
}

func (r *LabRepository) FindByID(ctx context.Context, id uint) (*model.Lab, error) {
	var lab model.Lab
	if err := r.db.WithContext(ctx).First(&lab, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLabNotFound
		}
		return nil, fmt.Errorf("finding lab: %w", err)
	}
	return &lab, nil
}

// FindByIDs returns the labs matching ids; unknown ids are silently dropped.
func (r *LabRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Lab, error) {
	var labs []model.Lab
	if len(ids) == 0 {
		return labs, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&labs).Error; err != nil {
		return nil, fmt.Errorf("finding labs by ids: %w", err)
	}
	return labs, nil
}

func (r *LabRepository) Update(ctx context.Context, lab *model.Lab) error {
	if err := r.db.WithContext(ctx).Save(lab).Error; err != nil {
		return translate("updating", "lab", err)
	}
	return nil
}

// Delete removes a lab. Labs referenced by activities, costs, projects or
// membership rows are protected by restrict-on-delete foreign keys, so the
// delete fails with an IntegrityError instead of orphaning records.
func (r *LabRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Lab{}, id)
	if result.Error != nil {
		return translate("deleting", "lab", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrLabNotFound
	}
	return nil
}

// NameMap returns id -> name over all labs, active or not.
func (r *LabRepository) NameMap(ctx context.Context) (map[uint]string, error) {
	var labs []model.Lab
	if err := r.db.WithContext(ctx).Select("id", "name").Find(&labs).Error; err != nil {
		return nil, fmt.Errorf("loading lab names: %w", err)
	}
	names := make(map[uint]string, len(labs))
	for _, lab := range labs {
		names[lab.ID] = lab.Name
	}
	return names, nil
}
