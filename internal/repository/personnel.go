// internal/repository/personnel.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futurelabs/labtrack/internal/domain"
	"github.com/futurelabs/labtrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PersonnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

func (r *PersonnelRepository) Create(ctx context.Context, person *model.Personnel) error {
	if err := r.db.WithContext(ctx).Omit("Labs.*").Create(person).Error; err != nil {
		return translate("creating", "personnel", err)
	}
	return nil
}

// FindActive returns all active personnel with their lab memberships loaded.
func (r *PersonnelRepository) FindActive(ctx context.Context) ([]*model.Personnel, error) {
	var people []*model.Personnel
	if err := r.db.WithContext(ctx).
		Preload("Labs").
		Where("is_active = ?", true).
		Order("id").
		Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find active personnel: %w", err)
	}
	return people, nil
}

func (r *PersonnelRepository) FindByID(ctx context.Context, id uint) (*model.Personnel, error) {
	var person model.Personnel
	if err := r.db.WithContext(ctx).
		Preload("Labs").
		First(&person, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("finding personnel: %w", err)
	}
	return &person, nil
}

// Update saves scalar fields and, when labs is non-nil, replaces the full
// lab membership set.
func (r *PersonnelRepository) Update(ctx context.Context, person *model.Personnel, labs *[]model.Lab) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(person).Error; err != nil {
			return err
		}
		if labs != nil {
			assoc := tx.Model(person).Association("Labs")
			if len(*labs) == 0 {
				return assoc.Clear()
			}
			return assoc.Replace(*labs)
		}
		return nil
	})
	if err != nil {
		return translate("updating", "personnel", err)
	}
	return nil
}

// Delete clears the person's lab memberships, then deletes the row. Logged
// activities keep the person undeletable (restrict policy).
func (r *PersonnelRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		person := model.Personnel{ID: id}
		if err := tx.Model(&person).Association("Labs").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&model.Personnel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrPersonnelNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersonnelNotFound) {
			return err
		}
		return translate("deleting", "personnel", err)
	}
	return nil
}
