// internal/repository/project.go
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

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create persists the project together with its participating-lab set.
// project.Labs must hold existing labs; gorm writes the join rows in the
// same transaction as the project itself.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Omit("Labs.*", "LeadLab").Create(project).Error; err != nil {
		return translate("creating", "project", err)
	}
	return nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.WithContext(ctx).
		Preload("LeadLab").
		Preload("Labs").
		Order("id").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to find all projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Preload("LeadLab").
		Preload("Labs").
		First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("finding project: %w", err)
	}
	return &project, nil
}

// Update saves scalar fields and, when labs is non-nil, replaces the full
// participating-lab set (set semantics; empty slice clears membership).
func (r *ProjectRepository) Update(ctx context.Context, project *model.Project, labs *[]model.Lab) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}
		if labs != nil {
			assoc := tx.Model(project).Association("Labs")
			if len(*labs) == 0 {
				return assoc.Clear()
			}
			return assoc.Replace(*labs)
		}
		return nil
	})
	if err != nil {
		return translate("updating", "project", err)
	}
	return nil
}

// Delete clears the project's own membership rows, then deletes the project.
// Activities or costs still referencing it make the delete fail with an
// IntegrityError and the membership rows roll back with the transaction.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project := model.Project{ID: id}
		if err := tx.Model(&project).Association("Labs").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&model.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return err
		}
		return translate("deleting", "project", err)
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return count, nil
}
