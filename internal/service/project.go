// internal/service/project.go
package service

import (
	"context"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/go-playground/validator/v10"
)

type ProjectService struct {
	repo     *repository.ProjectRepository
	labRepo  *repository.LabRepository
	validate *validator.Validate
}

func NewProjectService(repo *repository.ProjectRepository, labRepo *repository.LabRepository) *ProjectService {
	return &ProjectService{
		repo:     repo,
		labRepo:  labRepo,
		validate: newValidator(),
	}
}

type CreateProjectInput struct {
	Code        string  `json:"code" validate:"required,max=20"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status" validate:"omitempty,oneof=active completed suspended unknown"`
	LeadLabID   uint    `json:"lead_lab_id" validate:"required"`
	LabIDs      *[]uint `json:"lab_ids"`
}

type UpdateProjectInput struct {
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" validate:"omitempty,oneof=active completed suspended unknown"`
	LeadLabID   *uint   `json:"lead_lab_id"`
	LabIDs      *[]uint `json:"lab_ids"`
}

func (s *ProjectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	project := &model.Project{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		Status:      model.ProjectActive,
		LeadLabID:   input.LeadLabID,
	}
	if input.Status != "" {
		project.Status = model.ProjectStatus(input.Status)
	}
	if input.StartDate != "" {
		d := model.Date(input.StartDate)
		project.StartDate = &d
	}
	if input.EndDate != "" {
		d := model.Date(input.EndDate)
		project.EndDate = &d
	}
	if input.LabIDs != nil {
		labs, err := s.labRepo.FindByIDs(ctx, *input.LabIDs)
		if err != nil {
			return nil, err
		}
		project.Labs = labs
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, project.ID)
}

// Update applies only the supplied fields. lab_ids has set semantics: a
// supplied list replaces the full participating set (empty clears it),
// an omitted field leaves membership untouched.
func (s *ProjectService) Update(ctx context.Context, id uint, input UpdateProjectInput) (*model.Project, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Code != nil {
		project.Code = *input.Code
	}
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.StartDate != nil && *input.StartDate != "" {
		d := model.Date(*input.StartDate)
		project.StartDate = &d
	}
	if input.EndDate != nil && *input.EndDate != "" {
		d := model.Date(*input.EndDate)
		project.EndDate = &d
	}
	if input.Status != nil && *input.Status != "" {
		project.Status = model.ProjectStatus(*input.Status)
	}
	if input.LeadLabID != nil {
		project.LeadLabID = *input.LeadLabID
	}

	var labs *[]model.Lab
	if input.LabIDs != nil {
		found, err := s.labRepo.FindByIDs(ctx, *input.LabIDs)
		if err != nil {
			return nil, err
		}
		labs = &found
	}

	if err := s.repo.Update(ctx, project, labs); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
