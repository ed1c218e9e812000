// internal/service/lab.go
package service

import (
	"context"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/go-playground/validator/v10"
)

type LabService struct {
	repo     *repository.LabRepository
	validate *validator.Validate
}

func NewLabService(repo *repository.LabRepository) *LabService {
	return &LabService{
		repo:     repo,
		validate: newValidator(),
	}
}

type CreateLabInput struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateLabInput struct {
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

func (s *LabService) List(ctx context.Context) ([]*model.Lab, error) {
	return s.repo.FindActive(ctx)
}

func (s *LabService) Create(ctx context.Context, input CreateLabInput) (*model.Lab, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	lab := &model.Lab{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, lab); err != nil {
		return nil, err
	}
	return lab, nil
}

// Update applies only the supplied fields.
func (s *LabService) Update(ctx context.Context, id uint, input UpdateLabInput) (*model.Lab, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	lab, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Code != nil {
		lab.Code = *input.Code
	}
	if input.Name != nil {
		lab.Name = *input.Name
	}
	if input.Description != nil {
		lab.Description = *input.Description
	}

	if err := s.repo.Update(ctx, lab); err != nil {
		return nil, err
	}
	return lab, nil
}

func (s *LabService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
