// internal/service/personnel.go
package service

import (
	"context"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/go-playground/validator/v10"
)

type PersonnelService struct {
	repo     *repository.PersonnelRepository
	labRepo  *repository.LabRepository
	validate *validator.Validate
}

func NewPersonnelService(repo *repository.PersonnelRepository, labRepo *repository.LabRepository) *PersonnelService {
	return &PersonnelService{
		repo:     repo,
		labRepo:  labRepo,
		validate: newValidator(),
	}
}

type CreatePersonnelInput struct {
	EmployeeID string  `json:"employee_id" validate:"required,max=20"`
	Name       string  `json:"name" validate:"required,max=50"`
	Email      string  `json:"email" validate:"required,email,max=100"`
	MSTeamsID  *string `json:"ms_teams_id" validate:"omitempty,max=100"`
	Position   *string `json:"position" validate:"omitempty,max=50"`
	LabIDs     *[]uint `json:"lab_ids"`
}

type UpdatePersonnelInput struct {
	EmployeeID *string `json:"employee_id" validate:"omitempty,max=20"`
	Name       *string `json:"name" validate:"omitempty,max=50"`
	Email      *string `json:"email" validate:"omitempty,email,max=100"`
	MSTeamsID  *string `json:"ms_teams_id" validate:"omitempty,max=100"`
	Position   *string `json:"position" validate:"omitempty,max=50"`
	LabIDs     *[]uint `json:"lab_ids"`
}

func (s *PersonnelService) List(ctx context.Context) ([]*model.Personnel, error) {
	return s.repo.FindActive(ctx)
}

func (s *PersonnelService) Create(ctx context.Context, input CreatePersonnelInput) (*model.Personnel, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	person := &model.Personnel{
		EmployeeID: input.EmployeeID,
		Name:       input.Name,
		Email:      input.Email,
		MSTeamsID:  input.MSTeamsID,
		Position:   input.Position,
		IsActive:   true,
	}
	if input.LabIDs != nil {
		labs, err := s.labRepo.FindByIDs(ctx, *input.LabIDs)
		if err != nil {
			return nil, err
		}
		person.Labs = labs
	}

	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, person.ID)
}

// Update applies only the supplied fields; lab_ids follows the same set
// semantics as project membership.
func (s *PersonnelService) Update(ctx context.Context, id uint, input UpdatePersonnelInput) (*model.Personnel, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.EmployeeID != nil {
		person.EmployeeID = *input.EmployeeID
	}
	if input.Name != nil {
		person.Name = *input.Name
	}
	if input.Email != nil {
		person.Email = *input.Email
	}
	if input.MSTeamsID != nil {
		person.MSTeamsID = input.MSTeamsID
	}
	if input.Position != nil {
		person.Position = input.Position
	}

	var labs *[]model.Lab
	if input.LabIDs != nil {
		found, err := s.labRepo.FindByIDs(ctx, *input.LabIDs)
		if err != nil {
			return nil, err
		}
		labs = &found
	}

	if err := s.repo.Update(ctx, person, labs); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *PersonnelService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
