// internal/service/activity.go
package service

import (
	"context"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/go-playground/validator/v10"
)

// ActivityService records time entries. Entries are immutable once created;
// the only write path is Create, which also maintains the lab support
// summary inside the same transaction.
type ActivityService struct {
	repo     *repository.ActivityRepository
	validate *validator.Validate
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		repo:     repo,
		validate: newValidator(),
	}
}

type CreateActivityInput struct {
	PersonnelID    uint    `json:"personnel_id" validate:"required"`
	LabID          uint    `json:"lab_id" validate:"required"`
	ProjectID      *uint   `json:"project_id"`
	ActivityDate   string  `json:"activity_date" validate:"required,datetime=2006-01-02"`
	Hours          float64 `json:"hours" validate:"required,gt=0"`
	ActivityType   string  `json:"activity_type" validate:"omitempty,oneof=own support"`
	SupportedLabID *uint   `json:"supported_lab_id"`
	Description    string  `json:"description"`
}

func (s *ActivityService) Create(ctx context.Context, input CreateActivityInput) (*model.Activity, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		PersonnelID:    input.PersonnelID,
		LabID:          input.LabID,
		ProjectID:      input.ProjectID,
		ActivityDate:   model.Date(input.ActivityDate),
		Hours:          input.Hours,
		ActivityType:   model.ActivityOwn,
		SupportedLabID: input.SupportedLabID,
		Description:    input.Description,
	}
	if input.ActivityType != "" {
		activity.ActivityType = model.ActivityType(input.ActivityType)
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) List(ctx context.Context, filter repository.ActivityFilter) ([]*model.Activity, error) {
	return s.repo.FindAll(ctx, filter)
}
