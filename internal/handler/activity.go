// internal/handler/activity.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/futurelabs/labtrack/internal/service"
)

// unclassifiedProject is the display name for activities without a project.
const unclassifiedProject = "Unclassified"

type ActivityHandler struct {
	service *service.ActivityService
}

func NewActivityHandler(service *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityResponse struct {
	ID               uint               `json:"id"`
	PersonnelID      uint               `json:"personnel_id"`
	LabID            uint               `json:"lab_id"`
	ProjectID        *uint              `json:"project_id"`
	PersonnelName    string             `json:"personnel_name"`
	LabName          string             `json:"lab_name"`
	ProjectName      string             `json:"project_name"`
	ActivityDate     model.Date         `json:"activity_date"`
	Hours            float64            `json:"hours"`
	ActivityType     model.ActivityType `json:"activity_type"`
	SupportedLabName *string            `json:"supported_lab_name"`
	Description      string             `json:"description"`
}

func toActivityResponse(activity *model.Activity) activityResponse {
	resp := activityResponse{
		ID:            activity.ID,
		PersonnelID:   activity.PersonnelID,
		LabID:         activity.LabID,
		ProjectID:     activity.ProjectID,
		PersonnelName: activity.Personnel.Name,
		LabName:       activity.Lab.Name,
		ProjectName:   unclassifiedProject,
		ActivityDate:  activity.ActivityDate,
		Hours:         activity.Hours,
		ActivityType:  activity.ActivityType,
		Description:   activity.Description,
	}
	if activity.Project != nil {
		resp.ProjectName = activity.Project.Name
	}
	if activity.SupportedLab != nil {
		resp.SupportedLabName = &activity.SupportedLab.Name
	}
	return resp
}

// List returns activities filtered by optional start_date, end_date and
// lab_id query parameters.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.ActivityFilter
	var err error

	if filter.StartDate, err = dateQuery(r, "start_date"); err != nil {
		handleError(w, err)
		return
	}
	if filter.EndDate, err = dateQuery(r, "end_date"); err != nil {
		handleError(w, err)
		return
	}
	if filter.LabID, err = uintQuery(r, "lab_id"); err != nil {
		handleError(w, err)
		return
	}

	activities, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for _, activity := range activities {
		resp = append(resp, toActivityResponse(activity))
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	activity, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, activity)
}
