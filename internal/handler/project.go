// internal/handler/project.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/service"
)

type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectResponse struct {
	ID          uint                `json:"id"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	StartDate   *model.Date         `json:"start_date"`
	EndDate     *model.Date         `json:"end_date"`
	Status      model.ProjectStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	LeadLab     *labRef             `json:"lead_lab"`
	Labs        []labRef            `json:"labs"`
}

func toProjectResponse(project *model.Project) projectResponse {
	resp := projectResponse{
		ID:          project.ID,
		Code:        project.Code,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		Labs:        labRefs(project.Labs),
	}
	if project.LeadLab.ID != 0 {
		resp.LeadLab = &labRef{ID: project.LeadLab.ID, Name: project.LeadLab.Name}
	}
	return resp
}

// List returns all projects with lead and member labs resolved.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		resp = append(resp, toProjectResponse(project))
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var input service.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
