// internal/handler/stats.go
package handler

import (
	"net/http"

	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/futurelabs/labtrack/internal/service"
)

type StatsHandler struct {
	service *service.StatsService
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type dashboardResponse struct {
	TotalLabs       int64   `json:"total_labs"`
	TotalProjects   int64   `json:"total_projects"`
	TotalHours      float64 `json:"total_hours"`
	ActivePersonnel int64   `json:"active_personnel"`
	TotalCost       float64 `json:"total_cost"`
}

// Dashboard returns org-wide totals over the trailing 30-day window.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Dashboard(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, dashboardResponse{
		TotalLabs:       summary.TotalLabs,
		TotalProjects:   summary.TotalProjects,
		TotalHours:      summary.TotalHours,
		ActivePersonnel: summary.ActivePersonnel,
		TotalCost:       summary.TotalCost,
	})
}

type labStatsResponse struct {
	TotalHours       float64 `json:"total_hours"`
	ParticipantCount int64   `json:"participant_count"`
	TotalCost        float64 `json:"total_cost"`
}

// LabStats returns one lab's totals under optional start_date, end_date and
// project_id filters.
func (h *StatsHandler) LabStats(w http.ResponseWriter, r *http.Request) {
	labID, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	filter, err := statsFilter(r)
	if err != nil {
		handleError(w, err)
		return
	}

	stats, err := h.service.LabStats(r.Context(), labID, filter)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, labStatsResponse{
		TotalHours:       stats.TotalHours,
		ParticipantCount: stats.ParticipantCount,
		TotalCost:        stats.TotalCost,
	})
}

// Connections returns the recomputed inter-lab support matrix.
func (h *StatsHandler) Connections(w http.ResponseWriter, r *http.Request) {
	filter, err := statsFilter(r)
	if err != nil {
		handleError(w, err)
		return
	}

	rows, err := h.service.Connections(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func statsFilter(r *http.Request) (repository.StatsFilter, error) {
	var filter repository.StatsFilter
	var err error

	if filter.StartDate, err = dateQuery(r, "start_date"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = dateQuery(r, "end_date"); err != nil {
		return filter, err
	}
	if filter.ProjectID, err = uintQuery(r, "project_id"); err != nil {
		return filter, err
	}
	return filter, nil
}
