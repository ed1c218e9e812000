package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/futurelabs/labtrack/internal/service"
	"github.com/futurelabs/labtrack/internal/sqlitetest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the full stack over an in-memory database, the same
// way cmd/api does against postgres.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	db, err := gorm.Open(sqlitetest.Open("api_"+name), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	labRepo := repository.NewLabRepository(db)
	return Routes(
		NewLabHandler(service.NewLabService(labRepo)),
		NewProjectHandler(service.NewProjectService(repository.NewProjectRepository(db), labRepo)),
		NewPersonnelHandler(service.NewPersonnelService(repository.NewPersonnelRepository(db), labRepo)),
		NewActivityHandler(service.NewActivityService(repository.NewActivityRepository(db))),
		NewCostHandler(service.NewCostService(repository.NewCostRepository(db))),
		NewStatsHandler(service.NewStatsService(repository.NewStatsRepository(db), labRepo, nil)),
	)
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func createLabRequest(t *testing.T, router chi.Router, code, name string) uint {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/labs", map[string]string{"code": code, "name": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var lab model.Lab
	decode(t, rec, &lab)
	return lab.ID
}

func createPersonnelRequest(t *testing.T, router chi.Router, employeeID string, labIDs ...uint) uint {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/personnel", map[string]interface{}{
		"employee_id": employeeID,
		"name":        "Person " + employeeID,
		"email":       employeeID + "@example.com",
		"lab_ids":     labIDs,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &resp)
	return resp.ID
}

func TestLabLifecycle(t *testing.T) {
	router := newTestRouter(t)

	id := createLabRequest(t, router, "AFL", "Advanced Fabrication Lab")

	rec := doJSON(t, router, http.MethodGet, "/labs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var labs []model.Lab
	decode(t, rec, &labs)
	require.Len(t, labs, 1)
	assert.Equal(t, "AFL", labs[0].Code)
	assert.True(t, labs[0].IsActive)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/labs/%d", id), map[string]string{"name": "Fabrication"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Lab
	decode(t, rec, &updated)
	assert.Equal(t, "Fabrication", updated.Name)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/labs/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/labs", nil)
	decode(t, rec, &labs)
	assert.Empty(t, labs)
}

func TestLabCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/labs", map[string]string{"name": "No Code"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	decode(t, rec, &resp)
	assert.Equal(t, []string{"code"}, resp.Details)
}

func TestLabCreateDuplicateCode(t *testing.T) {
	router := newTestRouter(t)

	createLabRequest(t, router, "AFL", "First")
	rec := doJSON(t, router, http.MethodPost, "/labs", map[string]string{"code": "AFL", "name": "Second"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLabUpdateMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/labs/999", map[string]string{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLabDeleteBadID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/labs/zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSupportActivityFlow(t *testing.T) {
	router := newTestRouter(t)

	labA := createLabRequest(t, router, "A", "Lab A")
	labB := createLabRequest(t, router, "B", "Lab B")
	person := createPersonnelRequest(t, router, "EMP001", labA)

	for _, entry := range []struct {
		date  string
		hours float64
	}{
		{"2024-01-05", 3},
		{"2024-01-10", 2},
	} {
		rec := doJSON(t, router, http.MethodPost, "/activities", map[string]interface{}{
			"personnel_id":     person,
			"lab_id":           labA,
			"activity_date":    entry.date,
			"hours":            entry.hours,
			"activity_type":    "support",
			"supported_lab_id": labB,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, "/lab-connections", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []service.ConnectionRow
	decode(t, rec, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lab A", rows[0].SupportingLab)
	assert.Equal(t, "Lab B", rows[0].SupportedLab)
	assert.Equal(t, 5.0, rows[0].TotalHours)
	assert.Equal(t, model.Date("2024-01-10"), rows[0].LastActivityDate)
}

func TestActivityListFilters(t *testing.T) {
	router := newTestRouter(t)

	labA := createLabRequest(t, router, "A", "Lab A")
	labB := createLabRequest(t, router, "B", "Lab B")
	person := createPersonnelRequest(t, router, "EMP001", labA)

	for _, entry := range []struct {
		lab  uint
		date string
	}{
		{labA, "2024-01-05"},
		{labA, "2024-02-05"},
		{labB, "2024-01-20"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/activities", map[string]interface{}{
			"personnel_id":  person,
			"lab_id":        entry.lab,
			"activity_date": entry.date,
			"hours":         1,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/activities?start_date=2024-01-01&end_date=2024-01-31&lab_id=%d", labA), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var activities []activityResponse
	decode(t, rec, &activities)
	require.Len(t, activities, 1)
	assert.Equal(t, model.Date("2024-01-05"), activities[0].ActivityDate)
	assert.Equal(t, "Person EMP001", activities[0].PersonnelName)
	assert.Equal(t, unclassifiedProject, activities[0].ProjectName)

	rec = doJSON(t, router, http.MethodGet, "/activities?start_date=notadate", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilterRejectsZeroIDs(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/activities?lab_id=0",
		"/costs?project_id=0",
		"/costs?lab_id=0",
		"/lab-connections?project_id=0",
	} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestActivityCreateUnknownPersonnel(t *testing.T) {
	router := newTestRouter(t)

	lab := createLabRequest(t, router, "A", "Lab A")

	rec := doJSON(t, router, http.MethodPost, "/activities", map[string]interface{}{
		"personnel_id":  999,
		"lab_id":        lab,
		"activity_date": "2024-01-05",
		"hours":         1,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCostCreateAndList(t *testing.T) {
	router := newTestRouter(t)

	lab := createLabRequest(t, router, "A", "Lab A")

	rec := doJSON(t, router, http.MethodPost, "/costs", map[string]interface{}{
		"lab_id":    lab,
		"cost_date": "2024-01-10",
		"amount":    125.50,
		"cost_type": "actual",
		"category":  "equipment",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created costResponse
	decode(t, rec, &created)
	assert.InDelta(t, 125.50, created.Amount, 0.001)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/costs?lab_id=%d", lab), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var costs []costResponse
	decode(t, rec, &costs)
	require.Len(t, costs, 1)
	assert.Equal(t, model.Date("2024-01-10"), costs[0].CostDate)

	rec = doJSON(t, router, http.MethodGet, "/costs?lab_id=999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &costs)
	assert.Empty(t, costs)
}

func TestDashboard(t *testing.T) {
	router := newTestRouter(t)

	labA := createLabRequest(t, router, "A", "Lab A")
	createLabRequest(t, router, "B", "Lab B")
	person := createPersonnelRequest(t, router, "EMP001", labA)

	// A recent activity lands inside the trailing window.
	rec := doJSON(t, router, http.MethodPost, "/activities", map[string]interface{}{
		"personnel_id":  person,
		"lab_id":        labA,
		"activity_date": time.Now().UTC().Format(time.DateOnly),
		"hours":         4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dash dashboardResponse
	decode(t, rec, &dash)
	assert.Equal(t, int64(2), dash.TotalLabs)
	assert.Equal(t, int64(1), dash.ActivePersonnel)
	assert.Equal(t, 4.0, dash.TotalHours)
}

func TestLabStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	lab := createLabRequest(t, router, "A", "Lab A")
	alice := createPersonnelRequest(t, router, "EMP001", lab)
	bob := createPersonnelRequest(t, router, "EMP002", lab)

	for _, entry := range []struct {
		person uint
		hours  float64
	}{
		{alice, 3},
		{alice, 2},
		{bob, 1},
	} {
		rec := doJSON(t, router, http.MethodPost, "/activities", map[string]interface{}{
			"personnel_id":  entry.person,
			"lab_id":        lab,
			"activity_date": "2024-01-10",
			"hours":         entry.hours,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/labs/%d/stats", lab), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats labStatsResponse
	decode(t, rec, &stats)
	assert.Equal(t, 6.0, stats.TotalHours)
	assert.Equal(t, int64(2), stats.ParticipantCount)

	// A window that misses everything zeroes the totals.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/labs/%d/stats?start_date=2025-01-01", lab), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &stats)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.ParticipantCount)
}

func TestProjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	labA := createLabRequest(t, router, "A", "Lab A")
	labB := createLabRequest(t, router, "B", "Lab B")

	rec := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
		"code":        "PRJ001",
		"name":        "Sensor Platform",
		"start_date":  "2024-01-01",
		"lead_lab_id": labA,
		"lab_ids":     []uint{labA, labB},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created projectResponse
	decode(t, rec, &created)
	assert.Equal(t, model.ProjectActive, created.Status)
	require.NotNil(t, created.LeadLab)
	assert.Equal(t, "Lab A", created.LeadLab.Name)
	assert.Len(t, created.Labs, 2)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/projects/%d", created.ID), map[string]interface{}{
		"status":  "completed",
		"lab_ids": []uint{},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated projectResponse
	decode(t, rec, &updated)
	assert.Equal(t, model.ProjectCompleted, updated.Status)
	assert.Empty(t, updated.Labs)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projects/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPersonnelDeleteRestricted(t *testing.T) {
	router := newTestRouter(t)

	lab := createLabRequest(t, router, "A", "Lab A")
	person := createPersonnelRequest(t, router, "EMP001", lab)

	rec := doJSON(t, router, http.MethodPost, "/activities", map[string]interface{}{
		"personnel_id":  person,
		"lab_id":        lab,
		"activity_date": "2024-01-10",
		"hours":         1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/personnel/%d", person), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
