package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/sqlitetest"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with foreign key
// enforcement on, mirroring the production connection settings.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	db, err := gorm.Open(sqlitetest.Open(name), &gorm.Config{
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
	return db
}

func createLab(t *testing.T, db *gorm.DB, code string) *model.Lab {
	t.Helper()
	lab := &model.Lab{Code: code, Name: "Lab " + code, IsActive: true}
	require.NoError(t, NewLabRepository(db).Create(context.Background(), lab))
	return lab
}

func createPersonnel(t *testing.T, db *gorm.DB, employeeID string) *model.Personnel {
	t.Helper()
	person := &model.Personnel{
		EmployeeID: employeeID,
		Name:       "Person " + employeeID,
		Email:      employeeID + "@example.com",
		IsActive:   true,
	}
	require.NoError(t, NewPersonnelRepository(db).Create(context.Background(), person))
	return person
}

func createProject(t *testing.T, db *gorm.DB, code string, leadLabID uint, labs ...model.Lab) *model.Project {
	t.Helper()
	project := &model.Project{
		Code:      code,
		Name:      "Project " + code,
		Status:    model.ProjectActive,
		LeadLabID: leadLabID,
		Labs:      labs,
	}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), project))
	return project
}

func createActivity(t *testing.T, db *gorm.DB, activity *model.Activity) *model.Activity {
	t.Helper()
	require.NoError(t, NewActivityRepository(db).Create(context.Background(), activity))
	return activity
}
