package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/futurelabs/labtrack/internal/sqlitetest"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	db, err := gorm.Open(sqlitetest.Open("svc_"+name), &gorm.Config{
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

func seedLab(t *testing.T, db *gorm.DB, code string) *model.Lab {
	t.Helper()
	lab := &model.Lab{Code: code, Name: "Lab " + code, IsActive: true}
	require.NoError(t, repository.NewLabRepository(db).Create(context.Background(), lab))
	return lab
}

func seedPersonnel(t *testing.T, db *gorm.DB, employeeID string) *model.Personnel {
	t.Helper()
	person := &model.Personnel{
		EmployeeID: employeeID,
		Name:       "Person " + employeeID,
		Email:      employeeID + "@example.com",
		IsActive:   true,
	}
	require.NoError(t, repository.NewPersonnelRepository(db).Create(context.Background(), person))
	return person
}
