package service

import (
	"context"
	"testing"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(t *testing.T, now time.Time) (*StatsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewLabRepository(db),
		func() time.Time { return now },
	)
	return svc, db
}

func recordActivity(t *testing.T, db *gorm.DB, activity *model.Activity) {
	t.Helper()
	require.NoError(t, repository.NewActivityRepository(db).Create(context.Background(), activity))
}

func TestStatsServiceDashboardWindow(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	svc, db := newStatsService(t, now)
	ctx := context.Background()

	lab := seedLab(t, db, "A")
	person := seedPersonnel(t, db, "EMP001")

	// 30 days before the anchor is inside the window, 31 is not.
	recordActivity(t, db, &model.Activity{
		PersonnelID: person.ID, LabID: lab.ID,
		ActivityDate: "2024-01-02", Hours: 5, ActivityType: model.ActivityOwn,
	})
	recordActivity(t, db, &model.Activity{
		PersonnelID: person.ID, LabID: lab.ID,
		ActivityDate: "2024-01-01", Hours: 7, ActivityType: model.ActivityOwn,
	})

	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, summary.TotalHours)
	assert.Equal(t, int64(1), summary.TotalLabs)
	assert.Equal(t, int64(1), summary.ActivePersonnel)
}

func TestStatsServiceConnectionsResolveNames(t *testing.T) {
	svc, db := newStatsService(t, time.Now().UTC())
	ctx := context.Background()

	labA := seedLab(t, db, "A")
	labB := seedLab(t, db, "B")
	person := seedPersonnel(t, db, "EMP001")

	recordActivity(t, db, &model.Activity{
		PersonnelID: person.ID, LabID: labA.ID,
		ActivityDate: "2024-01-05", Hours: 3,
		ActivityType: model.ActivitySupport, SupportedLabID: &labB.ID,
	})
	recordActivity(t, db, &model.Activity{
		PersonnelID: person.ID, LabID: labA.ID,
		ActivityDate: "2024-01-10", Hours: 2,
		ActivityType: model.ActivitySupport, SupportedLabID: &labB.ID,
	})

	rows, err := svc.Connections(ctx, repository.StatsFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lab A", rows[0].SupportingLab)
	assert.Equal(t, "Lab B", rows[0].SupportedLab)
	assert.Equal(t, 5.0, rows[0].TotalHours)
	assert.Equal(t, model.Date("2024-01-10"), rows[0].LastActivityDate)
}

func TestStatsServiceConnectionsEmpty(t *testing.T) {
	svc, _ := newStatsService(t, time.Now().UTC())

	rows, err := svc.Connections(context.Background(), repository.StatsFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
