package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/futurelabs/labtrack/internal/domain"
	"github.com/futurelabs/labtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonnelRepositoryDuplicateEmployeeID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonnelRepository(db)
	ctx := context.Background()

	createPersonnel(t, db, "EMP001")

	err := repo.Create(ctx, &model.Personnel{
		EmployeeID: "EMP001",
		Name:       "Duplicate",
		Email:      "other@example.com",
		IsActive:   true,
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestPersonnelRepositoryLabMembership(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonnelRepository(db)
	ctx := context.Background()

	labA := createLab(t, db, "A")
	labB := createLab(t, db, "B")

	person := &model.Personnel{
		EmployeeID: "EMP001",
		Name:       "Dana",
		Email:      "dana@example.com",
		IsActive:   true,
		Labs:       []model.Lab{*labA},
	}
	require.NoError(t, repo.Create(ctx, person))

	found, err := repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A"}, labCodes(found.Labs))

	replacement := []model.Lab{*labB}
	require.NoError(t, repo.Update(ctx, found, &replacement))
	found, err = repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B"}, labCodes(found.Labs))
}

func TestPersonnelRepositoryDeleteClearsMembership(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonnelRepository(db)
	ctx := context.Background()

	labA := createLab(t, db, "A")
	person := &model.Personnel{
		EmployeeID: "EMP001",
		Name:       "Dana",
		Email:      "dana@example.com",
		IsActive:   true,
		Labs:       []model.Lab{*labA},
	}
	require.NoError(t, repo.Create(ctx, person))

	require.NoError(t, repo.Delete(ctx, person.ID))

	var joins int64
	require.NoError(t, db.Table("personnel_labs").Count(&joins).Error)
	assert.Equal(t, int64(0), joins)
}

func TestPersonnelRepositoryDeleteRestrictedByActivity(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonnelRepository(db)
	ctx := context.Background()

	labA := createLab(t, db, "A")
	person := createPersonnel(t, db, "EMP001")
	createActivity(t, db, &model.Activity{
		PersonnelID:  person.ID,
		LabID:        labA.ID,
		ActivityDate: "2024-01-10",
		Hours:        1,
		ActivityType: model.ActivityOwn,
	})

	err := repo.Delete(ctx, person.ID)
	var integrity *domain.IntegrityError
	require.ErrorAs(t, err, &integrity)
}

func TestPersonnelRepositoryDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonnelRepository(db)

	err := repo.Delete(context.Background(), 999)
	assert.True(t, errors.Is(err, domain.ErrPersonnelNotFound))
}

func TestPersonnelRepositoryFindActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonnelRepository(db)
	ctx := context.Background()

	createPersonnel(t, db, "EMP001")
	inactive := createPersonnel(t, db, "EMP002")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	people, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "EMP001", people[0].EmployeeID)
}
