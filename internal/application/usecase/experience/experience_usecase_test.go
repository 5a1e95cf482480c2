package experience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/ordering/orderingtest"
	"portfolio-api/internal/application/service"
	experienceUC "portfolio-api/internal/application/usecase/experience"
	"portfolio-api/internal/domain/experience"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

func newExperienceUC() *experienceUC.ExperienceUseCase {
	repo := orderingtest.NewRepo[*experience.WorkExperience](nil)
	return experienceUC.NewExperienceUseCase(repo, ordering.NewLocks(), service.NopInvalidator{}, logger.NewNop())
}

func createInput(profileID uuid.UUID, role string, orderIndex int) experienceUC.CreateExperienceInput {
	return experienceUC.CreateExperienceInput{
		ProfileID:  profileID,
		Role:       role,
		Company:    "Initech",
		StartDate:  time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		OrderIndex: orderIndex,
	}
}

func TestCreateExperience_OrderIndexTaken(t *testing.T) {
	uc := newExperienceUC()
	profileID := uuid.New()

	_, err := uc.CreateExperience(context.Background(), createInput(profileID, "Engineer", 0))
	require.NoError(t, err)

	_, err = uc.CreateExperience(context.Background(), createInput(profileID, "Senior Engineer", 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrBusinessRule))

	// The slot is free for another profile.
	_, err = uc.CreateExperience(context.Background(), createInput(uuid.New(), "Engineer", 0))
	require.NoError(t, err)
}

func TestCreateExperience_NegativeOrderIndex(t *testing.T) {
	uc := newExperienceUC()

	_, err := uc.CreateExperience(context.Background(), createInput(uuid.New(), "Engineer", -1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestReorderExperience_FreesOldSlot(t *testing.T) {
	uc := newExperienceUC()
	profileID := uuid.New()

	first, err := uc.CreateExperience(context.Background(), createInput(profileID, "Engineer", 0))
	require.NoError(t, err)
	_, err = uc.CreateExperience(context.Background(), createInput(profileID, "Senior Engineer", 1))
	require.NoError(t, err)

	require.NoError(t, uc.ReorderExperience(context.Background(), profileID, first.ID, 1))

	listed, err := uc.ListExperiences(context.Background(), profileID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Senior Engineer", listed[0].Role)
	assert.Equal(t, "Engineer", listed[1].Role)

	// Index 2 never existed, so both slots 0 and 1 stay occupied.
	_, err = uc.CreateExperience(context.Background(), createInput(profileID, "Staff Engineer", 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrBusinessRule))
}

func TestUpdateExperience_ClearEndDate(t *testing.T) {
	uc := newExperienceUC()
	profileID := uuid.New()

	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	in := createInput(profileID, "Engineer", 0)
	in.EndDate = &end
	created, err := uc.CreateExperience(context.Background(), in)
	require.NoError(t, err)
	require.False(t, created.IsCurrentPosition())

	updated, err := uc.UpdateExperience(context.Background(), experienceUC.UpdateExperienceInput{
		ID:     created.ID,
		Update: experience.Update{EndDateSet: true, EndDate: nil},
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCurrentPosition())
}

func TestUpdateExperience_Missing(t *testing.T) {
	uc := newExperienceUC()

	role := "Engineer"
	_, err := uc.UpdateExperience(context.Background(), experienceUC.UpdateExperienceInput{
		ID:     uuid.New(),
		Update: experience.Update{Role: &role},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
