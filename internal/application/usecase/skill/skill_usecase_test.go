package skill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/ordering/orderingtest"
	"portfolio-api/internal/application/service"
	skillUC "portfolio-api/internal/application/usecase/skill"
	"portfolio-api/internal/domain/skill"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

func newSkillUC() (*skillUC.SkillUseCase, *orderingtest.Repo[*skill.Skill]) {
	repo := orderingtest.NewRepo[*skill.Skill](func(s *skill.Skill) string { return s.Name })
	uc := skillUC.NewSkillUseCase(repo, ordering.NewLocks(), service.NopInvalidator{}, logger.NewNop())
	return uc, repo
}

func TestCreateSkill_DuplicateName(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()

	_, err := uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "Go", Category: "backend", OrderIndex: 0,
	})
	require.NoError(t, err)

	// Duplicate detection folds case.
	_, err = uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "go", Category: "backend", OrderIndex: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestCreateSkill_OrderIndexMayCollide(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()

	_, err := uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "Go", Category: "backend", OrderIndex: 0,
	})
	require.NoError(t, err)

	// Same display slot, different name: allowed for skills.
	_, err = uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "Rust", Category: "backend", OrderIndex: 0,
	})
	require.NoError(t, err)

	all, err := uc.ListSkills(context.Background(), profileID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateSkill_SameNameOtherProfile(t *testing.T) {
	uc, _ := newSkillUC()

	_, err := uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: uuid.New(), Name: "Go", Category: "backend",
	})
	require.NoError(t, err)

	_, err = uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: uuid.New(), Name: "Go", Category: "backend",
	})
	require.NoError(t, err)
}

func TestUpdateSkill_RenameConflict(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()

	s1, err := uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "Go", Category: "backend", OrderIndex: 0,
	})
	require.NoError(t, err)
	_, err = uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "Rust", Category: "backend", OrderIndex: 1,
	})
	require.NoError(t, err)

	taken := "Rust"
	_, err = uc.UpdateSkill(context.Background(), skillUC.UpdateSkillInput{ID: s1.ID, Name: &taken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	// Renaming to its own name is not a conflict.
	same := "Go"
	level := "expert"
	updated, err := uc.UpdateSkill(context.Background(), skillUC.UpdateSkillInput{ID: s1.ID, Name: &same, Level: &level})
	require.NoError(t, err)
	require.NotNil(t, updated.Level)
	assert.Equal(t, "expert", updated.Level.String())
}

func TestUpdateSkill_ClearLevel(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()

	s, err := uc.CreateSkill(context.Background(), skillUC.CreateSkillInput{
		ProfileID: profileID, Name: "Go", Category: "backend", Level: "advanced",
	})
	require.NoError(t, err)
	require.NotNil(t, s.Level)

	blank := ""
	updated, err := uc.UpdateSkill(context.Background(), skillUC.UpdateSkillInput{ID: s.ID, Level: &blank})
	require.NoError(t, err)
	assert.Nil(t, updated.Level)
}

func seedSkills(t *testing.T, uc *skillUC.SkillUseCase, profileID uuid.UUID) {
	t.Helper()
	for i, in := range []skillUC.CreateSkillInput{
		{Name: "Go", Category: "backend", Level: "expert"},
		{Name: "Rust", Category: "backend", Level: "intermediate"},
		{Name: "React", Category: "frontend", Level: "expert"},
		{Name: "Figma", Category: "design"},
	} {
		in.ProfileID = profileID
		in.OrderIndex = i
		_, err := uc.CreateSkill(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestGroupSkillsByCategory(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()
	seedSkills(t, uc, profileID)

	grouped, err := uc.GroupSkillsByCategory(context.Background(), profileID)
	require.NoError(t, err)
	require.Len(t, grouped, 3)
	assert.Len(t, grouped["backend"], 2)
	assert.Len(t, grouped["frontend"], 1)
	assert.Len(t, grouped["design"], 1)
	// Display order survives inside each bucket.
	assert.Equal(t, "Go", grouped["backend"][0].Name)
	assert.Equal(t, "Rust", grouped["backend"][1].Name)
}

func TestGroupSkillsByLevel(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()
	seedSkills(t, uc, profileID)

	grouped, err := uc.GroupSkillsByLevel(context.Background(), profileID)
	require.NoError(t, err)
	assert.Len(t, grouped["expert"], 2)
	assert.Len(t, grouped["intermediate"], 1)
	// An unset level buckets under "none".
	require.Len(t, grouped["none"], 1)
	assert.Equal(t, "Figma", grouped["none"][0].Name)
}

func TestSkillStats(t *testing.T) {
	uc, _ := newSkillUC()
	profileID := uuid.New()
	seedSkills(t, uc, profileID)

	stats, err := uc.Stats(context.Background(), profileID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[string]int{"backend": 2, "frontend": 1, "design": 1}, stats.ByCategory)
	assert.Equal(t, map[string]int{"expert": 2, "intermediate": 1, "none": 1}, stats.ByLevel)

	// An empty collection still yields a usable summary.
	empty, err := uc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.ByCategory)
}

func TestDeleteSkill_Missing(t *testing.T) {
	uc, _ := newSkillUC()

	err := uc.DeleteSkill(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
