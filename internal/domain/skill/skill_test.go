package skill

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/apperror"
)

func TestNewSkill(t *testing.T) {
	owner := uuid.New()

	s, err := NewSkill(owner, "Python", "backend", 0, "Expert")
	require.NoError(t, err)
	assert.Equal(t, owner, s.ProfileID)
	require.NotNil(t, s.Level)
	assert.Equal(t, value.LevelExpert, *s.Level)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	// blank level means no level
	s, err = NewSkill(owner, "Leadership", "soft skills", 1, "  ")
	require.NoError(t, err)
	assert.Nil(t, s.Level)
}

func TestNewSkillRejectsInvalidFields(t *testing.T) {
	owner := uuid.New()

	_, err := NewSkill(owner, "", "backend", 0, "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = NewSkill(owner, "   ", "backend", 0, "")
	assert.Error(t, err)

	_, err = NewSkill(owner, strings.Repeat("x", 51), "backend", 0, "")
	assert.Error(t, err)

	_, err = NewSkill(owner, "Python", "", 0, "")
	assert.Error(t, err)

	_, err = NewSkill(owner, "Python", "backend", -1, "")
	assert.Error(t, err)

	_, err = NewSkill(owner, "Python", "backend", 0, "ninja")
	assert.Error(t, err)

	_, err = NewSkill(uuid.Nil, "Python", "backend", 0, "")
	assert.Error(t, err)

	// boundary: a 50-char name is fine
	_, err = NewSkill(owner, strings.Repeat("x", 50), "backend", 0, "")
	assert.NoError(t, err)
}

func TestUpdateInfo(t *testing.T) {
	s, err := NewSkill(uuid.New(), "Python", "backend", 2, "advanced")
	require.NoError(t, err)
	created := s.UpdatedAt

	name := "Go"
	clear := ""
	require.NoError(t, s.UpdateInfo(&name, nil, &clear))
	assert.Equal(t, "Go", s.Name)
	assert.Equal(t, "backend", s.Category)
	assert.Nil(t, s.Level)
	assert.True(t, s.UpdatedAt.After(created) || s.UpdatedAt.Equal(created))
	assert.Equal(t, 2, s.OrderIndex)

	bad := ""
	err = s.UpdateInfo(&bad, nil, nil)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}
