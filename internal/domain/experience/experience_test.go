package experience

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewWorkExperience(t *testing.T) {
	owner := uuid.New()

	e, err := NewWorkExperience(owner, "Dev", "Acme", start, nil, nil, nil, 0)
	require.NoError(t, err)
	assert.True(t, e.IsCurrentPosition())

	end := start.AddDate(2, 0, 0)
	e, err = NewWorkExperience(owner, "Dev", "Acme", start, &end, nil, nil, 1)
	require.NoError(t, err)
	assert.False(t, e.IsCurrentPosition())

	r, err := e.DateRange()
	require.NoError(t, err)
	assert.False(t, r.IsOngoing())
}

func TestWorkExperienceRejects(t *testing.T) {
	owner := uuid.New()

	_, err := NewWorkExperience(owner, "", "Acme", start, nil, nil, nil, 0)
	assert.Error(t, err)

	_, err = NewWorkExperience(owner, "Dev", "", start, nil, nil, nil, 0)
	assert.Error(t, err)

	bad := start.AddDate(-1, 0, 0)
	_, err = NewWorkExperience(owner, "Dev", "Acme", start, &bad, nil, nil, 0)
	assert.Error(t, err)

	short := "too short"
	_, err = NewWorkExperience(owner, "Dev", "Acme", start, nil, &short, nil, 0)
	assert.Error(t, err)

	_, err = NewWorkExperience(owner, "Dev", "Acme", start, nil, nil, nil, -1)
	assert.Error(t, err)
}

func TestResponsibilities(t *testing.T) {
	owner := uuid.New()

	many := make([]string, 21)
	for i := range many {
		many[i] = "ship features"
	}
	_, err := NewWorkExperience(owner, "Dev", "Acme", start, nil, nil, many, 0)
	assert.Error(t, err)

	_, err = NewWorkExperience(owner, "Dev", "Acme", start, nil, nil, []string{""}, 0)
	assert.Error(t, err)

	_, err = NewWorkExperience(owner, "Dev", "Acme", start, nil, nil, []string{strings.Repeat("r", 501)}, 0)
	assert.Error(t, err)

	e, err := NewWorkExperience(owner, "Dev", "Acme", start, nil, nil, many[:20], 0)
	require.NoError(t, err)
	assert.Len(t, e.Responsibilities, 20)
}

func TestApplyUpdate(t *testing.T) {
	owner := uuid.New()
	end := start.AddDate(1, 0, 0)
	e, err := NewWorkExperience(owner, "Dev", "Acme", start, &end, nil, nil, 0)
	require.NoError(t, err)

	role := "Staff Engineer"
	require.NoError(t, e.Apply(Update{Role: &role, EndDateSet: true}))
	assert.Equal(t, "Staff Engineer", e.Role)
	assert.True(t, e.IsCurrentPosition())
}
