package project

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/pkg/apperror"
)

var start = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDescriptionFloorWithoutLink(t *testing.T) {
	owner := uuid.New()

	_, err := NewProject(owner, "T", "short", start, nil, nil, nil, nil, 0)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "description", appErr.Field)

	// 100 chars is enough without a link
	_, err = NewProject(owner, "T", strings.Repeat("d", 100), start, nil, nil, nil, nil, 0)
	assert.NoError(t, err)

	// 99 is not
	_, err = NewProject(owner, "T", strings.Repeat("d", 99), start, nil, nil, nil, nil, 0)
	assert.Error(t, err)
}

func TestDescriptionFloorRelaxedWithLink(t *testing.T) {
	owner := uuid.New()
	repo := "https://example.com/r"

	p, err := NewProject(owner, "T", strings.Repeat("d", 20), start, nil, nil, &repo, nil, 0)
	require.NoError(t, err)
	assert.True(t, p.HasLink())

	// even with a link, 10 chars is the floor
	_, err = NewProject(owner, "T", "123456789", start, nil, nil, &repo, nil, 0)
	assert.Error(t, err)
}

func TestDateAndURLRules(t *testing.T) {
	owner := uuid.New()
	desc := strings.Repeat("d", 100)

	end := start.AddDate(-1, 0, 0)
	_, err := NewProject(owner, "T", desc, start, &end, nil, nil, nil, 0)
	assert.Error(t, err)

	badURL := "not a url"
	_, err = NewProject(owner, "T", desc, start, nil, &badURL, nil, nil, 0)
	assert.Error(t, err)

	ftp := "ftp://example.com/x"
	_, err = NewProject(owner, "T", desc, start, nil, nil, &ftp, nil, 0)
	assert.Error(t, err)
}

func TestTechnologyRules(t *testing.T) {
	owner := uuid.New()
	desc := strings.Repeat("d", 100)

	many := make([]string, 21)
	for i := range many {
		many[i] = "go"
	}
	_, err := NewProject(owner, "T", desc, start, nil, nil, nil, many, 0)
	assert.Error(t, err)

	_, err = NewProject(owner, "T", desc, start, nil, nil, nil, []string{"go", " "}, 0)
	assert.Error(t, err)

	p, err := NewProject(owner, "T", desc, start, nil, nil, nil, many[:20], 0)
	require.NoError(t, err)
	assert.Len(t, p.Technologies, 20)
}

func TestApply(t *testing.T) {
	owner := uuid.New()
	p, err := NewProject(owner, "T", strings.Repeat("d", 100), start, nil, nil, nil, nil, 3)
	require.NoError(t, err)
	assert.True(t, p.IsOngoing())

	end := start.AddDate(1, 0, 0)
	require.NoError(t, p.Apply(Update{EndDate: &end, EndDateSet: true}))
	assert.False(t, p.IsOngoing())

	// clearing the end date makes it ongoing again
	require.NoError(t, p.Apply(Update{EndDateSet: true}))
	assert.True(t, p.IsOngoing())

	// shrinking the description below the floor fails and keeps state valid
	short := "tiny"
	err = p.Apply(Update{Description: &short})
	assert.Error(t, err)
}
