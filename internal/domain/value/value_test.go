package value

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/pkg/apperror"
)

func TestNewEmail(t *testing.T) {
	e, err := NewEmail("  John.Doe@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", e.String())
	assert.Equal(t, "john.doe", e.LocalPart())
	assert.Equal(t, "example.com", e.Domain())

	_, err = NewEmail("")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = NewEmail("not-an-email")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = NewEmail("missing@tld")
	assert.Error(t, err)
}

func TestNewPhone(t *testing.T) {
	p, err := NewPhone("+34 612-345-678")
	require.NoError(t, err)
	assert.Equal(t, "34612345678", p.Digits())

	_, err = NewPhone("call me maybe")
	assert.Error(t, err)

	_, err = NewPhone("   ")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	start := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, &end)
	require.NoError(t, err)
	assert.False(t, r.IsOngoing())
	assert.Equal(t, 1032, r.DurationDays())
	assert.True(t, r.Contains(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(start.AddDate(0, 0, -1)))

	ongoing, err := Ongoing(start)
	require.NoError(t, err)
	assert.True(t, ongoing.IsOngoing())
	assert.Equal(t, -1, ongoing.DurationDays())
	assert.True(t, ongoing.Contains(time.Now()))

	// end before start
	bad := time.Date(2019, 6, 30, 0, 0, 0, 0, time.UTC)
	_, err = NewDateRange(start, &bad)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	// end equal to start is also rejected
	_, err = NewDateRange(start, &start)
	assert.Error(t, err)

	_, err = NewDateRange(time.Time{}, nil)
	assert.Error(t, err)
}

func TestDateRangeOverlaps(t *testing.T) {
	d := func(y, m, day int) time.Time { return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC) }
	mk := func(start time.Time, end *time.Time) DateRange {
		r, err := NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}
	e1 := d(2021, 1, 1)
	e2 := d(2022, 1, 1)

	a := mk(d(2020, 1, 1), &e1)
	b := mk(d(2020, 6, 1), &e2)
	c := mk(d(2021, 6, 1), nil)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.True(t, b.Overlaps(c))
}

func TestParseSkillLevel(t *testing.T) {
	l, err := ParseSkillLevel("  Expert ")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, LevelExpert, *l)
	assert.True(t, l.AtLeast(LevelAdvanced))

	l, err = ParseSkillLevel("   ")
	require.NoError(t, err)
	assert.Nil(t, l)

	_, err = ParseSkillLevel("ninja")
	assert.Error(t, err)
}

func TestParseProficiency(t *testing.T) {
	p, err := ParseProficiency("B2")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, ProficiencyB2, *p)
	assert.True(t, ProficiencyC1.AtLeast(*p))
	assert.False(t, ProficiencyA1.AtLeast(*p))

	p, err = ParseProficiency("")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = ParseProficiency("z9")
	assert.Error(t, err)
}
