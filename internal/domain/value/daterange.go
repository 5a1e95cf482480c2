package value

import (
	"time"

	"portfolio-api/pkg/apperror"
)

// DateRange is an immutable period with a required start and an optional end.
// An absent end means the period is ongoing.
type DateRange struct {
	start time.Time
	end   *time.Time
}

func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, apperror.NewValidation("start_date", "start_date is required")
	}
	if end != nil && !end.After(start) {
		return DateRange{}, apperror.NewValidation("end_date", "end_date must be strictly after start_date")
	}
	if end == nil {
		return DateRange{start: start}, nil
	}
	e := *end
	return DateRange{start: start, end: &e}, nil
}

func Ongoing(start time.Time) (DateRange, error) {
	return NewDateRange(start, nil)
}

func (r DateRange) Start() time.Time { return r.start }

// End returns a copy of the end date, nil when ongoing.
func (r DateRange) End() *time.Time {
	if r.end == nil {
		return nil
	}
	e := *r.end
	return &e
}

func (r DateRange) IsOngoing() bool { return r.end == nil }

// DurationDays returns the period length in days, or -1 when ongoing.
func (r DateRange) DurationDays() int {
	if r.end == nil {
		return -1
	}
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) Contains(t time.Time) bool {
	if t.Before(r.start) {
		return false
	}
	return r.end == nil || !t.After(*r.end)
}

func (r DateRange) Overlaps(other DateRange) bool {
	startsBeforeOtherEnds := other.end == nil || !r.start.After(*other.end)
	otherStartsBeforeEnds := r.end == nil || !other.start.After(*r.end)
	return startsBeforeOtherEnds && otherStartsBeforeEnds
}
