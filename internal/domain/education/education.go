// Package education models a formal education entry.
package education

import (
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
)

const (
	maxInstitutionLength = 100
	maxDegreeLength      = 100
	maxFieldLength       = 100
	minDescriptionLength = 10
	maxDescriptionLength = 1000
)

type Education struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewEducation(
	profileID uuid.UUID,
	institution, degree, field string,
	startDate time.Time,
	endDate *time.Time,
	description *string,
	orderIndex int,
) (*Education, error) {
	now := time.Now().UTC()
	e := &Education{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Institution: institution,
		Degree:      degree,
		Field:       field,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

type Update struct {
	Institution *string
	Degree      *string
	Field       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	EndDateSet  bool
}

func (e *Education) Apply(u Update) error {
	if u.Institution != nil {
		e.Institution = *u.Institution
	}
	if u.Degree != nil {
		e.Degree = *u.Degree
	}
	if u.Field != nil {
		e.Field = *u.Field
	}
	if u.Description != nil {
		e.Description = u.Description
	}
	if u.StartDate != nil {
		e.StartDate = *u.StartDate
	}
	if u.EndDateSet {
		e.EndDate = u.EndDate
	}
	if err := e.validate(); err != nil {
		return err
	}
	e.touch()
	return nil
}

// IsOngoing holds exactly when the education has no end date.
func (e *Education) IsOngoing() bool {
	return e.EndDate == nil
}

func (e *Education) validate() error {
	if err := collection.RequireOwner(e.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("institution", e.Institution, maxInstitutionLength); err != nil {
		return err
	}
	if err := collection.RequireText("degree", e.Degree, maxDegreeLength); err != nil {
		return err
	}
	if err := collection.RequireText("field", e.Field, maxFieldLength); err != nil {
		return err
	}
	if e.Description != nil {
		if err := collection.BoundedText("description", *e.Description, minDescriptionLength, maxDescriptionLength); err != nil {
			return err
		}
	}
	if _, err := value.NewDateRange(e.StartDate, e.EndDate); err != nil {
		return err
	}
	return collection.RequireOrderIndex(e.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (e *Education) Move(newIndex int) error {
	e.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(e.OrderIndex); err != nil {
		return err
	}
	e.touch()
	return nil
}

func (e *Education) touch() {
	e.UpdatedAt = time.Now().UTC()
}

func (e *Education) EntityID() uuid.UUID { return e.ID }
func (e *Education) Owner() uuid.UUID    { return e.ProfileID }
func (e *Education) Position() int       { return e.OrderIndex }

type Repository = collection.OrderedRepository[*Education]
