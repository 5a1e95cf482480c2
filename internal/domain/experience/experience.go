// Package experience models a work history entry.
package experience

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/apperror"
)

const (
	maxRoleLength           = 100
	maxCompanyLength        = 100
	minDescriptionLength    = 10
	maxDescriptionLength    = 2000
	maxResponsibilities     = 20
	maxResponsibilityLength = 500
)

type WorkExperience struct {
	ID               uuid.UUID  `json:"id"`
	ProfileID        uuid.UUID  `json:"profile_id"`
	Role             string     `json:"role"`
	Company          string     `json:"company"`
	Description      *string    `json:"description,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Responsibilities []string   `json:"responsibilities"`
	OrderIndex       int        `json:"order_index"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewWorkExperience(
	profileID uuid.UUID,
	role, company string,
	startDate time.Time,
	endDate *time.Time,
	description *string,
	responsibilities []string,
	orderIndex int,
) (*WorkExperience, error) {
	now := time.Now().UTC()
	e := &WorkExperience{
		ID:               uuid.New(),
		ProfileID:        profileID,
		Role:             role,
		Company:          company,
		Description:      description,
		StartDate:        startDate,
		EndDate:          endDate,
		Responsibilities: responsibilities,
		OrderIndex:       orderIndex,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

type Update struct {
	Role             *string
	Company          *string
	Description      *string
	StartDate        *time.Time
	EndDate          *time.Time
	EndDateSet       bool
	Responsibilities []string
}

// Apply merges the provided changes and re-validates. EndDateSet
// distinguishes "clear the end date" from "leave it alone".
func (e *WorkExperience) Apply(u Update) error {
	if u.Role != nil {
		e.Role = *u.Role
	}
	if u.Company != nil {
		e.Company = *u.Company
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
	if u.Responsibilities != nil {
		e.Responsibilities = u.Responsibilities
	}
	if err := e.validate(); err != nil {
		return err
	}
	e.touch()
	return nil
}

// IsCurrentPosition holds exactly when the experience has no end date.
func (e *WorkExperience) IsCurrentPosition() bool {
	return e.EndDate == nil
}

func (e *WorkExperience) DateRange() (value.DateRange, error) {
	return value.NewDateRange(e.StartDate, e.EndDate)
}

func (e *WorkExperience) validate() error {
	if err := collection.RequireOwner(e.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("role", e.Role, maxRoleLength); err != nil {
		return err
	}
	if err := collection.RequireText("company", e.Company, maxCompanyLength); err != nil {
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
	if len(e.Responsibilities) > maxResponsibilities {
		return apperror.NewValidation("responsibilities",
			fmt.Sprintf("at most %d responsibilities allowed", maxResponsibilities))
	}
	for i, r := range e.Responsibilities {
		if strings.TrimSpace(r) == "" {
			return apperror.NewValidation("responsibilities",
				fmt.Sprintf("responsibility %d cannot be empty", i))
		}
		if len(r) > maxResponsibilityLength {
			return apperror.NewValidation("responsibilities",
				fmt.Sprintf("responsibility %d exceeds %d characters", i, maxResponsibilityLength))
		}
	}
	return collection.RequireOrderIndex(e.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (e *WorkExperience) Move(newIndex int) error {
	e.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(e.OrderIndex); err != nil {
		return err
	}
	e.touch()
	return nil
}

func (e *WorkExperience) touch() {
	e.UpdatedAt = time.Now().UTC()
}

func (e *WorkExperience) EntityID() uuid.UUID { return e.ID }
func (e *WorkExperience) Owner() uuid.UUID    { return e.ProfileID }
func (e *WorkExperience) Position() int       { return e.OrderIndex }

type Repository = collection.OrderedRepository[*WorkExperience]
