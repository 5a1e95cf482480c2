// Package training models an additional (non-degree) training entry, such as
// a course or bootcamp.
package training

import (
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
)

const (
	maxTitleLength       = 100
	maxProviderLength    = 100
	maxDurationLength    = 50
	maxDescriptionLength = 500
)

type AdditionalTraining struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Title       string    `json:"title"`
	Provider    string    `json:"provider"`
	Duration    *string   `json:"duration,omitempty"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAdditionalTraining(
	profileID uuid.UUID,
	title, provider string,
	duration, description *string,
	orderIndex int,
) (*AdditionalTraining, error) {
	now := time.Now().UTC()
	t := &AdditionalTraining{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Title:       title,
		Provider:    provider,
		Duration:    duration,
		Description: description,
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

type Update struct {
	Title       *string
	Provider    *string
	Duration    *string
	Description *string
}

func (t *AdditionalTraining) Apply(u Update) error {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Provider != nil {
		t.Provider = *u.Provider
	}
	if u.Duration != nil {
		t.Duration = u.Duration
	}
	if u.Description != nil {
		t.Description = u.Description
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.touch()
	return nil
}

func (t *AdditionalTraining) validate() error {
	if err := collection.RequireOwner(t.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("title", t.Title, maxTitleLength); err != nil {
		return err
	}
	if err := collection.RequireText("provider", t.Provider, maxProviderLength); err != nil {
		return err
	}
	if err := collection.OptionalText("duration", t.Duration, maxDurationLength); err != nil {
		return err
	}
	if err := collection.OptionalText("description", t.Description, maxDescriptionLength); err != nil {
		return err
	}
	return collection.RequireOrderIndex(t.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (t *AdditionalTraining) Move(newIndex int) error {
	t.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(t.OrderIndex); err != nil {
		return err
	}
	t.touch()
	return nil
}

func (t *AdditionalTraining) touch() {
	t.UpdatedAt = time.Now().UTC()
}

func (t *AdditionalTraining) EntityID() uuid.UUID { return t.ID }
func (t *AdditionalTraining) Owner() uuid.UUID    { return t.ProfileID }
func (t *AdditionalTraining) Position() int       { return t.OrderIndex }

type Repository = collection.OrderedRepository[*AdditionalTraining]
