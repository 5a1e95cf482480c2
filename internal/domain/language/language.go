// Package language models a spoken language with an optional CEFR level.
package language

import (
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
)

const maxNameLength = 50

type Language struct {
	ID          uuid.UUID          `json:"id"`
	ProfileID   uuid.UUID          `json:"profile_id"`
	Name        string             `json:"name"`
	Proficiency *value.Proficiency `json:"proficiency,omitempty"`
	OrderIndex  int                `json:"order_index"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func NewLanguage(profileID uuid.UUID, name string, proficiency string, orderIndex int) (*Language, error) {
	parsed, err := value.ParseProficiency(proficiency)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	l := &Language{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Name:        name,
		Proficiency: parsed,
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateInfo applies the provided changes; a present but blank proficiency
// clears the level.
func (l *Language) UpdateInfo(name, proficiency *string) error {
	if name != nil {
		l.Name = *name
	}
	if proficiency != nil {
		parsed, err := value.ParseProficiency(*proficiency)
		if err != nil {
			return err
		}
		l.Proficiency = parsed
	}
	if err := l.validate(); err != nil {
		return err
	}
	l.touch()
	return nil
}

func (l *Language) validate() error {
	if err := collection.RequireOwner(l.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("name", l.Name, maxNameLength); err != nil {
		return err
	}
	return collection.RequireOrderIndex(l.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (l *Language) Move(newIndex int) error {
	l.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(l.OrderIndex); err != nil {
		return err
	}
	l.touch()
	return nil
}

func (l *Language) touch() {
	l.UpdatedAt = time.Now().UTC()
}

func (l *Language) EntityID() uuid.UUID { return l.ID }
func (l *Language) Owner() uuid.UUID    { return l.ProfileID }
func (l *Language) Position() int       { return l.OrderIndex }

type Repository = collection.OrderedRepository[*Language]
