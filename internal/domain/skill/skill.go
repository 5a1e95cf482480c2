// Package skill models a technical or professional skill. Skills are the
// named-unique ordered family: name is unique per profile in addition to the
// order_index rules.
package skill

import (
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
)

const (
	maxNameLength     = 50
	maxCategoryLength = 50
)

type Skill struct {
	ID         uuid.UUID         `json:"id"`
	ProfileID  uuid.UUID         `json:"profile_id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	OrderIndex int               `json:"order_index"`
	Level      *value.SkillLevel `json:"level,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func NewSkill(profileID uuid.UUID, name, category string, orderIndex int, level string) (*Skill, error) {
	parsedLevel, err := value.ParseSkillLevel(level)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	s := &Skill{
		ID:         uuid.New(),
		ProfileID:  profileID,
		Name:       name,
		Category:   category,
		OrderIndex: orderIndex,
		Level:      parsedLevel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateInfo applies the provided changes; nil fields are left untouched.
// A present but blank level clears the proficiency.
func (s *Skill) UpdateInfo(name, category, level *string) error {
	if name != nil {
		s.Name = *name
	}
	if category != nil {
		s.Category = *category
	}
	if level != nil {
		parsed, err := value.ParseSkillLevel(*level)
		if err != nil {
			return err
		}
		s.Level = parsed
	}
	if err := s.validate(); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *Skill) validate() error {
	if err := collection.RequireOwner(s.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("name", s.Name, maxNameLength); err != nil {
		return err
	}
	if err := collection.RequireText("category", s.Category, maxCategoryLength); err != nil {
		return err
	}
	return collection.RequireOrderIndex(s.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (s *Skill) Move(newIndex int) error {
	s.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(s.OrderIndex); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *Skill) touch() {
	s.UpdatedAt = time.Now().UTC()
}

func (s *Skill) EntityID() uuid.UUID { return s.ID }
func (s *Skill) Owner() uuid.UUID    { return s.ProfileID }
func (s *Skill) Position() int       { return s.OrderIndex }

type Repository = collection.NamedRepository[*Skill]
