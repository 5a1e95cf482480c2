// Package proglang models a programming language entry with an optional
// proficiency level.
package proglang

import (
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
)

const maxNameLength = 50

type ProgrammingLanguage struct {
	ID         uuid.UUID         `json:"id"`
	ProfileID  uuid.UUID         `json:"profile_id"`
	Name       string            `json:"name"`
	Level      *value.SkillLevel `json:"level,omitempty"`
	OrderIndex int               `json:"order_index"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func NewProgrammingLanguage(profileID uuid.UUID, name string, level string, orderIndex int) (*ProgrammingLanguage, error) {
	parsed, err := value.ParseSkillLevel(level)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &ProgrammingLanguage{
		ID:         uuid.New(),
		ProfileID:  profileID,
		Name:       name,
		Level:      parsed,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ProgrammingLanguage) UpdateInfo(name, level *string) error {
	if name != nil {
		p.Name = *name
	}
	if level != nil {
		parsed, err := value.ParseSkillLevel(*level)
		if err != nil {
			return err
		}
		p.Level = parsed
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *ProgrammingLanguage) validate() error {
	if err := collection.RequireOwner(p.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("name", p.Name, maxNameLength); err != nil {
		return err
	}
	return collection.RequireOrderIndex(p.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (p *ProgrammingLanguage) Move(newIndex int) error {
	p.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(p.OrderIndex); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *ProgrammingLanguage) touch() {
	p.UpdatedAt = time.Now().UTC()
}

func (p *ProgrammingLanguage) EntityID() uuid.UUID { return p.ID }
func (p *ProgrammingLanguage) Owner() uuid.UUID    { return p.ProfileID }
func (p *ProgrammingLanguage) Position() int       { return p.OrderIndex }

type Repository = collection.OrderedRepository[*ProgrammingLanguage]
