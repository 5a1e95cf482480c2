// Package tool models a tool or technology the profile owner works with.
// Tools follow the same named-unique ordering rules as skills.
package tool

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

type Tool struct {
	ID             uuid.UUID         `json:"id"`
	ProfileID      uuid.UUID         `json:"profile_id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	OrderIndex     int               `json:"order_index"`
	KnowledgeLevel *value.SkillLevel `json:"knowledge_level,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func NewTool(profileID uuid.UUID, name, category string, orderIndex int, knowledgeLevel string) (*Tool, error) {
	parsed, err := value.ParseSkillLevel(knowledgeLevel)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := &Tool{
		ID:             uuid.New(),
		ProfileID:      profileID,
		Name:           name,
		Category:       category,
		OrderIndex:     orderIndex,
		KnowledgeLevel: parsed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tool) UpdateInfo(name, category, knowledgeLevel *string) error {
	if name != nil {
		t.Name = *name
	}
	if category != nil {
		t.Category = *category
	}
	if knowledgeLevel != nil {
		parsed, err := value.ParseSkillLevel(*knowledgeLevel)
		if err != nil {
			return err
		}
		t.KnowledgeLevel = parsed
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.touch()
	return nil
}

func (t *Tool) validate() error {
	if err := collection.RequireOwner(t.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("name", t.Name, maxNameLength); err != nil {
		return err
	}
	if err := collection.RequireText("category", t.Category, maxCategoryLength); err != nil {
		return err
	}
	return collection.RequireOrderIndex(t.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (t *Tool) Move(newIndex int) error {
	t.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(t.OrderIndex); err != nil {
		return err
	}
	t.touch()
	return nil
}

func (t *Tool) touch() {
	t.UpdatedAt = time.Now().UTC()
}

func (t *Tool) EntityID() uuid.UUID { return t.ID }
func (t *Tool) Owner() uuid.UUID    { return t.ProfileID }
func (t *Tool) Position() int       { return t.OrderIndex }

type Repository = collection.NamedRepository[*Tool]
