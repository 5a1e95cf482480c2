// Package project models a portfolio project.
//
// The description floor depends on context: a project without any link must
// describe itself in at least 100 characters, while one that points at a live
// site or repository only needs 10.
package project

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
	maxTitleLength         = 100
	maxDescriptionLength   = 2000
	minDescriptionLinked   = 10
	minDescriptionUnlinked = 100
	maxTechnologies        = 20
	maxTechnologyLength    = 50
)

type Project struct {
	ID           uuid.UUID  `json:"id"`
	ProfileID    uuid.UUID  `json:"profile_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	LiveURL      *string    `json:"live_url,omitempty"`
	RepoURL      *string    `json:"repo_url,omitempty"`
	Technologies []string   `json:"technologies"`
	OrderIndex   int        `json:"order_index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewProject(
	profileID uuid.UUID,
	title, description string,
	startDate time.Time,
	endDate *time.Time,
	liveURL, repoURL *string,
	technologies []string,
	orderIndex int,
) (*Project, error) {
	now := time.Now().UTC()
	p := &Project{
		ID:           uuid.New(),
		ProfileID:    profileID,
		Title:        title,
		Description:  description,
		StartDate:    startDate,
		EndDate:      endDate,
		LiveURL:      liveURL,
		RepoURL:      repoURL,
		Technologies: technologies,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type Update struct {
	Title        *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	EndDateSet   bool
	LiveURL      *string
	LiveURLSet   bool
	RepoURL      *string
	RepoURLSet   bool
	Technologies []string
}

func (p *Project) Apply(u Update) error {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.StartDate != nil {
		p.StartDate = *u.StartDate
	}
	if u.EndDateSet {
		p.EndDate = u.EndDate
	}
	if u.LiveURLSet {
		p.LiveURL = u.LiveURL
	}
	if u.RepoURLSet {
		p.RepoURL = u.RepoURL
	}
	if u.Technologies != nil {
		p.Technologies = u.Technologies
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.touch()
	return nil
}

// IsOngoing holds exactly when the project has no end date.
func (p *Project) IsOngoing() bool {
	return p.EndDate == nil
}

// HasLink reports whether the project points at a live site or a repository.
func (p *Project) HasLink() bool {
	return p.LiveURL != nil || p.RepoURL != nil
}

func (p *Project) validate() error {
	if err := collection.RequireOwner(p.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("title", p.Title, maxTitleLength); err != nil {
		return err
	}
	floor := minDescriptionUnlinked
	if p.HasLink() {
		floor = minDescriptionLinked
	}
	if err := collection.BoundedText("description", p.Description, floor, maxDescriptionLength); err != nil {
		return err
	}
	if _, err := value.NewDateRange(p.StartDate, p.EndDate); err != nil {
		return err
	}
	if err := collection.OptionalURL("live_url", p.LiveURL); err != nil {
		return err
	}
	if err := collection.OptionalURL("repo_url", p.RepoURL); err != nil {
		return err
	}
	if len(p.Technologies) > maxTechnologies {
		return apperror.NewValidation("technologies",
			fmt.Sprintf("at most %d technologies allowed", maxTechnologies))
	}
	for i, tech := range p.Technologies {
		if strings.TrimSpace(tech) == "" {
			return apperror.NewValidation("technologies",
				fmt.Sprintf("technology %d cannot be empty", i))
		}
		if len(tech) > maxTechnologyLength {
			return apperror.NewValidation("technologies",
				fmt.Sprintf("technology %d exceeds %d characters", i, maxTechnologyLength))
		}
	}
	return collection.RequireOrderIndex(p.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (p *Project) Move(newIndex int) error {
	p.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(p.OrderIndex); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Project) touch() {
	p.UpdatedAt = time.Now().UTC()
}

func (p *Project) EntityID() uuid.UUID { return p.ID }
func (p *Project) Owner() uuid.UUID    { return p.ProfileID }
func (p *Project) Position() int       { return p.OrderIndex }

type Repository = collection.OrderedRepository[*Project]
