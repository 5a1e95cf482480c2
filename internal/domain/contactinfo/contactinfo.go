// Package contactinfo models the contact details block of the CV. At most
// one ContactInformation exists per profile.
package contactinfo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
)

type ContactInformation struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	LinkedInURL *string   `json:"linkedin_url,omitempty"`
	GitHubURL   *string   `json:"github_url,omitempty"`
	WebsiteURL  *string   `json:"website_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewContactInformation(
	profileID uuid.UUID,
	email string,
	phone, linkedInURL, gitHubURL, websiteURL *string,
) (*ContactInformation, error) {
	now := time.Now().UTC()
	c := &ContactInformation{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Email:       email,
		Phone:       phone,
		LinkedInURL: linkedInURL,
		GitHubURL:   gitHubURL,
		WebsiteURL:  websiteURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type Update struct {
	Email       *string
	Phone       *string
	PhoneSet    bool
	LinkedInURL *string
	GitHubURL   *string
	WebsiteURL  *string
}

func (c *ContactInformation) Apply(u Update) error {
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.PhoneSet {
		c.Phone = u.Phone
	}
	if u.LinkedInURL != nil {
		c.LinkedInURL = u.LinkedInURL
	}
	if u.GitHubURL != nil {
		c.GitHubURL = u.GitHubURL
	}
	if u.WebsiteURL != nil {
		c.WebsiteURL = u.WebsiteURL
	}
	if err := c.validate(); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *ContactInformation) validate() error {
	if err := collection.RequireOwner(c.ProfileID); err != nil {
		return err
	}
	email, err := value.NewEmail(c.Email)
	if err != nil {
		return err
	}
	c.Email = email.String()
	if c.Phone != nil {
		phone, err := value.NewPhone(*c.Phone)
		if err != nil {
			return err
		}
		normalized := phone.String()
		c.Phone = &normalized
	}
	if err := collection.OptionalURL("linkedin_url", c.LinkedInURL); err != nil {
		return err
	}
	if err := collection.OptionalURL("github_url", c.GitHubURL); err != nil {
		return err
	}
	return collection.OptionalURL("website_url", c.WebsiteURL)
}

func (c *ContactInformation) touch() {
	c.UpdatedAt = time.Now().UTC()
}

type Repository interface {
	Save(ctx context.Context, c *ContactInformation) error
	Update(ctx context.Context, c *ContactInformation) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ContactInformation, error)
	// GetByProfileID returns the profile's contact block, nil when absent.
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*ContactInformation, error)
}
