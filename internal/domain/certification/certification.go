// Package certification models a professional certification.
package certification

import (
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/pkg/apperror"
)

const (
	maxTitleLength        = 100
	maxIssuerLength       = 100
	maxCredentialIDLength = 100
)

type Certification struct {
	ID            uuid.UUID  `json:"id"`
	ProfileID     uuid.UUID  `json:"profile_id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     time.Time  `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  *string    `json:"credential_id,omitempty"`
	CredentialURL *string    `json:"credential_url,omitempty"`
	OrderIndex    int        `json:"order_index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewCertification(
	profileID uuid.UUID,
	title, issuer string,
	issueDate time.Time,
	expiryDate *time.Time,
	credentialID, credentialURL *string,
	orderIndex int,
) (*Certification, error) {
	now := time.Now().UTC()
	c := &Certification{
		ID:            uuid.New(),
		ProfileID:     profileID,
		Title:         title,
		Issuer:        issuer,
		IssueDate:     issueDate,
		ExpiryDate:    expiryDate,
		CredentialID:  credentialID,
		CredentialURL: credentialURL,
		OrderIndex:    orderIndex,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type Update struct {
	Title         *string
	Issuer        *string
	IssueDate     *time.Time
	ExpiryDate    *time.Time
	ExpiryDateSet bool
	CredentialID  *string
	CredentialURL *string
}

func (c *Certification) Apply(u Update) error {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Issuer != nil {
		c.Issuer = *u.Issuer
	}
	if u.IssueDate != nil {
		c.IssueDate = *u.IssueDate
	}
	if u.ExpiryDateSet {
		c.ExpiryDate = u.ExpiryDate
	}
	if u.CredentialID != nil {
		c.CredentialID = u.CredentialID
	}
	if u.CredentialURL != nil {
		c.CredentialURL = u.CredentialURL
	}
	if err := c.validate(); err != nil {
		return err
	}
	c.touch()
	return nil
}

// IsExpired reports whether the certification has an expiry date in the past.
func (c *Certification) IsExpired(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}

func (c *Certification) validate() error {
	if err := collection.RequireOwner(c.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("title", c.Title, maxTitleLength); err != nil {
		return err
	}
	if err := collection.RequireText("issuer", c.Issuer, maxIssuerLength); err != nil {
		return err
	}
	if c.IssueDate.IsZero() {
		return apperror.NewValidation("issue_date", "issue_date is required")
	}
	if c.ExpiryDate != nil && !c.ExpiryDate.After(c.IssueDate) {
		return apperror.NewValidation("expiry_date", "expiry_date must be strictly after issue_date")
	}
	if err := collection.OptionalText("credential_id", c.CredentialID, maxCredentialIDLength); err != nil {
		return err
	}
	if err := collection.OptionalURL("credential_url", c.CredentialURL); err != nil {
		return err
	}
	return collection.RequireOrderIndex(c.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (c *Certification) Move(newIndex int) error {
	c.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(c.OrderIndex); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *Certification) touch() {
	c.UpdatedAt = time.Now().UTC()
}

func (c *Certification) EntityID() uuid.UUID { return c.ID }
func (c *Certification) Owner() uuid.UUID    { return c.ProfileID }
func (c *Certification) Position() int       { return c.OrderIndex }

type Repository = collection.OrderedRepository[*Certification]
