// Package profile holds the aggregate root of the CV. The system manages
// exactly one profile; the singleton is enforced both at the use-case layer
// and by a storage-level unique index.
package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
)

const (
	maxNameLength     = 100
	maxHeadlineLength = 100
	maxBioLength      = 2000
	maxLocationLength = 100
)

type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Headline  string    `json:"headline"`
	Bio       *string   `json:"bio,omitempty"`
	Location  *string   `json:"location,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfile(name, headline string, bio, location, avatarURL *string) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		ID:        uuid.New(),
		Name:      name,
		Headline:  headline,
		Bio:       bio,
		Location:  location,
		AvatarURL: avatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateInfo applies the provided changes; nil fields are left untouched.
func (p *Profile) UpdateInfo(name, headline, bio, location, avatarURL *string) error {
	if name != nil {
		p.Name = *name
	}
	if headline != nil {
		p.Headline = *headline
	}
	if bio != nil {
		p.Bio = bio
	}
	if location != nil {
		p.Location = location
	}
	if avatarURL != nil {
		p.AvatarURL = avatarURL
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Profile) SetAvatarURL(url string) error {
	p.AvatarURL = &url
	if err := collection.OptionalURL("avatar_url", p.AvatarURL); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Profile) validate() error {
	if err := collection.RequireText("name", p.Name, maxNameLength); err != nil {
		return err
	}
	if err := collection.RequireText("headline", p.Headline, maxHeadlineLength); err != nil {
		return err
	}
	if err := collection.OptionalText("bio", p.Bio, maxBioLength); err != nil {
		return err
	}
	if err := collection.OptionalText("location", p.Location, maxLocationLength); err != nil {
		return err
	}
	return collection.OptionalURL("avatar_url", p.AvatarURL)
}

func (p *Profile) touch() {
	p.UpdatedAt = time.Now().UTC()
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// GetProfile returns the singleton profile, nil when the system is empty.
	GetProfile(ctx context.Context) (*Profile, error)
	ProfileExists(ctx context.Context) (bool, error)
}
