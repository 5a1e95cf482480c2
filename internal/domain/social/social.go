// Package social models a social network link. The family is ordered and
// additionally platform-unique per profile, so both constraints must survive
// every command; reorder never touches the platform, which keeps that side
// trivially intact.
package social

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
)

const (
	maxPlatformLength = 50
	maxUsernameLength = 100
)

type SocialNetwork struct {
	ID         uuid.UUID `json:"id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	Platform   string    `json:"platform"`
	URL        string    `json:"url"`
	Username   *string   `json:"username,omitempty"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewSocialNetwork(profileID uuid.UUID, platform, url string, username *string, orderIndex int) (*SocialNetwork, error) {
	now := time.Now().UTC()
	s := &SocialNetwork{
		ID:         uuid.New(),
		ProfileID:  profileID,
		Platform:   platform,
		URL:        url,
		Username:   username,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SocialNetwork) UpdateInfo(platform, url, username *string) error {
	if platform != nil {
		s.Platform = *platform
	}
	if url != nil {
		s.URL = *url
	}
	if username != nil {
		s.Username = username
	}
	if err := s.validate(); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *SocialNetwork) validate() error {
	if err := collection.RequireOwner(s.ProfileID); err != nil {
		return err
	}
	if err := collection.RequireText("platform", s.Platform, maxPlatformLength); err != nil {
		return err
	}
	if err := collection.RequireURL("url", s.URL); err != nil {
		return err
	}
	if err := collection.OptionalText("username", s.Username, maxUsernameLength); err != nil {
		return err
	}
	return collection.RequireOrderIndex(s.OrderIndex)
}

// Move updates the order index, re-validating and stamping the mutation.
func (s *SocialNetwork) Move(newIndex int) error {
	s.OrderIndex = newIndex
	if err := collection.RequireOrderIndex(s.OrderIndex); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *SocialNetwork) touch() {
	s.UpdatedAt = time.Now().UTC()
}

func (s *SocialNetwork) EntityID() uuid.UUID { return s.ID }
func (s *SocialNetwork) Owner() uuid.UUID    { return s.ProfileID }
func (s *SocialNetwork) Position() int       { return s.OrderIndex }

type Repository interface {
	collection.OrderedRepository[*SocialNetwork]
	ExistsByPlatform(ctx context.Context, profileID uuid.UUID, platform string) (bool, error)
}
