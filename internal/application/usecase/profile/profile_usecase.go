// Package profile holds the singleton-profile use cases. The system carries
// at most one profile; creation conflicts once it exists and deletion is
// refused while any owned collection still has entries.
package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

// Counter is the slice of a collection repository the delete guard needs.
type Counter interface {
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type ProfileUseCase struct {
	profileRepo profile.Repository
	// children maps family name to its repository, checked before delete.
	children map[string]Counter
	uploader service.Uploader
	cache    service.CVInvalidator
	logger   logger.Logger
}

func NewProfileUseCase(
	repo profile.Repository,
	children map[string]Counter,
	uploader service.Uploader,
	cache service.CVInvalidator,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		children:    children,
		uploader:    uploader,
		cache:       cache,
		logger:      log,
	}
}

type CreateProfileInput struct {
	Name      string
	Headline  string
	Bio       *string
	Location  *string
	AvatarURL *string
}

func (uc *ProfileUseCase) CreateProfile(ctx context.Context, in CreateProfileInput) (*profile.Profile, error) {
	exists, err := uc.profileRepo.ProfileExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict("profile", "singleton", "a profile already exists")
	}

	p, err := profile.NewProfile(in.Name, in.Headline, in.Bio, in.Location, in.AvatarURL)
	if err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, p.ID)
	return p, nil
}

// GetProfile returns the singleton profile, ErrNotFound when none exists yet.
func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("profile", "singleton")
	}
	return p, nil
}

type UpdateProfileInput struct {
	Name      *string
	Headline  *string
	Bio       *string
	Location  *string
	AvatarURL *string
}

func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*profile.Profile, error) {
	p, err := uc.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.UpdateInfo(in.Name, in.Headline, in.Bio, in.Location, in.AvatarURL); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, p.ID)
	return p, nil
}

// DeleteProfile removes the singleton profile. It refuses while any owned
// collection still holds entries; callers empty the collections first.
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context) error {
	p, err := uc.GetProfile(ctx)
	if err != nil {
		return err
	}

	for family, counter := range uc.children {
		n, err := counter.Count(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("count %s failed: %w", family, err)
		}
		if n > 0 {
			return apperror.NewBusinessRule(
				"profile cannot be deleted while owned collections are not empty",
				family, n,
			)
		}
	}

	removed, err := uc.profileRepo.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	uc.invalidate(ctx, p.ID)
	return nil
}

type UpdateAvatarInput struct {
	File     io.Reader
	Filename string
}

// UpdateAvatar uploads the image to media storage and stores the returned URL
// on the profile.
func (uc *ProfileUseCase) UpdateAvatar(ctx context.Context, in UpdateAvatarInput) (*profile.Profile, error) {
	p, err := uc.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploader.Upload(ctx, in.File, "portfolio/avatars", p.ID.String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	if err := p.SetAvatarURL(url); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, p.ID)
	return p, nil
}

func (uc *ProfileUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
