// Package contactinfo holds the contact-information use cases. Each profile
// carries at most one contact block.
package contactinfo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/contactinfo"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type ContactInfoUseCase struct {
	repo   contactinfo.Repository
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewContactInfoUseCase(repo contactinfo.Repository, cache service.CVInvalidator, log logger.Logger) *ContactInfoUseCase {
	return &ContactInfoUseCase{repo: repo, cache: cache, logger: log}
}

type CreateContactInfoInput struct {
	ProfileID   uuid.UUID
	Email       string
	Phone       *string
	LinkedInURL *string
	GitHubURL   *string
	WebsiteURL  *string
}

func (uc *ContactInfoUseCase) CreateContactInfo(ctx context.Context, in CreateContactInfoInput) (*contactinfo.ContactInformation, error) {
	existing, err := uc.repo.GetByProfileID(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("contact information", "profile_id", in.ProfileID.String())
	}

	c, err := contactinfo.NewContactInformation(in.ProfileID, in.Email, in.Phone, in.LinkedInURL, in.GitHubURL, in.WebsiteURL)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return c, nil
}

// GetContactInfo returns the profile's contact block, ErrNotFound when
// none has been created.
func (uc *ContactInfoUseCase) GetContactInfo(ctx context.Context, profileID uuid.UUID) (*contactinfo.ContactInformation, error) {
	c, err := uc.repo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFound("contact information", profileID.String())
	}
	return c, nil
}

type UpdateContactInfoInput struct {
	ProfileID uuid.UUID
	contactinfo.Update
}

func (uc *ContactInfoUseCase) UpdateContactInfo(ctx context.Context, in UpdateContactInfoInput) (*contactinfo.ContactInformation, error) {
	c, err := uc.GetContactInfo(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(in.Update); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return c, nil
}

func (uc *ContactInfoUseCase) DeleteContactInfo(ctx context.Context, profileID uuid.UUID) error {
	c, err := uc.GetContactInfo(ctx, profileID)
	if err != nil {
		return err
	}
	removed, err := uc.repo.Delete(ctx, c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("contact information", c.ID.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ContactInfoUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
