// Package certification holds the certification collection use cases.
package certification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/certification"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type CertificationUseCase struct {
	repo   certification.Repository
	engine *ordering.Engine[*certification.Certification]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewCertificationUseCase(repo certification.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *CertificationUseCase {
	return &CertificationUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*certification.Certification]("certification", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateCertificationInput struct {
	ProfileID     uuid.UUID
	Title         string
	Issuer        string
	IssueDate     time.Time
	ExpiryDate    *time.Time
	CredentialID  *string
	CredentialURL *string
	OrderIndex    int
}

func (uc *CertificationUseCase) CreateCertification(ctx context.Context, in CreateCertificationInput) (*certification.Certification, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	c, err := certification.NewCertification(
		in.ProfileID, in.Title, in.Issuer,
		in.IssueDate, in.ExpiryDate, in.CredentialID, in.CredentialURL, in.OrderIndex,
	)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return c, nil
}

func (uc *CertificationUseCase) GetCertification(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *CertificationUseCase) ListCertifications(ctx context.Context, profileID uuid.UUID) ([]*certification.Certification, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateCertificationInput struct {
	ID uuid.UUID
	certification.Update
}

func (uc *CertificationUseCase) UpdateCertification(ctx context.Context, in UpdateCertificationInput) (*certification.Certification, error) {
	c, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(in.Update); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, c.ProfileID)
	return c, nil
}

func (uc *CertificationUseCase) DeleteCertification(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("certification", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *CertificationUseCase) ReorderCertification(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *CertificationUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
