// Package education holds the education collection use cases.
package education

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/education"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type EducationUseCase struct {
	repo   education.Repository
	engine *ordering.Engine[*education.Education]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewEducationUseCase(repo education.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*education.Education]("education", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateEducationInput struct {
	ProfileID   uuid.UUID
	Institution string
	Degree      string
	Field       string
	StartDate   time.Time
	EndDate     *time.Time
	Description *string
	OrderIndex  int
}

func (uc *EducationUseCase) CreateEducation(ctx context.Context, in CreateEducationInput) (*education.Education, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	e, err := education.NewEducation(
		in.ProfileID, in.Institution, in.Degree, in.Field,
		in.StartDate, in.EndDate, in.Description, in.OrderIndex,
	)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return e, nil
}

func (uc *EducationUseCase) GetEducation(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) ListEducation(ctx context.Context, profileID uuid.UUID) ([]*education.Education, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateEducationInput struct {
	ID uuid.UUID
	education.Update
}

func (uc *EducationUseCase) UpdateEducation(ctx context.Context, in UpdateEducationInput) (*education.Education, error) {
	e, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := e.Apply(in.Update); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, e.ProfileID)
	return e, nil
}

func (uc *EducationUseCase) DeleteEducation(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("education", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *EducationUseCase) ReorderEducation(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *EducationUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
