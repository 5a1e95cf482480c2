// Package experience holds the work-experience use cases. The family is
// order-unique: adding at a taken order_index is refused, moves go through
// the ordering engine.
package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/experience"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo   experience.Repository
	engine *ordering.Engine[*experience.WorkExperience]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewExperienceUseCase(repo experience.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*experience.WorkExperience]("experience", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateExperienceInput struct {
	ProfileID        uuid.UUID
	Role             string
	Company          string
	StartDate        time.Time
	EndDate          *time.Time
	Description      *string
	Responsibilities []string
	OrderIndex       int
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, in CreateExperienceInput) (*experience.WorkExperience, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	e, err := experience.NewWorkExperience(
		in.ProfileID, in.Role, in.Company,
		in.StartDate, in.EndDate, in.Description, in.Responsibilities, in.OrderIndex,
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

func (uc *ExperienceUseCase) GetExperience(ctx context.Context, id uuid.UUID) (*experience.WorkExperience, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ExperienceUseCase) ListExperiences(ctx context.Context, profileID uuid.UUID) ([]*experience.WorkExperience, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateExperienceInput struct {
	ID uuid.UUID
	experience.Update
}

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, in UpdateExperienceInput) (*experience.WorkExperience, error) {
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

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("work experience", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ExperienceUseCase) ReorderExperience(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ExperienceUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
