// Package training holds the additional-training collection use cases.
package training

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/training"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type TrainingUseCase struct {
	repo   training.Repository
	engine *ordering.Engine[*training.AdditionalTraining]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewTrainingUseCase(repo training.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *TrainingUseCase {
	return &TrainingUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*training.AdditionalTraining]("training", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateTrainingInput struct {
	ProfileID   uuid.UUID
	Title       string
	Provider    string
	Duration    *string
	Description *string
	OrderIndex  int
}

func (uc *TrainingUseCase) CreateTraining(ctx context.Context, in CreateTrainingInput) (*training.AdditionalTraining, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	t, err := training.NewAdditionalTraining(in.ProfileID, in.Title, in.Provider, in.Duration, in.Description, in.OrderIndex)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return t, nil
}

func (uc *TrainingUseCase) GetTraining(ctx context.Context, id uuid.UUID) (*training.AdditionalTraining, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *TrainingUseCase) ListTraining(ctx context.Context, profileID uuid.UUID) ([]*training.AdditionalTraining, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateTrainingInput struct {
	ID uuid.UUID
	training.Update
}

func (uc *TrainingUseCase) UpdateTraining(ctx context.Context, in UpdateTrainingInput) (*training.AdditionalTraining, error) {
	t, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := t.Apply(in.Update); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, t.ProfileID)
	return t, nil
}

func (uc *TrainingUseCase) DeleteTraining(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("training", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *TrainingUseCase) ReorderTraining(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *TrainingUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
