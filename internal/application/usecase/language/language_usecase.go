// Package language holds the spoken-language collection use cases.
package language

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/language"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type LanguageUseCase struct {
	repo   language.Repository
	engine *ordering.Engine[*language.Language]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewLanguageUseCase(repo language.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *LanguageUseCase {
	return &LanguageUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*language.Language]("language", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateLanguageInput struct {
	ProfileID   uuid.UUID
	Name        string
	Proficiency string
	OrderIndex  int
}

func (uc *LanguageUseCase) CreateLanguage(ctx context.Context, in CreateLanguageInput) (*language.Language, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	l, err := language.NewLanguage(in.ProfileID, in.Name, in.Proficiency, in.OrderIndex)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return l, nil
}

func (uc *LanguageUseCase) GetLanguage(ctx context.Context, id uuid.UUID) (*language.Language, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *LanguageUseCase) ListLanguages(ctx context.Context, profileID uuid.UUID) ([]*language.Language, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateLanguageInput struct {
	ID          uuid.UUID
	Name        *string
	Proficiency *string
}

func (uc *LanguageUseCase) UpdateLanguage(ctx context.Context, in UpdateLanguageInput) (*language.Language, error) {
	l, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := l.UpdateInfo(in.Name, in.Proficiency); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, l.ProfileID)
	return l, nil
}

func (uc *LanguageUseCase) DeleteLanguage(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("language", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *LanguageUseCase) ReorderLanguage(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *LanguageUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
