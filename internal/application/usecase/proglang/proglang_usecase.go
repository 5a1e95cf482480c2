// Package proglang holds the programming-language collection use cases.
package proglang

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/proglang"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type ProgrammingLanguageUseCase struct {
	repo   proglang.Repository
	engine *ordering.Engine[*proglang.ProgrammingLanguage]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewProgrammingLanguageUseCase(repo proglang.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *ProgrammingLanguageUseCase {
	return &ProgrammingLanguageUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*proglang.ProgrammingLanguage]("proglang", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateProgrammingLanguageInput struct {
	ProfileID  uuid.UUID
	Name       string
	Level      string
	OrderIndex int
}

func (uc *ProgrammingLanguageUseCase) CreateProgrammingLanguage(ctx context.Context, in CreateProgrammingLanguageInput) (*proglang.ProgrammingLanguage, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	p, err := proglang.NewProgrammingLanguage(in.ProfileID, in.Name, in.Level, in.OrderIndex)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return p, nil
}

func (uc *ProgrammingLanguageUseCase) GetProgrammingLanguage(ctx context.Context, id uuid.UUID) (*proglang.ProgrammingLanguage, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ProgrammingLanguageUseCase) ListProgrammingLanguages(ctx context.Context, profileID uuid.UUID) ([]*proglang.ProgrammingLanguage, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateProgrammingLanguageInput struct {
	ID    uuid.UUID
	Name  *string
	Level *string
}

func (uc *ProgrammingLanguageUseCase) UpdateProgrammingLanguage(ctx context.Context, in UpdateProgrammingLanguageInput) (*proglang.ProgrammingLanguage, error) {
	p, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := p.UpdateInfo(in.Name, in.Level); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, p.ProfileID)
	return p, nil
}

func (uc *ProgrammingLanguageUseCase) DeleteProgrammingLanguage(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("programming language", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ProgrammingLanguageUseCase) ReorderProgrammingLanguage(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ProgrammingLanguageUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
