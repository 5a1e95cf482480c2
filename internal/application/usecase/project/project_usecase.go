// Package project holds the project collection use cases.
package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/project"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type ProjectUseCase struct {
	repo   project.Repository
	engine *ordering.Engine[*project.Project]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewProjectUseCase(repo project.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*project.Project]("project", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateProjectInput struct {
	ProfileID    uuid.UUID
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      *time.Time
	LiveURL      *string
	RepoURL      *string
	Technologies []string
	OrderIndex   int
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, in CreateProjectInput) (*project.Project, error) {
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	p, err := project.NewProject(
		in.ProfileID, in.Title, in.Description,
		in.StartDate, in.EndDate, in.LiveURL, in.RepoURL, in.Technologies, in.OrderIndex,
	)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return p, nil
}

func (uc *ProjectUseCase) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context, profileID uuid.UUID) ([]*project.Project, error) {
	return uc.engine.List(ctx, profileID, true)
}

type UpdateProjectInput struct {
	ID uuid.UUID
	project.Update
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, in UpdateProjectInput) (*project.Project, error) {
	p, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(in.Update); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, p.ProfileID)
	return p, nil
}

func (uc *ProjectUseCase) DeleteProject(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("project", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ProjectUseCase) ReorderProject(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ProjectUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
