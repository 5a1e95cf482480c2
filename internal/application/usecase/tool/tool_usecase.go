// Package tool mirrors the skill use cases for the tools collection: names
// unique per profile, order indexes free to collide.
package tool

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/tool"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type ToolUseCase struct {
	repo   tool.Repository
	engine *ordering.Engine[*tool.Tool]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewToolUseCase(repo tool.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *ToolUseCase {
	return &ToolUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*tool.Tool]("tool", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateToolInput struct {
	ProfileID      uuid.UUID
	Name           string
	Category       string
	OrderIndex     int
	KnowledgeLevel string
}

func (uc *ToolUseCase) CreateTool(ctx context.Context, in CreateToolInput) (*tool.Tool, error) {
	taken, err := uc.repo.ExistsByName(ctx, in.ProfileID, in.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflict("tool", "name", in.Name)
	}

	t, err := tool.NewTool(in.ProfileID, in.Name, in.Category, in.OrderIndex, in.KnowledgeLevel)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return t, nil
}

func (uc *ToolUseCase) GetTool(ctx context.Context, id uuid.UUID) (*tool.Tool, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ToolUseCase) ListTools(ctx context.Context, profileID uuid.UUID) ([]*tool.Tool, error) {
	return uc.engine.List(ctx, profileID, true)
}

// GroupToolsByCategory buckets the profile's tools by category, keeping the
// display order inside each bucket.
func (uc *ToolUseCase) GroupToolsByCategory(ctx context.Context, profileID uuid.UUID) (map[string][]*tool.Tool, error) {
	tools, err := uc.engine.List(ctx, profileID, true)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*tool.Tool)
	for _, t := range tools {
		grouped[t.Category] = append(grouped[t.Category], t)
	}
	return grouped, nil
}

// ToolStats summarizes the tools collection for the dashboard.
type ToolStats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

func (uc *ToolUseCase) Stats(ctx context.Context, profileID uuid.UUID) (*ToolStats, error) {
	tools, err := uc.engine.List(ctx, profileID, true)
	if err != nil {
		return nil, err
	}
	stats := &ToolStats{
		Total:      len(tools),
		ByCategory: make(map[string]int),
	}
	for _, t := range tools {
		stats.ByCategory[t.Category]++
	}
	return stats, nil
}

type UpdateToolInput struct {
	ID             uuid.UUID
	Name           *string
	Category       *string
	KnowledgeLevel *string
}

func (uc *ToolUseCase) UpdateTool(ctx context.Context, in UpdateToolInput) (*tool.Tool, error) {
	t, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		other, taken, err := uc.repo.FindByName(ctx, t.ProfileID, *in.Name)
		if err != nil {
			return nil, err
		}
		if taken && other.ID != t.ID {
			return nil, apperror.NewConflict("tool", "name", *in.Name)
		}
	}

	if err := t.UpdateInfo(in.Name, in.Category, in.KnowledgeLevel); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, t.ProfileID)
	return t, nil
}

func (uc *ToolUseCase) DeleteTool(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("tool", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ToolUseCase) ReorderTool(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *ToolUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
