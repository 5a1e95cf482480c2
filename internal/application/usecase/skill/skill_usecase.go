// Package skill holds the skill collection use cases. Skill names are unique
// per profile; order indexes may collide and only matter for display sorting.
package skill

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/skill"
	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type SkillUseCase struct {
	repo   skill.Repository
	engine *ordering.Engine[*skill.Skill]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewSkillUseCase(repo skill.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*skill.Skill]("skill", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateSkillInput struct {
	ProfileID  uuid.UUID
	Name       string
	Category   string
	OrderIndex int
	Level      string
}

func (uc *SkillUseCase) CreateSkill(ctx context.Context, in CreateSkillInput) (*skill.Skill, error) {
	taken, err := uc.repo.ExistsByName(ctx, in.ProfileID, in.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflict("skill", "name", in.Name)
	}

	s, err := skill.NewSkill(in.ProfileID, in.Name, in.Category, in.OrderIndex, in.Level)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return s, nil
}

func (uc *SkillUseCase) GetSkill(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *SkillUseCase) ListSkills(ctx context.Context, profileID uuid.UUID) ([]*skill.Skill, error) {
	return uc.engine.List(ctx, profileID, true)
}

// GroupSkillsByCategory buckets the profile's skills by category, keeping the
// display order inside each bucket.
func (uc *SkillUseCase) GroupSkillsByCategory(ctx context.Context, profileID uuid.UUID) (map[string][]*skill.Skill, error) {
	skills, err := uc.engine.List(ctx, profileID, true)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*skill.Skill)
	for _, s := range skills {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped, nil
}

// GroupSkillsByLevel buckets by proficiency level; skills without one land
// under "none".
func (uc *SkillUseCase) GroupSkillsByLevel(ctx context.Context, profileID uuid.UUID) (map[string][]*skill.Skill, error) {
	skills, err := uc.engine.List(ctx, profileID, true)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*skill.Skill)
	for _, s := range skills {
		grouped[levelKey(s.Level)] = append(grouped[levelKey(s.Level)], s)
	}
	return grouped, nil
}

// SkillStats summarizes the skills collection for the dashboard.
type SkillStats struct {
	Total      int            `json:"total"`
	ByLevel    map[string]int `json:"by_level"`
	ByCategory map[string]int `json:"by_category"`
}

func (uc *SkillUseCase) Stats(ctx context.Context, profileID uuid.UUID) (*SkillStats, error) {
	skills, err := uc.engine.List(ctx, profileID, true)
	if err != nil {
		return nil, err
	}
	stats := &SkillStats{
		Total:      len(skills),
		ByLevel:    make(map[string]int),
		ByCategory: make(map[string]int),
	}
	for _, s := range skills {
		stats.ByLevel[levelKey(s.Level)]++
		stats.ByCategory[s.Category]++
	}
	return stats, nil
}

func levelKey(l *value.SkillLevel) string {
	if l == nil {
		return "none"
	}
	return l.String()
}

type UpdateSkillInput struct {
	ID       uuid.UUID
	Name     *string
	Category *string
	Level    *string
}

func (uc *SkillUseCase) UpdateSkill(ctx context.Context, in UpdateSkillInput) (*skill.Skill, error) {
	s, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		other, taken, err := uc.repo.FindByName(ctx, s.ProfileID, *in.Name)
		if err != nil {
			return nil, err
		}
		if taken && other.ID != s.ID {
			return nil, apperror.NewConflict("skill", "name", *in.Name)
		}
	}

	if err := s.UpdateInfo(in.Name, in.Category, in.Level); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, s.ProfileID)
	return s, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("skill", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *SkillUseCase) ReorderSkill(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *SkillUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
