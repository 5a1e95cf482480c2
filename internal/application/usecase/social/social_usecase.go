// Package social holds the social-network link use cases. The family is
// doubly unique per profile: by platform and by order_index.
package social

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/service"
	"portfolio-api/internal/domain/social"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type SocialNetworkUseCase struct {
	repo   social.Repository
	engine *ordering.Engine[*social.SocialNetwork]
	cache  service.CVInvalidator
	logger logger.Logger
}

func NewSocialNetworkUseCase(repo social.Repository, locks *ordering.Locks, cache service.CVInvalidator, log logger.Logger) *SocialNetworkUseCase {
	return &SocialNetworkUseCase{
		repo:   repo,
		engine: ordering.NewEngine[*social.SocialNetwork]("social", repo, locks),
		cache:  cache,
		logger: log,
	}
}

type CreateSocialNetworkInput struct {
	ProfileID  uuid.UUID
	Platform   string
	URL        string
	Username   *string
	OrderIndex int
}

func (uc *SocialNetworkUseCase) CreateSocialNetwork(ctx context.Context, in CreateSocialNetworkInput) (*social.SocialNetwork, error) {
	taken, err := uc.repo.ExistsByPlatform(ctx, in.ProfileID, in.Platform)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflict("social network", "platform", in.Platform)
	}
	if err := uc.engine.EnsureFreeSlot(ctx, in.ProfileID, in.OrderIndex); err != nil {
		return nil, err
	}

	s, err := social.NewSocialNetwork(in.ProfileID, in.Platform, in.URL, in.Username, in.OrderIndex)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, in.ProfileID)
	return s, nil
}

func (uc *SocialNetworkUseCase) GetSocialNetwork(ctx context.Context, id uuid.UUID) (*social.SocialNetwork, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *SocialNetworkUseCase) ListSocialNetworks(ctx context.Context, profileID uuid.UUID) ([]*social.SocialNetwork, error) {
	return uc.engine.List(ctx, profileID, true)
}

// GroupByPlatform buckets the profile's links by platform. Platforms are
// unique per profile, so each bucket holds one entry; the map shape mirrors
// the other grouped reads.
func (uc *SocialNetworkUseCase) GroupByPlatform(ctx context.Context, profileID uuid.UUID) (map[string][]*social.SocialNetwork, error) {
	links, err := uc.engine.List(ctx, profileID, true)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*social.SocialNetwork)
	for _, s := range links {
		grouped[s.Platform] = append(grouped[s.Platform], s)
	}
	return grouped, nil
}

type UpdateSocialNetworkInput struct {
	ID       uuid.UUID
	Platform *string
	URL      *string
	Username *string
}

func (uc *SocialNetworkUseCase) UpdateSocialNetwork(ctx context.Context, in UpdateSocialNetworkInput) (*social.SocialNetwork, error) {
	s, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Platform != nil && *in.Platform != s.Platform {
		taken, err := uc.repo.ExistsByPlatform(ctx, s.ProfileID, *in.Platform)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.NewConflict("social network", "platform", *in.Platform)
		}
	}

	if err := s.UpdateInfo(in.Platform, in.URL, in.Username); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, s.ProfileID)
	return s, nil
}

func (uc *SocialNetworkUseCase) DeleteSocialNetwork(ctx context.Context, profileID, id uuid.UUID) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("social network", id.String())
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *SocialNetworkUseCase) ReorderSocialNetwork(ctx context.Context, profileID, id uuid.UUID, newIndex int) error {
	if err := uc.engine.Reorder(ctx, profileID, id, newIndex); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *SocialNetworkUseCase) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := uc.cache.InvalidateCV(ctx, profileID); err != nil {
		uc.logger.Warn("Failed to invalidate CV cache", zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}
