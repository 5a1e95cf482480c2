package social_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/ordering/orderingtest"
	"portfolio-api/internal/application/service"
	socialUC "portfolio-api/internal/application/usecase/social"
	"portfolio-api/internal/domain/social"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type fakeSocialRepo struct {
	*orderingtest.Repo[*social.SocialNetwork]
}

func (f *fakeSocialRepo) ExistsByPlatform(ctx context.Context, profileID uuid.UUID, platform string) (bool, error) {
	all, err := f.ListByOwner(ctx, profileID, true)
	if err != nil {
		return false, err
	}
	for _, s := range all {
		if strings.EqualFold(s.Platform, platform) {
			return true, nil
		}
	}
	return false, nil
}

func newSocialUC() *socialUC.SocialNetworkUseCase {
	repo := &fakeSocialRepo{Repo: orderingtest.NewRepo[*social.SocialNetwork](nil)}
	return socialUC.NewSocialNetworkUseCase(repo, ordering.NewLocks(), service.NopInvalidator{}, logger.NewNop())
}

func TestCreateSocialNetwork_PlatformTaken(t *testing.T) {
	uc := newSocialUC()
	profileID := uuid.New()

	_, err := uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
		ProfileID: profileID, Platform: "GitHub", URL: "https://github.com/ada", OrderIndex: 0,
	})
	require.NoError(t, err)

	_, err = uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
		ProfileID: profileID, Platform: "github", URL: "https://github.com/ada2", OrderIndex: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestCreateSocialNetwork_OrderIndexTaken(t *testing.T) {
	uc := newSocialUC()
	profileID := uuid.New()

	_, err := uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
		ProfileID: profileID, Platform: "GitHub", URL: "https://github.com/ada", OrderIndex: 0,
	})
	require.NoError(t, err)

	_, err = uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
		ProfileID: profileID, Platform: "LinkedIn", URL: "https://linkedin.com/in/ada", OrderIndex: 0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrBusinessRule))
}

func TestGroupByPlatform(t *testing.T) {
	uc := newSocialUC()
	profileID := uuid.New()

	for i, platform := range []string{"GitHub", "LinkedIn", "Mastodon"} {
		_, err := uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
			ProfileID: profileID, Platform: platform,
			URL: "https://example.com/" + platform, OrderIndex: i,
		})
		require.NoError(t, err)
	}

	grouped, err := uc.GroupByPlatform(context.Background(), profileID)
	require.NoError(t, err)
	require.Len(t, grouped, 3)
	// One link per platform: uniqueness holds per profile.
	for _, links := range grouped {
		assert.Len(t, links, 1)
	}
	require.Contains(t, grouped, "GitHub")
	assert.Equal(t, "https://example.com/GitHub", grouped["GitHub"][0].URL)
}

func TestUpdateSocialNetwork_PlatformChange(t *testing.T) {
	uc := newSocialUC()
	profileID := uuid.New()

	gh, err := uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
		ProfileID: profileID, Platform: "GitHub", URL: "https://github.com/ada", OrderIndex: 0,
	})
	require.NoError(t, err)
	_, err = uc.CreateSocialNetwork(context.Background(), socialUC.CreateSocialNetworkInput{
		ProfileID: profileID, Platform: "LinkedIn", URL: "https://linkedin.com/in/ada", OrderIndex: 1,
	})
	require.NoError(t, err)

	taken := "LinkedIn"
	_, err = uc.UpdateSocialNetwork(context.Background(), socialUC.UpdateSocialNetworkInput{ID: gh.ID, Platform: &taken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	// Updating without touching the platform never trips the check.
	url := "https://github.com/lovelace"
	updated, err := uc.UpdateSocialNetwork(context.Background(), socialUC.UpdateSocialNetworkInput{ID: gh.ID, URL: &url})
	require.NoError(t, err)
	assert.Equal(t, url, updated.URL)
}
