package profile_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/service"
	profileUC "portfolio-api/internal/application/usecase/profile"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type fakeProfileRepo struct {
	stored *profile.Profile
}

func (f *fakeProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	f.stored = p
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	f.stored = p
	return nil
}

func (f *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if f.stored == nil || f.stored.ID != id {
		return false, nil
	}
	f.stored = nil
	return true, nil
}

func (f *fakeProfileRepo) GetProfile(context.Context) (*profile.Profile, error) {
	return f.stored, nil
}

func (f *fakeProfileRepo) ProfileExists(context.Context) (bool, error) {
	return f.stored != nil, nil
}

type staticCounter int

func (c staticCounter) Count(context.Context, uuid.UUID) (int, error) { return int(c), nil }

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader, _, _ string) (string, error) {
	return f.url, f.err
}

func (f *fakeUploader) Delete(context.Context, string) error { return nil }

func newProfileUC(repo *fakeProfileRepo, children map[string]profileUC.Counter, up *fakeUploader) *profileUC.ProfileUseCase {
	if up == nil {
		up = &fakeUploader{}
	}
	return profileUC.NewProfileUseCase(repo, children, up, service.NopInvalidator{}, logger.NewNop())
}

func TestCreateProfile_Singleton(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newProfileUC(repo, nil, nil)

	created, err := uc.CreateProfile(context.Background(), profileUC.CreateProfileInput{
		Name:     "Ada Lovelace",
		Headline: "Software Engineer",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.stored)

	_, err = uc.CreateProfile(context.Background(), profileUC.CreateProfileInput{
		Name:     "Someone Else",
		Headline: "Also an Engineer",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
	assert.Equal(t, created.ID, repo.stored.ID)
}

func TestGetProfile_Empty(t *testing.T) {
	uc := newProfileUC(&fakeProfileRepo{}, nil, nil)

	_, err := uc.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newProfileUC(repo, nil, nil)

	_, err := uc.CreateProfile(context.Background(), profileUC.CreateProfileInput{
		Name:     "Ada Lovelace",
		Headline: "Software Engineer",
	})
	require.NoError(t, err)

	headline := "Principal Engineer"
	updated, err := uc.UpdateProfile(context.Background(), profileUC.UpdateProfileInput{Headline: &headline})
	require.NoError(t, err)
	assert.Equal(t, "Principal Engineer", updated.Headline)
	assert.Equal(t, "Ada Lovelace", updated.Name)
}

func TestDeleteProfile_RefusedWithChildren(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newProfileUC(repo, map[string]profileUC.Counter{
		"skills":   staticCounter(3),
		"projects": staticCounter(0),
	}, nil)

	_, err := uc.CreateProfile(context.Background(), profileUC.CreateProfileInput{
		Name:     "Ada Lovelace",
		Headline: "Software Engineer",
	})
	require.NoError(t, err)

	err = uc.DeleteProfile(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrBusinessRule))
	assert.NotNil(t, repo.stored)
}

func TestDeleteProfile_EmptyCollections(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newProfileUC(repo, map[string]profileUC.Counter{
		"skills": staticCounter(0),
	}, nil)

	_, err := uc.CreateProfile(context.Background(), profileUC.CreateProfileInput{
		Name:     "Ada Lovelace",
		Headline: "Software Engineer",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProfile(context.Background()))
	assert.Nil(t, repo.stored)
}

func TestUpdateAvatar(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newProfileUC(repo, nil, &fakeUploader{url: "https://cdn.example.com/avatar.png"})

	_, err := uc.CreateProfile(context.Background(), profileUC.CreateProfileInput{
		Name:     "Ada Lovelace",
		Headline: "Software Engineer",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateAvatar(context.Background(), profileUC.UpdateAvatarInput{
		File:     strings.NewReader("fake image bytes"),
		Filename: "avatar.png",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/avatar.png", *updated.AvatarURL)
}
