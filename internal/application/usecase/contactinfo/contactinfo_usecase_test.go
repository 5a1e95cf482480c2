package contactinfo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/service"
	contactUC "portfolio-api/internal/application/usecase/contactinfo"
	"portfolio-api/internal/domain/contactinfo"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type fakeContactRepo struct {
	items map[uuid.UUID]*contactinfo.ContactInformation
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{items: make(map[uuid.UUID]*contactinfo.ContactInformation)}
}

func (f *fakeContactRepo) Save(_ context.Context, c *contactinfo.ContactInformation) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeContactRepo) Update(_ context.Context, c *contactinfo.ContactInformation) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id uuid.UUID) (*contactinfo.ContactInformation, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, apperror.NewNotFound("contact information", id.String())
	}
	return c, nil
}

func (f *fakeContactRepo) GetByProfileID(_ context.Context, profileID uuid.UUID) (*contactinfo.ContactInformation, error) {
	for _, c := range f.items {
		if c.ProfileID == profileID {
			return c, nil
		}
	}
	return nil, nil
}

func newContactUC() *contactUC.ContactInfoUseCase {
	return contactUC.NewContactInfoUseCase(newFakeContactRepo(), service.NopInvalidator{}, logger.NewNop())
}

func TestCreateContactInfo_OnePerProfile(t *testing.T) {
	uc := newContactUC()
	profileID := uuid.New()

	_, err := uc.CreateContactInfo(context.Background(), contactUC.CreateContactInfoInput{
		ProfileID: profileID, Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = uc.CreateContactInfo(context.Background(), contactUC.CreateContactInfoInput{
		ProfileID: profileID, Email: "other@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestCreateContactInfo_NormalizesEmail(t *testing.T) {
	uc := newContactUC()

	c, err := uc.CreateContactInfo(context.Background(), contactUC.CreateContactInfoInput{
		ProfileID: uuid.New(), Email: "  Ada@Example.COM ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", c.Email)
}

func TestUpdateContactInfo_ClearPhone(t *testing.T) {
	uc := newContactUC()
	profileID := uuid.New()

	phone := "+44 20 7946 0958"
	_, err := uc.CreateContactInfo(context.Background(), contactUC.CreateContactInfoInput{
		ProfileID: profileID, Email: "ada@example.com", Phone: &phone,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateContactInfo(context.Background(), contactUC.UpdateContactInfoInput{
		ProfileID: profileID,
		Update:    contactinfo.Update{PhoneSet: true, Phone: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Phone)
}

func TestGetContactInfo_Missing(t *testing.T) {
	uc := newContactUC()

	_, err := uc.GetContactInfo(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteContactInfo(t *testing.T) {
	uc := newContactUC()
	profileID := uuid.New()

	_, err := uc.CreateContactInfo(context.Background(), contactUC.CreateContactInfoInput{
		ProfileID: profileID, Email: "ada@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteContactInfo(context.Background(), profileID))

	err = uc.DeleteContactInfo(context.Background(), profileID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
