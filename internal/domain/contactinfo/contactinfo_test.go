package contactinfo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactInformation(t *testing.T) {
	owner := uuid.New()
	phone := "+34 612 345 678"
	linked := "https://linkedin.com/in/someone"

	c, err := NewContactInformation(owner, "Someone@Example.com", &phone, &linked, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", c.Email)
	require.NotNil(t, c.Phone)
}

func TestNewContactInformationRejects(t *testing.T) {
	owner := uuid.New()

	_, err := NewContactInformation(owner, "", nil, nil, nil, nil)
	assert.Error(t, err)

	_, err = NewContactInformation(owner, "nope", nil, nil, nil, nil)
	assert.Error(t, err)

	badPhone := "letters"
	_, err = NewContactInformation(owner, "a@b.com", &badPhone, nil, nil, nil)
	assert.Error(t, err)

	badURL := "gopher://x"
	_, err = NewContactInformation(owner, "a@b.com", nil, nil, &badURL, nil)
	assert.Error(t, err)

	_, err = NewContactInformation(uuid.Nil, "a@b.com", nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	owner := uuid.New()
	c, err := NewContactInformation(owner, "a@b.com", nil, nil, nil, nil)
	require.NoError(t, err)

	email := "new@b.com"
	require.NoError(t, c.Apply(Update{Email: &email}))
	assert.Equal(t, "new@b.com", c.Email)

	// clearing the phone
	phone := "+1 234 567 890"
	require.NoError(t, c.Apply(Update{Phone: &phone, PhoneSet: true}))
	require.NotNil(t, c.Phone)
	require.NoError(t, c.Apply(Update{PhoneSet: true}))
	assert.Nil(t, c.Phone)
}
