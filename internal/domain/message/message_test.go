package message

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactMessage(t *testing.T) {
	m, err := NewContactMessage("J", "J@X.com", "Hello, this is a test of the contact form.")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, m.Status)
	assert.Equal(t, "j@x.com", m.Email)
	assert.Nil(t, m.ReadAt)
	assert.Nil(t, m.RepliedAt)
}

func TestNewContactMessageRejects(t *testing.T) {
	_, err := NewContactMessage("", "j@x.com", "long enough message body")
	assert.Error(t, err)

	_, err = NewContactMessage("J", "nope", "long enough message body")
	assert.Error(t, err)

	_, err = NewContactMessage("J", "j@x.com", "too short")
	assert.Error(t, err)

	_, err = NewContactMessage("J", "j@x.com", strings.Repeat("m", 2001))
	assert.Error(t, err)

	// exact bounds are accepted
	_, err = NewContactMessage("J", "j@x.com", strings.Repeat("m", 10))
	assert.NoError(t, err)
	_, err = NewContactMessage("J", "j@x.com", strings.Repeat("m", 2000))
	assert.NoError(t, err)
}

func TestStatusMachine(t *testing.T) {
	m, err := NewContactMessage("J", "j@x.com", "Hello, this is a test of the contact form.")
	require.NoError(t, err)
	now := time.Now().UTC()

	assert.True(t, m.MarkAsRead(now))
	assert.Equal(t, StatusRead, m.Status)
	require.NotNil(t, m.ReadAt)
	assert.Nil(t, m.RepliedAt)

	// repeated read is a no-op
	later := now.Add(time.Minute)
	assert.False(t, m.MarkAsRead(later))
	assert.Equal(t, now, *m.ReadAt)

	assert.True(t, m.MarkAsReplied(later))
	assert.Equal(t, StatusReplied, m.Status)
	require.NotNil(t, m.RepliedAt)

	// terminal state: nothing moves
	assert.False(t, m.MarkAsReplied(later.Add(time.Minute)))
	assert.False(t, m.MarkAsRead(later.Add(time.Minute)))
	assert.Equal(t, StatusReplied, m.Status)
}

func TestReplyFromPendingSetsBothTimestamps(t *testing.T) {
	m, err := NewContactMessage("J", "j@x.com", "Hello, this is a test of the contact form.")
	require.NoError(t, err)
	now := time.Now().UTC()

	assert.True(t, m.MarkAsReplied(now))
	require.NotNil(t, m.ReadAt)
	require.NotNil(t, m.RepliedAt)
	assert.Equal(t, StatusReplied, m.Status)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Pending ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	_, err = ParseStatus("archived")
	assert.Error(t, err)
}
