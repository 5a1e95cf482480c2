package message_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/adapters/event"
	messageUC "portfolio-api/internal/application/usecase/message"
	"portfolio-api/internal/domain/message"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type fakeMessageRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*message.ContactMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{items: make(map[uuid.UUID]*message.ContactMessage)}
}

func (f *fakeMessageRepo) Save(_ context.Context, m *message.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[m.ID] = m
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeMessageRepo) FindByID(_ context.Context, id uuid.UUID) (*message.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return nil, apperror.NewNotFound("contact message", id.String())
	}
	return m, nil
}

func (f *fakeMessageRepo) sorted(ascending bool) []*message.ContactMessage {
	out := make([]*message.ContactMessage, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out
}

func (f *fakeMessageRepo) List(_ context.Context, ascending bool) ([]*message.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(ascending), nil
}

func (f *fakeMessageRepo) ListByStatus(_ context.Context, status message.Status) ([]*message.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*message.ContactMessage
	for _, m := range f.sorted(false) {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListRecent(_ context.Context, limit int) ([]*message.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.sorted(false)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMessageRepo) CountByStatus(context.Context) (map[message.Status]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[message.Status]int)
	for _, m := range f.items {
		counts[m.Status]++
	}
	return counts, nil
}

func (f *fakeMessageRepo) MarkAsRead(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return false, nil
	}
	m.MarkAsRead(time.Now().UTC())
	return true, nil
}

func (f *fakeMessageRepo) MarkAsReplied(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return false, nil
	}
	m.MarkAsReplied(time.Now().UTC())
	return true, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.ContactEventPayload
}

func (r *recordingPublisher) PublishContactEvent(_ context.Context, payload event.ContactEventPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, payload)
	return nil
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType
	}
	return out
}

func (r *recordingPublisher) waitFor(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		got := len(r.events)
		r.mu.Unlock()
		if got >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d published events", n)
}

func newMessageUC() (*messageUC.MessageUseCase, *fakeMessageRepo, *recordingPublisher) {
	repo := newFakeMessageRepo()
	pub := &recordingPublisher{}
	return messageUC.NewMessageUseCase(repo, pub, logger.NewNop()), repo, pub
}

func TestSubmitMessage(t *testing.T) {
	uc, _, pub := newMessageUC()

	m, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "I would like to discuss a role on our compiler team.",
	})
	require.NoError(t, err)
	assert.Equal(t, message.StatusPending, m.Status)
	assert.Nil(t, m.ReadAt)

	pub.waitFor(t, 1)
	assert.Equal(t, []string{event.ContactEventTypeReceived}, pub.types())
}

func TestSubmitMessage_TooShort(t *testing.T) {
	uc, _, _ := newMessageUC()

	_, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "hi",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestMarkAsRead_ThenReplied(t *testing.T) {
	uc, _, pub := newMessageUC()

	m, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "I would like to discuss a role on our compiler team.",
	})
	require.NoError(t, err)

	read, err := uc.MarkAsRead(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusRead, read.Status)
	require.NotNil(t, read.ReadAt)

	replied, err := uc.MarkAsReplied(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusReplied, replied.Status)
	require.NotNil(t, replied.RepliedAt)

	// Marking read again is a no-op, never a regression.
	again, err := uc.MarkAsRead(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusReplied, again.Status)

	pub.waitFor(t, 4)
}

func TestMarkAsReplied_StampsReadAt(t *testing.T) {
	uc, _, _ := newMessageUC()

	m, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "I would like to discuss a role on our compiler team.",
	})
	require.NoError(t, err)

	replied, err := uc.MarkAsReplied(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusReplied, replied.Status)
	require.NotNil(t, replied.ReadAt)
	require.NotNil(t, replied.RepliedAt)
}

func TestMarkAsRead_Missing(t *testing.T) {
	uc, _, _ := newMessageUC()

	_, err := uc.MarkAsRead(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestGetStats(t *testing.T) {
	uc, _, _ := newMessageUC()

	ids := make([]uuid.UUID, 0, 3)
	for _, body := range []string{
		"First message asking about availability for contract work.",
		"Second message following up on the first one.",
		"Third message about a conference talk invitation.",
	} {
		m, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
			Name: "Grace", Email: "grace@example.com", Message: body,
		})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	_, err := uc.MarkAsRead(context.Background(), ids[0])
	require.NoError(t, err)
	_, err = uc.MarkAsReplied(context.Background(), ids[1])
	require.NoError(t, err)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Read)
	assert.Equal(t, 1, stats.Replied)
}

func TestListMessages_StatusFilter(t *testing.T) {
	uc, _, _ := newMessageUC()

	m, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name: "Grace", Email: "grace@example.com",
		Message: "A message that will be read straight away by the admin.",
	})
	require.NoError(t, err)
	_, err = uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name: "Grace", Email: "grace@example.com",
		Message: "A message that will stay pending in the inbox for now.",
	})
	require.NoError(t, err)

	_, err = uc.MarkAsRead(context.Background(), m.ID)
	require.NoError(t, err)

	pending, err := uc.ListMessages(context.Background(), "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := uc.ListMessages(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.ListMessages(context.Background(), "archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestDeleteMessage(t *testing.T) {
	uc, repo, pub := newMessageUC()

	m, err := uc.SubmitMessage(context.Background(), messageUC.SubmitMessageInput{
		Name: "Grace", Email: "grace@example.com",
		Message: "A message that is about to be removed from the inbox.",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteMessage(context.Background(), m.ID))
	assert.Empty(t, repo.items)

	err = uc.DeleteMessage(context.Background(), m.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	pub.waitFor(t, 2)
}
