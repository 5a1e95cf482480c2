// Package message models inbound contact-form messages. Messages are
// append-only: content is never rewritten, only the status advances along
// pending -> read -> replied.
package message

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/apperror"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusRead, StatusReplied:
		return s, nil
	}
	return "", apperror.NewValidation("status", "unknown status: "+raw)
}

const (
	maxNameLength    = 100
	minMessageLength = 10
	maxMessageLength = 2000
)

type ContactMessage struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	Status    Status     `json:"status"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewContactMessage(name, email, body string) (*ContactMessage, error) {
	now := time.Now().UTC()
	m := &ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Message:   body,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MarkAsRead advances pending -> read. Calling it at or past read is an
// idempotent no-op; the returned bool reports whether anything changed.
func (m *ContactMessage) MarkAsRead(now time.Time) bool {
	if m.Status != StatusPending {
		return false
	}
	m.Status = StatusRead
	m.ReadAt = &now
	m.UpdatedAt = now
	return true
}

// MarkAsReplied advances to the terminal replied state, setting read_at on
// the way if the message was never read. Idempotent once replied.
func (m *ContactMessage) MarkAsReplied(now time.Time) bool {
	if m.Status == StatusReplied {
		return false
	}
	if m.ReadAt == nil {
		m.ReadAt = &now
	}
	m.Status = StatusReplied
	m.RepliedAt = &now
	m.UpdatedAt = now
	return true
}

func (m *ContactMessage) validate() error {
	if err := collection.RequireText("name", m.Name, maxNameLength); err != nil {
		return err
	}
	email, err := value.NewEmail(m.Email)
	if err != nil {
		return err
	}
	m.Email = email.String()
	return collection.BoundedText("message", m.Message, minMessageLength, maxMessageLength)
}

type Repository interface {
	Save(ctx context.Context, m *ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ContactMessage, error)
	// List returns all messages, newest first unless ascending is set.
	List(ctx context.Context, ascending bool) ([]*ContactMessage, error)
	ListByStatus(ctx context.Context, status Status) ([]*ContactMessage, error)
	// ListRecent returns at most limit messages, newest first.
	ListRecent(ctx context.Context, limit int) ([]*ContactMessage, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
	// MarkAsRead and MarkAsReplied update status and the corresponding
	// timestamp atomically; both report false when the message is absent
	// and succeed as no-ops on already-advanced messages.
	MarkAsRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAsReplied(ctx context.Context, id uuid.UUID) (bool, error)
}
