// Package message holds the contact-message use cases: public submission plus
// the admin inbox. Status only advances pending -> read -> replied; repeated
// transitions are accepted as no-ops.
package message

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/adapters/event"
	"portfolio-api/internal/domain/message"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

// Publisher emits contact lifecycle events. Publishing is best effort; the
// use case logs failures and keeps going.
type Publisher interface {
	PublishContactEvent(ctx context.Context, payload event.ContactEventPayload) error
}

type MessageUseCase struct {
	repo      message.Repository
	publisher Publisher
	logger    logger.Logger
}

func NewMessageUseCase(repo message.Repository, publisher Publisher, log logger.Logger) *MessageUseCase {
	return &MessageUseCase{repo: repo, publisher: publisher, logger: log}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Message string
}

// SubmitMessage is the only unauthenticated write in the system.
func (uc *MessageUseCase) SubmitMessage(ctx context.Context, in SubmitMessageInput) (*message.ContactMessage, error) {
	m, err := message.NewContactMessage(in.Name, in.Email, in.Message)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	uc.publish(event.ContactEventTypeReceived, m)
	return m, nil
}

func (uc *MessageUseCase) GetMessage(ctx context.Context, id uuid.UUID) (*message.ContactMessage, error) {
	return uc.repo.FindByID(ctx, id)
}

// ListMessages returns every message, newest first. A non-empty status
// filters the inbox to that state.
func (uc *MessageUseCase) ListMessages(ctx context.Context, status string) ([]*message.ContactMessage, error) {
	if status == "" {
		return uc.repo.List(ctx, false)
	}
	parsed, err := message.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByStatus(ctx, parsed)
}

func (uc *MessageUseCase) RecentMessages(ctx context.Context, limit int) ([]*message.ContactMessage, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}
	return uc.repo.ListRecent(ctx, limit)
}

// MessageStats reports the inbox totals per status.
type MessageStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
}

func (uc *MessageUseCase) GetStats(ctx context.Context) (*MessageStats, error) {
	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := &MessageStats{
		Pending: counts[message.StatusPending],
		Read:    counts[message.StatusRead],
		Replied: counts[message.StatusReplied],
	}
	stats.Total = stats.Pending + stats.Read + stats.Replied
	return stats, nil
}

func (uc *MessageUseCase) MarkAsRead(ctx context.Context, id uuid.UUID) (*message.ContactMessage, error) {
	found, err := uc.repo.MarkAsRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("contact message", id.String())
	}
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publish(event.ContactEventTypeRead, m)
	return m, nil
}

func (uc *MessageUseCase) MarkAsReplied(ctx context.Context, id uuid.UUID) (*message.ContactMessage, error) {
	found, err := uc.repo.MarkAsReplied(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("contact message", id.String())
	}
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publish(event.ContactEventTypeReplied, m)
	return m, nil
}

func (uc *MessageUseCase) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("contact message", id.String())
	}
	uc.publish(event.ContactEventTypeDeleted, m)
	return nil
}

func (uc *MessageUseCase) publish(eventType string, m *message.ContactMessage) {
	if uc.publisher == nil {
		return
	}
	go func() {
		err := uc.publisher.PublishContactEvent(context.Background(), event.ContactEventPayload{
			EventType: eventType,
			MessageID: m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Status:    string(m.Status),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish contact event",
				zap.String("event_type", eventType),
				zap.String("message_id", m.ID.String()),
				zap.Error(err))
		}
	}()
}
