package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"portfolio-api/internal/config"
)

const (
	TopicContactEvents = "contact.events"
)

const (
	ContactEventTypeReceived = "contact.received"
	ContactEventTypeRead     = "contact.read"
	ContactEventTypeReplied  = "contact.replied"
	ContactEventTypeDeleted  = "contact.deleted"
)

// ContactEventPayload is the wire format on the contact.events topic. The
// message ID keys the Kafka message so events for one message stay ordered.
type ContactEventPayload struct {
	EventType  string    `json:"event_type"`
	MessageID  uuid.UUID `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ContactEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ContactEventsWriter: contactWriter}, nil
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload ContactEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}

	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.MessageID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
}
