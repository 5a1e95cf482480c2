package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"portfolio-api/adapters/event"
	"portfolio-api/internal/config"
)

// The worker tails contact events and writes them to the process log. It is
// the attachment point for notification delivery (email, chat webhooks).
func main() {
	fmt.Println("Starting Portfolio Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	contactConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-notifier-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contactConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContactEvents)

	ctx := context.Background()
	for {
		msg, err := contactConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contactConsumer, msg)
			continue
		}

		log.Printf("Contact event [%s] message=%s from=%s <%s> status=%s",
			payload.EventType, payload.MessageID, payload.Name, payload.Email, payload.Status)

		commitMessage(contactConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
