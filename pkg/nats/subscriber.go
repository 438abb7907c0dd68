package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"review-agent-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler processes one event. Returning an error NAKs the message.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber listens for events on the NATS bus with durable consumers.
type Subscriber struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js}, nil
}

// Subscribe registers a durable consumer for a subject pattern relative to the
// event prefix ("*" matches every event type).
func (s *Subscriber) Subscribe(subjectSuffix string, durableName string, handler EventHandler) error {
	ctx := context.Background()

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, streamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subjectPrefix + subjectSuffix,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	_, err = consumer.Consume(func(msg jetstream.Msg) {
		var envelope struct {
			Type       string                 `json:"type"`
			OccurredAt string                 `json:"occurredAt"`
			Payload    map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(msg.Data(), &envelope); err != nil {
			log.Printf("error unmarshalling event data: %v", err)
			msg.Nak()
			return
		}

		occurredAt, err := time.Parse(time.RFC3339, envelope.OccurredAt)
		if err != nil {
			occurredAt = time.Now()
		}
		event := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: occurredAt,
		}

		if err := handler(context.Background(), event); err != nil {
			log.Printf("event handler failed for %s: %v", event.Type, err)
			msg.Nak()
			return
		}
		msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	return nil
}

// Close closes the NATS connection.
func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
