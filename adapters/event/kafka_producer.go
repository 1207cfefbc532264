package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/vere-app/vere/internal/config"
)

const (
	TopicViewEvents  = "view.events"
	TopicThemeEvents = "theme.events"
)

const (
	ThemeEventTypeCreated   = "created"
	ThemeEventTypeApplied   = "applied"
	ThemeEventTypePublished = "published"
)

type ViewEventPayload struct {
	ProfileID      uuid.UUID `json:"profile_id"`
	ViewerUsername string    `json:"viewer_username"`
	Timestamp      time.Time `json:"timestamp"`
}

type ThemeEventPayload struct {
	EventType string    `json:"event_type"`
	ThemeID   string    `json:"theme_id"`
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	AuthorID  uuid.UUID `json:"author_id,omitempty"`
}

type KafkaProducerClient struct {
	ViewEventsWriter  *kafka.Writer
	ThemeEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'view.events'
	viewWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicViewEvents,
		Balancer: &kafka.LeastBytes{},
	}

	// writer 'theme.events'
	themeWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicThemeEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ViewEventsWriter:  viewWriter,
		ThemeEventsWriter: themeWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishViewEvent(ctx context.Context, payload ViewEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal view event failed: %w", err)
	}
	return c.ViewEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ProfileID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishThemeEvent(ctx context.Context, payload ThemeEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal theme event failed: %w", err)
	}
	return c.ThemeEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ThemeID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ViewEventsWriter != nil {
		c.ViewEventsWriter.Close()
	}
	if c.ThemeEventsWriter != nil {
		c.ThemeEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}
