package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"hotel/infras/kafka"
	"hotel/shared"
	"hotel/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

const (
	BookingCreated            = "booking.created"
	BookingCanceled           = "booking.canceled"
	ServiceOrderStatusChanged = "service_order.status_changed"
)

type Envelope struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

type publisher struct {
	client kafka.Client
}

func NewPublisher(client kafka.Client) Publisher {
	return &publisher{client: client}
}

// Publish returns immediately; delivery failures are logged, never returned.
func (p *publisher) Publish(ctx context.Context, eventType, key string, payload any) {
	envelope := Envelope{
		Type:       eventType,
		Key:        key,
		Actor:      shared.Username(ctx),
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := p.client.SendMessages(c, eventType, kafka.Message{Key: key, Value: envelope}); err != nil {
			log.Error().Err(err).Str("event", eventType).Str("key", key).Msg("failed to publish event")
		}
	}()
}
