package event_test

import (
	"context"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/shared/constant"
	"hotel/shared/event"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	sent := make(chan kafka.Message, 1)

	client.EXPECT().
		SendMessages(gomock.Any(), event.BookingCanceled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent <- messages[0]

			return nil
		})

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), constant.ContextKeyUsername, "frontdesk"))
	event.NewPublisher(client).Publish(ctx, event.BookingCanceled, "b1", map[string]string{"id": "b1"})
	cancel()

	select {
	case msg := <-sent:
		assert.Equal(t, "b1", msg.Key)

		envelope, ok := msg.Value.(event.Envelope)
		require.True(t, ok)
		assert.Equal(t, event.BookingCanceled, envelope.Type)
		assert.Equal(t, "frontdesk", envelope.Actor)
		assert.Equal(t, map[string]string{"id": "b1"}, envelope.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}
