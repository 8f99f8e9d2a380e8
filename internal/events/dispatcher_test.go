package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_FanOut(t *testing.T) {
	d := NewInMemoryDispatcher()

	var first, second int
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		first++
		return nil
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		second++
		return nil
	})
	d.Subscribe(EventPasswordResetRequested, func(_ context.Context, _ Event) error {
		t.Fatal("handler for unrelated event type invoked")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserRegistered})
	assert.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var delivered bool
	d.Subscribe(EventPasswordResetCompleted, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventPasswordResetCompleted, func(_ context.Context, _ Event) error {
		delivered = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventPasswordResetCompleted})
	assert.NoError(t, err)
	assert.True(t, delivered)
}
