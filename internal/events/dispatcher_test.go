package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventLookupPerformed, func(context.Context, Event) error {
		calls++
		return nil
	})
	d.Subscribe(EventLookupPerformed, func(context.Context, Event) error {
		calls++
		return errors.New("handler failure must not stop others")
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventLookupPerformed,
		Timestamp: time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventLookupPerformed, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventType("something_else")})

	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}
