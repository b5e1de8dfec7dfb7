package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/broadcast"
)

func TestMemoryBroadcaster(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every subscriber", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](4)
		defer b.Close()

		ctx := context.Background()
		first := b.Subscribe(ctx)
		second := b.Subscribe(ctx)
		require.Equal(t, 2, b.Len())

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 7}))

		assert.Equal(t, 7, (<-first.Receive(ctx)).Data)
		assert.Equal(t, 7, (<-second.Receive(ctx)).Data)
	})

	t.Run("drops slow subscribers", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 2}))
		assert.Equal(t, 0, b.Len())

		msg, ok := <-sub.Receive(ctx)
		require.True(t, ok)
		assert.Equal(t, 1, msg.Data)
		_, ok = <-sub.Receive(ctx)
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[string](4)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()
		b.Wait()

		assert.Equal(t, 0, b.Len())
		select {
		case _, ok := <-sub.Receive(context.Background()):
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("subscriber channel was not closed")
		}
	})

	t.Run("closed subscriber is removed on next broadcast", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[string](4)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "x"}))
		assert.Equal(t, 0, b.Len())
	})

	t.Run("close ends subscriptions", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[string](0)
		ctx := context.Background()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Close())
		require.NoError(t, b.Close())

		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)

		late := b.Subscribe(ctx)
		_, ok = <-late.Receive(ctx)
		assert.False(t, ok)

		assert.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "ignored"}))
	})
}
