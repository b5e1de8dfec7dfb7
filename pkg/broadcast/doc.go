// Package broadcast provides type-safe one-to-many message delivery.
//
//	b := broadcast.NewMemoryBroadcaster[string](10)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//	msg := <-sub.Receive(ctx)
//
// Broadcast never blocks: each subscriber owns a buffered channel and a
// message that does not fit is dropped for that subscriber, which is then
// unsubscribed. Subscriptions end when their context is cancelled, when
// Close is called on them, or when the broadcaster is closed.
package broadcast
