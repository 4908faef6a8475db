// Package observable provides a minimal reactive value container.
package observable

import "sync"

// Subscription identifies a registered callback.
type Subscription uint64

type subscriber[T any] struct {
	id Subscription
	fn func(T)
}

// Observable holds a value and notifies subscribers on every Set.
type Observable[T any] struct {
	mu          sync.Mutex
	value       T
	subscribers []subscriber[T]
	nextID      Subscription
}

// New creates an Observable holding initial.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores value and calls every current subscriber with it, in
// subscription order, before returning. Equal values are not deduplicated.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	subscribers := append([]subscriber[T](nil), o.subscribers...)
	o.mu.Unlock()

	for _, sub := range subscribers {
		sub.fn(value)
	}
}

// Subscribe registers fn for future Set calls. Subscribing the same
// function twice yields two subscriptions and two notifications per Set.
func (o *Observable[T]) Subscribe(fn func(T)) Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextID++
	o.subscribers = append(o.subscribers, subscriber[T]{id: o.nextID, fn: fn})
	return o.nextID
}

// Unsubscribe removes the subscription. Unknown handles are ignored.
func (o *Observable[T]) Unsubscribe(id Subscription) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, sub := range o.subscribers {
		if sub.id == id {
			o.subscribers = append(o.subscribers[:i:i], o.subscribers[i+1:]...)
			return
		}
	}
}

// Len reports the number of registered subscriptions.
func (o *Observable[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subscribers)
}
