// Package events is a typed, synchronous event bus. It replaces the
// process-wide show/hide/toggle hooks the UI used to reach through.
package events

import (
	"reflect"
	"sync"
)

// Select asks the orchestrator to focus a building.
type Select struct {
	ID string
}

// Dismiss asks the orchestrator to hide the panel and clear the highlight.
type Dismiss struct{}

// ShowPanel asks the panel controller to show a building's info panel.
type ShowPanel struct {
	ID string
}

// HidePanel asks the panel controller to fade out the live panel.
type HidePanel struct{}

// ToggleIcons shows or hides every building icon.
type ToggleIcons struct {
	Visible bool
}

// TourFinished is published when a non-looping tour or a jump completes.
type TourFinished struct {
	ViewpointID string
}

type subscriber struct {
	id uint64
	fn func(any)
}

// Bus delivers events to subscribers of the event's concrete type, in
// subscription order, on the publisher's goroutine.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[reflect.Type][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[reflect.Type][]subscriber)}
}

// Subscribe registers fn for events of type T. The returned function
// removes the subscription and is safe to call more than once.
func Subscribe[T any](b *Bus, fn func(T)) (unsubscribe func()) {
	key := reflect.TypeOf((*T)(nil)).Elem()

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[key] = append(b.subs[key], subscriber{
		id: id,
		fn: func(ev any) { fn(ev.(T)) },
	})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			list := b.subs[key]
			for i, s := range list {
				if s.id == id {
					b.subs[key] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish delivers ev to every current subscriber of T. It reports how
// many subscribers received it.
func Publish[T any](b *Bus, ev T) int {
	key := reflect.TypeOf((*T)(nil)).Elem()

	b.mu.Lock()
	list := append([]subscriber(nil), b.subs[key]...)
	b.mu.Unlock()

	for _, s := range list {
		s.fn(ev)
	}
	return len(list)
}

// Subscribers returns the number of subscribers for T.
func Subscribers[T any](b *Bus) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[reflect.TypeOf((*T)(nil)).Elem()])
}
