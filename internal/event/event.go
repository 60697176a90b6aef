// Package event defines the lifecycle notifications raised while a project
// command runs, and a synchronous bus that delivers them to observers.
//
// Every toolchain invocation produces Started, then either Output followed
// by Completed, or a single Error. Observers are called on the goroutine
// that emits, in subscription order, before the emitting step continues.
package event

import "sync"

// Kind identifies one of the four lifecycle notifications.
type Kind int

const (
	// Started is raised with the command line before the process launches.
	Started Kind = iota
	// Output is raised with the captured standard output of a successful command.
	Output
	// Error is raised with a human-readable failure message.
	Error
	// Completed is raised with the command line after a successful command.
	Completed
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Started:
		return "started"
	case Output:
		return "output"
	case Error:
		return "error"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is a single notification. Text is the only payload.
type Event struct {
	Kind Kind
	Text string
}

// Observer receives events. Implementations must not block indefinitely.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls f(e).
func (f ObserverFunc) Notify(e Event) { f(e) }

// Emitter is the producing side of the contract.
type Emitter interface {
	Emit(kind Kind, text string)
}

type subscription struct {
	id       int
	observer Observer
}

// Bus fans events out to subscribed observers. The zero value is ready to
// use, and a nil *Bus discards everything.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers o and returns a function that removes it.
func (b *Bus) Subscribe(o Observer) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription{id: id, observer: o})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers an event to every observer synchronously.
func (b *Bus) Emit(kind Kind, text string) {
	if b == nil {
		return
	}

	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	e := Event{Kind: kind, Text: text}
	for _, s := range subs {
		s.observer.Notify(e)
	}
}
