package events

import "sync"

// FragmentInserted is published after a fragment has been placed in a document.
const FragmentInserted = "componentLoaded"

// Event is a named notification with no payload.
type Event struct {
	Name string
}

// Listener receives published events.
type Listener func(Event)

type subscription struct {
	id       uint64
	listener Listener
}

// Bus fans events out to its subscribers. The zero value is ready to use.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers l and returns a function that removes it again.
func (b *Bus) Subscribe(l Listener) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, listener: l})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish delivers e to every subscriber on the calling goroutine. Publish
// may be called from several goroutines at once, so listeners must be safe
// for concurrent use. Listeners may subscribe or unsubscribe from within a
// callback; such changes apply to the next Publish.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.listener(e)
	}
}

// Len returns the number of current subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
