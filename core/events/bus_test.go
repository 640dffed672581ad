package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(func(e Event) { got = append(got, "first:"+e.Name) })
	bus.Subscribe(func(e Event) { got = append(got, "second:"+e.Name) })

	bus.Publish(Event{Name: FragmentInserted})

	assert.Equal(t, []string{"first:componentLoaded", "second:componentLoaded"}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0

	unsubscribe := bus.Subscribe(func(Event) { calls++ })
	bus.Publish(Event{Name: "a"})
	unsubscribe()
	unsubscribe()
	bus.Publish(Event{Name: "b"})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	late := 0

	bus.Subscribe(func(Event) {
		bus.Subscribe(func(Event) { late++ })
	})

	bus.Publish(Event{Name: "a"})
	assert.Equal(t, 0, late)

	bus.Publish(Event{Name: "b"})
	assert.Equal(t, 1, late)
}

func TestBus_NilPublish(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Publish(Event{Name: "a"}) })
}
