package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gridview/internal/adapters/events"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
)

var _ ports.Notifier = (*events.Hub)(nil)

func TestHub_Broadcast(t *testing.T) {
	hub := events.NewHub(4)
	a, unsubA := hub.Subscribe()
	defer unsubA()
	b, unsubB := hub.Subscribe()
	defer unsubB()

	change := domain.ViewChange{CacheKey: "K1", StructureChanged: true}
	hub.DataViewChanged(change)

	for _, ch := range []<-chan events.Event{a, b} {
		ev := <-ch
		assert.Equal(t, events.TypeDataViewChanged, ev.Type)
		assert.Equal(t, change, ev.Payload)
	}
}

func TestHub_ShowData(t *testing.T) {
	hub := events.NewHub(1)
	ch, unsub := hub.Subscribe()
	defer unsub()

	item := domain.DataItem{Caption: "Fruit", CacheKey: "K1"}
	hub.ShowData(item)

	ev := <-ch
	assert.Equal(t, events.TypeShowData, ev.Type)
	assert.Equal(t, item, ev.Payload)
}

func TestHub_FullSubscriberMissesEvents(t *testing.T) {
	hub := events.NewHub(1)
	ch, unsub := hub.Subscribe()
	defer unsub()

	hub.DataViewChanged(domain.ViewChange{CacheKey: "first"})
	hub.DataViewChanged(domain.ViewChange{CacheKey: "second"})

	ev := <-ch
	assert.Equal(t, "first", ev.Payload.(domain.ViewChange).CacheKey)
	assert.Equal(t, uint64(1), hub.Dropped())
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := events.NewHub(0)
	ch, unsub := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	unsub()
	unsub()
	assert.Zero(t, hub.Subscribers())

	_, open := <-ch
	assert.False(t, open)

	// Publishing without subscribers is a no-op.
	hub.ShowData(domain.DataItem{})
	assert.Zero(t, hub.Dropped())
}
