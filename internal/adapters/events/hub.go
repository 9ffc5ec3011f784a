// Package events fans view events out to connected clients.
package events

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/gridview/internal/core/domain"
)

// Event types delivered to clients.
const (
	TypeShowData        = "show_data"
	TypeDataViewChanged = "data_view_changed"
)

// DefaultBufferSize is the number of events a subscriber may fall behind by.
const DefaultBufferSize = 64

// Event is one client event.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub implements ports.Notifier by broadcasting to subscribers.
//
// Publishing never blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	bufferSize int

	mu   sync.Mutex
	subs map[chan Event]struct{}

	dropped atomic.Uint64
}

// NewHub creates a Hub whose subscribers buffer bufferSize events.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		bufferSize: bufferSize,
		subs:       make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber. The returned function unsubscribes
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.bufferSize)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of current subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// ShowData asks clients to open a view.
func (h *Hub) ShowData(item domain.DataItem) {
	h.publish(Event{Type: TypeShowData, Payload: item})
}

// DataViewChanged tells clients that the object behind a view changed.
func (h *Hub) DataViewChanged(change domain.ViewChange) {
	h.publish(Event{Type: TypeDataViewChanged, Payload: change})
}

func (h *Hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.dropped.Add(1)
		}
	}
}
