package realtime

import (
	"encoding/json"
	"sync"
)

// Broadcast event names.
const (
	EventNewProposal  = "new_proposal"
	EventOrderUpdated = "order_updated"
)

// BroadcastEvent is a named in-process message scoped to one order. It is
// the direct delivery path; the same logical change usually also arrives via
// the database row-change channel, so consumers must upsert, never append.
type BroadcastEvent struct {
	Name    string          `json:"name"`
	OrderID string          `json:"order_id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Broadcaster is a process-local fanout of broadcast events.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[int]func(BroadcastEvent)
	nextID int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[int]func(BroadcastEvent)),
	}
}

func (b *Broadcaster) Publish(event BroadcastEvent) {
	b.mu.RLock()
	subs := make([]func(BroadcastEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(event)
	}
}

// Subscribe registers fn for every published event and returns a cancel func.
func (b *Broadcaster) Subscribe(fn func(BroadcastEvent)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}
