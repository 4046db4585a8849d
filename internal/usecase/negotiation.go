package usecase

import (
	"sync"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"

	"github.com/google/uuid"
)

// ActiveBid is the value held in an order's single bid slot.
type ActiveBid struct {
	RoomBookingID uuid.UUID
	Amount        float64
	Status        entity.BidStatus
}

// NegotiationSession owns the one active-bid slot of an order. Every room
// card reads the slot; only the negotiation owner writes it. Subscribers are
// told about every slot change, including clears.
type NegotiationSession struct {
	mu     sync.RWMutex
	active *ActiveBid
	subs   map[int]func(*ActiveBid)
	nextID int
}

func NewNegotiationSession() *NegotiationSession {
	return &NegotiationSession{
		subs: make(map[int]func(*ActiveBid)),
	}
}

func (n *NegotiationSession) Get() *ActiveBid {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.active == nil {
		return nil
	}
	copied := *n.active
	return &copied
}

func (n *NegotiationSession) Set(bid ActiveBid) {
	n.mu.Lock()
	n.active = &bid
	subs := n.snapshot()
	n.mu.Unlock()

	for _, fn := range subs {
		fn(&bid)
	}
}

func (n *NegotiationSession) Clear() {
	n.mu.Lock()
	n.active = nil
	subs := n.snapshot()
	n.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers fn for slot changes and returns a cancel func.
func (n *NegotiationSession) Subscribe(fn func(*ActiveBid)) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// snapshot copies subscribers under the held lock so callbacks run outside it.
func (n *NegotiationSession) snapshot() []func(*ActiveBid) {
	subs := make([]func(*ActiveBid), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	return subs
}

// NegotiationRegistry hands out one NegotiationSession per order, shared by
// every consumer of that order's bid slot.
type NegotiationRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*NegotiationSession
}

func NewNegotiationRegistry() *NegotiationRegistry {
	return &NegotiationRegistry{
		sessions: make(map[uuid.UUID]*NegotiationSession),
	}
}

func (r *NegotiationRegistry) ForOrder(orderID uuid.UUID) *NegotiationSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[orderID]
	if !ok {
		session = NewNegotiationSession()
		r.sessions[orderID] = session
	}
	return session
}
