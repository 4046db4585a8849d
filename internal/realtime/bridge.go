package realtime

import (
	"encoding/json"
	"sync"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BroadcastSource delivers direct broadcast events.
type BroadcastSource interface {
	Subscribe(fn func(BroadcastEvent)) func()
}

// RowChangeSource delivers database row-change payloads.
type RowChangeSource interface {
	Subscribe(fn func(repository.ProposalChangePayload)) func()
}

type ProposalHandler func(entity.Proposal)

type OrderUpdateHandler func(event BroadcastEvent)

// Bridge merges the two delivery paths for one order into a single
// new-proposal callback and a separate order-update callback. The same
// logical proposal may arrive on both paths and in any order, so deliveries
// are reduced through an upsert keyed by proposal id: a proposal is passed
// to the handler only when it is unseen or strictly newer (by updated_at
// when both sides carry one, else by arrival).
//
// Each concern holds at most one active subscription per process; calling
// subscribe again tears the previous one down first. UnsubscribeAll is the
// only teardown across concerns and must be called on shutdown.
type Bridge struct {
	broadcast BroadcastSource
	rows      RowChangeSource
	log       *zap.Logger

	mu        sync.Mutex
	proposals *proposalSubscription
	orders    *orderSubscription
}

type proposalSubscription struct {
	orderID uuid.UUID
	handler ProposalHandler
	cancels []func()

	mu   sync.Mutex
	seen map[uuid.UUID]entity.Proposal
}

type orderSubscription struct {
	orderID uuid.UUID
	handler OrderUpdateHandler
	cancel  func()
}

func NewBridge(broadcast BroadcastSource, rows RowChangeSource, log *zap.Logger) *Bridge {
	return &Bridge{
		broadcast: broadcast,
		rows:      rows,
		log:       log.With(zap.String("component", "realtime_bridge")),
	}
}

// SubscribeProposals replaces any previous proposal subscription.
func (b *Bridge) SubscribeProposals(orderID uuid.UUID, handler ProposalHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.proposals != nil {
		b.proposals.teardown()
	}

	sub := &proposalSubscription{
		orderID: orderID,
		handler: handler,
		seen:    make(map[uuid.UUID]entity.Proposal),
	}

	cancelBroadcast := b.broadcast.Subscribe(func(event BroadcastEvent) {
		if event.Name != EventNewProposal || event.OrderID != orderID.String() {
			return
		}
		var proposal entity.Proposal
		if err := json.Unmarshal(event.Payload, &proposal); err != nil {
			b.log.Warn("Malformed broadcast proposal payload", zap.Error(err))
			return
		}
		sub.reduce(proposal)
	})

	cancelRows := b.rows.Subscribe(func(payload repository.ProposalChangePayload) {
		if payload.OrderID != orderID.String() {
			return
		}
		var proposal entity.Proposal
		if err := json.Unmarshal(payload.Row, &proposal); err != nil {
			b.log.Warn("Malformed row-change proposal payload", zap.Error(err))
			return
		}
		sub.reduce(proposal)
	})

	sub.cancels = []func(){cancelBroadcast, cancelRows}
	b.proposals = sub
}

// SubscribeOrderStatus replaces any previous order-status subscription.
func (b *Bridge) SubscribeOrderStatus(orderID uuid.UUID, handler OrderUpdateHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.orders != nil {
		b.orders.cancel()
	}

	sub := &orderSubscription{orderID: orderID, handler: handler}
	sub.cancel = b.broadcast.Subscribe(func(event BroadcastEvent) {
		if event.Name != EventOrderUpdated || event.OrderID != orderID.String() {
			return
		}
		handler(event)
	})

	b.orders = sub
}

// UnsubscribeAll tears down every concern. Nothing else garbage-collects
// subscriptions, so callers must invoke this on shutdown or navigation.
func (b *Bridge) UnsubscribeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.proposals != nil {
		b.proposals.teardown()
		b.proposals = nil
	}
	if b.orders != nil {
		b.orders.cancel()
		b.orders = nil
	}
}

func (s *proposalSubscription) teardown() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// reduce upserts the delivery and forwards it only when it advances state.
func (s *proposalSubscription) reduce(proposal entity.Proposal) {
	s.mu.Lock()

	previous, ok := s.seen[proposal.ID]
	if ok && !proposal.UpdatedAt.After(previous.UpdatedAt) {
		// Duplicate or stale delivery from the other path.
		s.mu.Unlock()
		return
	}

	s.seen[proposal.ID] = proposal
	s.mu.Unlock()

	s.handler(proposal)
}
