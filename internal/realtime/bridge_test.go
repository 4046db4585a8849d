package realtime

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeRowSource stands in for the database listener.
type fakeRowSource struct {
	mu     sync.Mutex
	subs   map[int]func(repository.ProposalChangePayload)
	nextID int
}

func newFakeRowSource() *fakeRowSource {
	return &fakeRowSource{subs: make(map[int]func(repository.ProposalChangePayload))}
}

func (f *fakeRowSource) Subscribe(fn func(repository.ProposalChangePayload)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *fakeRowSource) emit(payload repository.ProposalChangePayload) {
	f.mu.Lock()
	subs := make([]func(repository.ProposalChangePayload), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(payload)
	}
}

func testProposal(orderID uuid.UUID, updatedAt time.Time) entity.Proposal {
	return entity.Proposal{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: updatedAt,
			UpdatedAt: updatedAt,
		},
		OrderID: orderID,
		Type:    entity.ProposalTypeRoomChange,
		Title:   "Upgrade to Junior Suite",
		Status:  entity.ProposalStatusPending,
	}
}

func rowPayload(t *testing.T, proposal entity.Proposal) repository.ProposalChangePayload {
	t.Helper()
	row, err := json.Marshal(proposal)
	if err != nil {
		t.Fatal(err)
	}
	return repository.ProposalChangePayload{
		Table:     "proposals",
		Operation: "INSERT",
		OrderID:   proposal.OrderID.String(),
		Row:       row,
	}
}

func broadcastPayload(t *testing.T, proposal entity.Proposal) BroadcastEvent {
	t.Helper()
	payload, err := json.Marshal(proposal)
	if err != nil {
		t.Fatal(err)
	}
	return BroadcastEvent{
		Name:    EventNewProposal,
		OrderID: proposal.OrderID.String(),
		Payload: payload,
	}
}

func TestBridgeDeduplicatesDualDelivery(t *testing.T) {
	broadcaster := NewBroadcaster()
	rows := newFakeRowSource()
	bridge := NewBridge(broadcaster, rows, zap.NewNop())
	defer bridge.UnsubscribeAll()

	orderID := uuid.New()
	var delivered []entity.Proposal
	bridge.SubscribeProposals(orderID, func(proposal entity.Proposal) {
		delivered = append(delivered, proposal)
	})

	proposal := testProposal(orderID, time.Now().Truncate(time.Second))

	// The same logical proposal arrives over both paths.
	broadcaster.Publish(broadcastPayload(t, proposal))
	rows.emit(rowPayload(t, proposal))

	if len(delivered) != 1 {
		t.Fatalf("handler called %d times, want 1", len(delivered))
	}
	if delivered[0].ID != proposal.ID {
		t.Errorf("delivered id = %s, want %s", delivered[0].ID, proposal.ID)
	}
}

func TestBridgeUpsertsNewerDelivery(t *testing.T) {
	broadcaster := NewBroadcaster()
	rows := newFakeRowSource()
	bridge := NewBridge(broadcaster, rows, zap.NewNop())
	defer bridge.UnsubscribeAll()

	orderID := uuid.New()
	var delivered []entity.Proposal
	bridge.SubscribeProposals(orderID, func(proposal entity.Proposal) {
		delivered = append(delivered, proposal)
	})

	base := time.Now().Truncate(time.Second)
	proposal := testProposal(orderID, base)
	broadcaster.Publish(broadcastPayload(t, proposal))

	// The row-change path delivers a newer revision, then a stale one.
	newer := proposal
	newer.UpdatedAt = base.Add(time.Second)
	newer.Status = entity.ProposalStatusAccepted
	rows.emit(rowPayload(t, newer))

	stale := proposal
	stale.UpdatedAt = base.Add(-time.Second)
	rows.emit(rowPayload(t, stale))

	if len(delivered) != 2 {
		t.Fatalf("handler called %d times, want 2", len(delivered))
	}
	if delivered[1].Status != entity.ProposalStatusAccepted {
		t.Errorf("second delivery status = %v, want accepted", delivered[1].Status)
	}
}

func TestBridgeFiltersOtherOrders(t *testing.T) {
	broadcaster := NewBroadcaster()
	rows := newFakeRowSource()
	bridge := NewBridge(broadcaster, rows, zap.NewNop())
	defer bridge.UnsubscribeAll()

	var delivered int
	bridge.SubscribeProposals(uuid.New(), func(entity.Proposal) {
		delivered++
	})

	other := testProposal(uuid.New(), time.Now())
	broadcaster.Publish(broadcastPayload(t, other))
	rows.emit(rowPayload(t, other))

	if delivered != 0 {
		t.Errorf("handler called %d times for another order, want 0", delivered)
	}
}

func TestBridgeResubscribeReplacesPrevious(t *testing.T) {
	broadcaster := NewBroadcaster()
	rows := newFakeRowSource()
	bridge := NewBridge(broadcaster, rows, zap.NewNop())
	defer bridge.UnsubscribeAll()

	orderID := uuid.New()
	var old, current int
	bridge.SubscribeProposals(orderID, func(entity.Proposal) { old++ })
	bridge.SubscribeProposals(orderID, func(entity.Proposal) { current++ })

	broadcaster.Publish(broadcastPayload(t, testProposal(orderID, time.Now())))

	if old != 0 {
		t.Error("replaced subscription still received deliveries")
	}
	if current != 1 {
		t.Errorf("current subscription deliveries = %d, want 1", current)
	}
}

func TestBridgeOrderStatusSubscription(t *testing.T) {
	broadcaster := NewBroadcaster()
	bridge := NewBridge(broadcaster, newFakeRowSource(), zap.NewNop())
	defer bridge.UnsubscribeAll()

	orderID := uuid.New()
	var events []BroadcastEvent
	bridge.SubscribeOrderStatus(orderID, func(event BroadcastEvent) {
		events = append(events, event)
	})

	broadcaster.Publish(BroadcastEvent{Name: EventOrderUpdated, OrderID: orderID.String()})
	// Filtered: wrong name, wrong order.
	broadcaster.Publish(BroadcastEvent{Name: EventNewProposal, OrderID: orderID.String()})
	broadcaster.Publish(BroadcastEvent{Name: EventOrderUpdated, OrderID: uuid.New().String()})

	if len(events) != 1 {
		t.Errorf("handler called %d times, want 1", len(events))
	}
}

func TestBridgeUnsubscribeAll(t *testing.T) {
	broadcaster := NewBroadcaster()
	rows := newFakeRowSource()
	bridge := NewBridge(broadcaster, rows, zap.NewNop())

	orderID := uuid.New()
	var proposals, orders int
	bridge.SubscribeProposals(orderID, func(entity.Proposal) { proposals++ })
	bridge.SubscribeOrderStatus(orderID, func(BroadcastEvent) { orders++ })

	bridge.UnsubscribeAll()

	broadcaster.Publish(broadcastPayload(t, testProposal(orderID, time.Now())))
	rows.emit(rowPayload(t, testProposal(orderID, time.Now())))
	broadcaster.Publish(BroadcastEvent{Name: EventOrderUpdated, OrderID: orderID.String()})

	if proposals != 0 || orders != 0 {
		t.Errorf("deliveries after UnsubscribeAll = (%d, %d), want (0, 0)", proposals, orders)
	}
}
