package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
)

// In-memory repository fakes. Only the methods a test exercises carry
// behavior; error fields inject failures.

type fakeOrderRepo struct {
	order         *entity.Order
	updateErr     error
	statusUpdates []entity.OrderStatus
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.order != nil && f.order.ID == id {
		return f.order, nil
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByCode(_ context.Context, code string) (*entity.Order, error) {
	if f.order != nil && f.order.Code == code {
		return f.order, nil
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status entity.OrderStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeRoomRepo struct {
	rooms []*entity.RoomBooking
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomBooking, error) {
	for _, room := range f.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) ([]*entity.RoomBooking, error) {
	var out []*entity.RoomBooking
	for _, room := range f.rooms {
		if room.OrderID == orderID {
			out = append(out, room)
		}
	}
	return out, nil
}

type fakeItemRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]*entity.PricingItem
	deleteErr error
	deleted   []uuid.UUID
}

func (f *fakeItemRepo) Create(_ context.Context, item *entity.PricingItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items == nil {
		f.items = make(map[uuid.UUID]*entity.PricingItem)
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PricingItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id], nil
}

func (f *fakeItemRepo) FindByRoomBookingID(_ context.Context, roomBookingID uuid.UUID) ([]entity.PricingItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.PricingItem
	for _, item := range f.items {
		if item.RoomBookingID == roomBookingID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeItemRepo) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deleted)
}

type fakeBidRepo struct {
	bid       *entity.Bid
	upserts   []entity.Bid
	deletes   int
	findErr   error
	upsertErr error
}

func (f *fakeBidRepo) Upsert(_ context.Context, bid *entity.Bid) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.bid = bid
	f.upserts = append(f.upserts, *bid)
	return nil
}

func (f *fakeBidRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*entity.Bid, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.bid != nil && f.bid.OrderID == orderID {
		return f.bid, nil
	}
	return nil, nil
}

func (f *fakeBidRepo) DeleteByOrderID(_ context.Context, _ uuid.UUID) error {
	f.bid = nil
	f.deletes++
	return nil
}

func (f *fakeBidRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status entity.BidStatus) error {
	if f.bid != nil {
		f.bid.Status = status
	}
	return nil
}

type fakeProposalRepo struct {
	proposals map[uuid.UUID]*entity.Proposal
	updateErr error
	created   []*entity.Proposal
}

func (f *fakeProposalRepo) Create(_ context.Context, proposal *entity.Proposal) error {
	if f.proposals == nil {
		f.proposals = make(map[uuid.UUID]*entity.Proposal)
	}
	f.proposals[proposal.ID] = proposal
	f.created = append(f.created, proposal)
	return nil
}

func (f *fakeProposalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Proposal, error) {
	return f.proposals[id], nil
}

func (f *fakeProposalRepo) FindByOrderID(_ context.Context, orderID uuid.UUID, limit, offset int) ([]*entity.Proposal, error) {
	var out []*entity.Proposal
	for _, proposal := range f.proposals {
		if proposal.OrderID == orderID {
			out = append(out, proposal)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProposalRepo) CountByOrderID(_ context.Context, orderID uuid.UUID) (int64, error) {
	var total int64
	for _, proposal := range f.proposals {
		if proposal.OrderID == orderID {
			total++
		}
	}
	return total, nil
}

func (f *fakeProposalRepo) UpdateStatus(_ context.Context, orderID, proposalID uuid.UUID, status entity.ProposalStatus) (bool, error) {
	if f.updateErr != nil {
		return false, f.updateErr
	}
	proposal, ok := f.proposals[proposalID]
	if !ok || proposal.OrderID != orderID || proposal.Status != entity.ProposalStatusPending {
		return false, nil
	}
	proposal.Status = status
	proposal.UpdatedAt = time.Now()
	return true, nil
}

type fakeSessionRepo struct {
	sessions []*entity.GuestSession
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.GuestSession) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.GuestSession, error) {
	for _, session := range f.sessions {
		if session.Token.String() == token && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

// recordingNotifier captures every notification the core emits.
type recordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

func (n *recordingNotifier) Notify(_ uuid.UUID, notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, notification)
}

func (n *recordingNotifier) all() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.notes...)
}

func (n *recordingNotifier) last() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notes) == 0 {
		return nil
	}
	note := n.notes[len(n.notes)-1]
	return &note
}

func testConfig(settleDelay time.Duration) *utils.Config {
	return &utils.Config{
		Upsell: utils.UpsellConfig{
			RemoveSettleDelay: settleDelay,
			MinBidFactor:      0.01,
			MaxBidFactor:      2.0,
			DefaultBidFactor:  0.05,
		},
		Session: utils.SessionConfig{ExpiryHours: 72},
	}
}

func testLabels() *utils.Labels {
	labels := utils.DefaultLabels()
	return &labels
}

func testRepository() *repository.Repository {
	return &repository.Repository{
		Order:        &fakeOrderRepo{},
		RoomBooking:  &fakeRoomRepo{},
		PricingItem:  &fakeItemRepo{},
		Bid:          &fakeBidRepo{},
		Proposal:     &fakeProposalRepo{},
		GuestSession: &fakeSessionRepo{},
	}
}
