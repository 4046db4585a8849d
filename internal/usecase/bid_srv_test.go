package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newBidFixture() (*repository.Repository, *recordingNotifier, *NegotiationRegistry, BidService) {
	repo := testRepository()
	notifier := &recordingNotifier{}
	registry := NewNegotiationRegistry()

	service := NewBidService(
		repo,
		testConfig(0),
		testLabels(),
		notifier,
		realtime.NewBroadcaster(),
		registry,
		zap.NewNop(),
	)
	return repo, notifier, registry, service
}

func TestPlaceBidPersistsAndMovesSlot(t *testing.T) {
	repo, notifier, registry, service := newBidFixture()

	orderID := uuid.New()
	room := seedRoom(repo, orderID,
		entity.PricingItem{Name: "Deluxe Double", Price: 100, Type: entity.ItemTypeRoom},
	)

	bid, err := service.PlaceBid(context.Background(), orderID, room.ID, 120)
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}
	if bid.Amount != 120 || bid.Status != entity.BidStatusSubmitted {
		t.Errorf("bid response = %+v, want 120 submitted", bid)
	}

	bidRepo := repo.Bid.(*fakeBidRepo)
	if len(bidRepo.upserts) != 1 || bidRepo.upserts[0].Amount != 120 {
		t.Errorf("upserts = %+v, want one at 120", bidRepo.upserts)
	}

	active := registry.ForOrder(orderID).Get()
	if active == nil || active.RoomBookingID != room.ID || active.Amount != 120 {
		t.Errorf("negotiation slot = %+v, want room %s at 120", active, room.ID)
	}

	if note := notifier.last(); note == nil || note.Severity != SeveritySuccess {
		t.Errorf("notification = %+v, want success", note)
	}
}

func TestPlaceBidReplacesOtherRoomsBid(t *testing.T) {
	repo, _, registry, service := newBidFixture()

	orderID := uuid.New()
	roomA := seedRoom(repo, orderID,
		entity.PricingItem{Name: "Deluxe Double", Price: 100, Type: entity.ItemTypeRoom},
	)
	roomB := seedRoom(repo, orderID,
		entity.PricingItem{Name: "Twin Room", Price: 80, Type: entity.ItemTypeRoom},
	)

	if _, err := service.PlaceBid(context.Background(), orderID, roomA.ID, 50); err != nil {
		t.Fatalf("PlaceBid(roomA) error = %v", err)
	}
	if _, err := service.PlaceBid(context.Background(), orderID, roomB.ID, 40); err != nil {
		t.Fatalf("PlaceBid(roomB) error = %v", err)
	}

	// One slot per order: the second bid displaced the first.
	active := registry.ForOrder(orderID).Get()
	if active == nil || active.RoomBookingID != roomB.ID {
		t.Errorf("negotiation slot = %+v, want roomB", active)
	}
	if repo.Bid.(*fakeBidRepo).bid.RoomBookingID != roomB.ID {
		t.Error("stored bid still points at roomA")
	}
}

func TestPlaceBidOutOfRange(t *testing.T) {
	repo, _, _, service := newBidFixture()

	orderID := uuid.New()
	room := seedRoom(repo, orderID,
		entity.PricingItem{Name: "Deluxe Double", Price: 100, Type: entity.ItemTypeRoom},
	)

	// Ceiling is 200, floor is 1.
	if _, err := service.PlaceBid(context.Background(), orderID, room.ID, 201); !errors.Is(err, ErrBidOutOfRange) {
		t.Errorf("PlaceBid(201) error = %v, want ErrBidOutOfRange", err)
	}
	if _, err := service.PlaceBid(context.Background(), orderID, room.ID, 0.5); !errors.Is(err, ErrBidOutOfRange) {
		t.Errorf("PlaceBid(0.5) error = %v, want ErrBidOutOfRange", err)
	}
	if len(repo.Bid.(*fakeBidRepo).upserts) != 0 {
		t.Error("out-of-range bid reached storage")
	}
}

func TestPlaceBidUnknownRoom(t *testing.T) {
	_, _, _, service := newBidFixture()

	if _, err := service.PlaceBid(context.Background(), uuid.New(), uuid.New(), 50); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("PlaceBid() error = %v, want ErrRoomNotFound", err)
	}
}

func TestCancelBidClearsSlot(t *testing.T) {
	repo, notifier, registry, service := newBidFixture()

	orderID := uuid.New()
	room := seedRoom(repo, orderID,
		entity.PricingItem{Name: "Deluxe Double", Price: 100, Type: entity.ItemTypeRoom},
	)
	if _, err := service.PlaceBid(context.Background(), orderID, room.ID, 50); err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}

	if err := service.CancelBid(context.Background(), orderID); err != nil {
		t.Fatalf("CancelBid() error = %v", err)
	}

	if registry.ForOrder(orderID).Get() != nil {
		t.Error("negotiation slot not cleared")
	}
	if repo.Bid.(*fakeBidRepo).deletes != 1 {
		t.Error("stored bid not deleted")
	}
	if note := notifier.last(); note == nil || note.Severity != SeverityInfo {
		t.Errorf("notification = %+v, want info", note)
	}
}

func TestGetActiveBidRefreshesSlotFromStorage(t *testing.T) {
	repo, _, registry, service := newBidFixture()

	orderID := uuid.New()
	roomID := uuid.New()

	// The hotel accepted the bid since the slot was last written.
	repo.Bid.(*fakeBidRepo).bid = &entity.Bid{
		Base:          entity.Base{ID: uuid.New()},
		OrderID:       orderID,
		RoomBookingID: roomID,
		Amount:        70,
		Status:        entity.BidStatusAccepted,
	}

	bid, err := service.GetActiveBid(context.Background(), orderID)
	if err != nil {
		t.Fatalf("GetActiveBid() error = %v", err)
	}
	if bid == nil || bid.Status != entity.BidStatusAccepted {
		t.Fatalf("bid = %+v, want accepted", bid)
	}

	active := registry.ForOrder(orderID).Get()
	if active == nil || active.Status != entity.BidStatusAccepted {
		t.Errorf("negotiation slot = %+v, want accepted", active)
	}
}

func TestGetActiveBidEmptyStorageClearsSlot(t *testing.T) {
	_, _, registry, service := newBidFixture()

	orderID := uuid.New()
	registry.ForOrder(orderID).Set(ActiveBid{RoomBookingID: uuid.New(), Amount: 30, Status: entity.BidStatusSubmitted})

	bid, err := service.GetActiveBid(context.Background(), orderID)
	if err != nil {
		t.Fatalf("GetActiveBid() error = %v", err)
	}
	if bid != nil {
		t.Errorf("bid = %+v, want nil", bid)
	}
	if registry.ForOrder(orderID).Get() != nil {
		t.Error("stale slot survived an empty storage read")
	}
}
