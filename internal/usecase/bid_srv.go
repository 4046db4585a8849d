package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BidService interface {
	// PlaceBid submits the guest's offer for a room upgrade. An order holds
	// one bid slot: placing a bid for another room replaces the current one.
	PlaceBid(ctx context.Context, orderID, roomID uuid.UUID, amount float64) (*response.BidResponse, error)

	// CancelBid withdraws the order's active bid, wherever it points.
	CancelBid(ctx context.Context, orderID uuid.UUID) error

	// GetActiveBid refreshes the in-memory slot from storage and returns it.
	GetActiveBid(ctx context.Context, orderID uuid.UUID) (*response.BidResponse, error)
}

type bidService struct {
	repo        *repository.Repository
	labels      *utils.Labels
	upsell      utils.UpsellConfig
	notifier    Notifier
	broadcaster *realtime.Broadcaster
	negotiation *NegotiationRegistry
	log         *zap.Logger
}

func NewBidService(
	repo *repository.Repository,
	config *utils.Config,
	labels *utils.Labels,
	notifier Notifier,
	broadcaster *realtime.Broadcaster,
	negotiation *NegotiationRegistry,
	log *zap.Logger,
) BidService {
	return &bidService{
		repo:        repo,
		labels:      labels,
		upsell:      config.Upsell,
		notifier:    notifier,
		broadcaster: broadcaster,
		negotiation: negotiation,
		log:         log.With(zap.String("service", "bid")),
	}
}

func (s *bidService) PlaceBid(ctx context.Context, orderID, roomID uuid.UUID, amount float64) (*response.BidResponse, error) {
	room, err := s.repo.RoomBooking.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("place bid: %w", err)
	}
	if room == nil || room.OrderID != orderID {
		return nil, ErrRoomNotFound
	}

	items, err := s.repo.PricingItem.FindByRoomBookingID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("place bid: %w", err)
	}
	room.Items = items

	roomPrice := baseRoomPrice(room)
	if roomPrice <= 0 {
		return nil, ErrRoomNotFound
	}

	negotiation := s.negotiation.ForOrder(orderID)
	session := NewBidSession(roomID, roomPrice, bidBoundsFromConfig(s.upsell), negotiation)

	if amount < session.MinPrice() || amount > session.MaxPrice() {
		return nil, ErrBidOutOfRange
	}

	session.SetProposedPrice(amount)
	submitted := session.MakeOffer()

	now := time.Now()
	bid := &entity.Bid{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       orderID,
		RoomBookingID: roomID,
		Amount:        submitted,
		Status:        entity.BidStatusSubmitted,
	}

	if err := s.repo.Bid.Upsert(ctx, bid); err != nil {
		return nil, fmt.Errorf("place bid: %w", err)
	}

	// Move the order's single slot; every other room card falls back to idle.
	negotiation.Set(ActiveBid{
		RoomBookingID: roomID,
		Amount:        submitted,
		Status:        entity.BidStatusSubmitted,
	})

	s.log.Info("Bid placed",
		zap.String("order_id", orderID.String()),
		zap.String("room_booking_id", roomID.String()),
		zap.Float64("amount", submitted),
	)

	s.notifier.Notify(orderID, Notification{
		Message:  fmt.Sprintf(s.labels.Bid.Submitted, submitted),
		Severity: SeveritySuccess,
	})
	s.broadcaster.Publish(realtime.BroadcastEvent{
		Name:    realtime.EventOrderUpdated,
		OrderID: orderID.String(),
	})

	bidResp := response.BidToResponse(bid)
	return &bidResp, nil
}

func (s *bidService) CancelBid(ctx context.Context, orderID uuid.UUID) error {
	if err := s.repo.Bid.DeleteByOrderID(ctx, orderID); err != nil {
		return fmt.Errorf("cancel bid: %w", err)
	}

	s.negotiation.ForOrder(orderID).Clear()

	s.log.Info("Bid cancelled", zap.String("order_id", orderID.String()))

	s.notifier.Notify(orderID, Notification{
		Message:  s.labels.Bid.Cancelled,
		Severity: SeverityInfo,
	})
	s.broadcaster.Publish(realtime.BroadcastEvent{
		Name:    realtime.EventOrderUpdated,
		OrderID: orderID.String(),
	})

	return nil
}

func (s *bidService) GetActiveBid(ctx context.Context, orderID uuid.UUID) (*response.BidResponse, error) {
	bid, err := s.repo.Bid.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get active bid: %w", err)
	}

	negotiation := s.negotiation.ForOrder(orderID)
	if bid == nil {
		negotiation.Clear()
		return nil, nil
	}

	// Storage wins over whatever the slot held; the hotel may have accepted
	// or rejected the bid since the last read.
	negotiation.Set(ActiveBid{
		RoomBookingID: bid.RoomBookingID,
		Amount:        bid.Amount,
		Status:        bid.Status,
	})

	bidResp := response.BidToResponse(bid)
	return &bidResp, nil
}
