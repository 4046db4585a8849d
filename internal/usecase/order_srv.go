package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// GetOrder returns the order with rooms, items, ledger totals and each
	// room's bid widget state.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*response.OrderResponse, error)

	// RemoveItem settles an item removal against the booking engine. The
	// reserved base room is rejected locally; a removal already in flight
	// for the same item is not re-run.
	RemoveItem(ctx context.Context, orderID, roomID, itemID uuid.UUID, itemName string, itemType entity.ItemType) error

	// ConfirmAll confirms the whole order once; re-entry while a confirm is
	// in flight is a no-op. External failure is notified, not returned.
	ConfirmAll(ctx context.Context, orderID uuid.UUID) error
}

type orderService struct {
	repo        *repository.Repository
	labels      *utils.Labels
	upsell      utils.UpsellConfig
	notifier    Notifier
	broadcaster *realtime.Broadcaster
	negotiation *NegotiationRegistry
	log         *zap.Logger

	inflightMu sync.Mutex
	inflight   map[uuid.UUID]struct{}

	confirmMu sync.Mutex
	confirms  map[uuid.UUID]*ConfirmAllWorkflow
}

func NewOrderService(
	repo *repository.Repository,
	config *utils.Config,
	labels *utils.Labels,
	notifier Notifier,
	broadcaster *realtime.Broadcaster,
	negotiation *NegotiationRegistry,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo:        repo,
		labels:      labels,
		upsell:      config.Upsell,
		notifier:    notifier,
		broadcaster: broadcaster,
		negotiation: negotiation,
		log:         log.With(zap.String("service", "order")),
		inflight:    make(map[uuid.UUID]struct{}),
		confirms:    make(map[uuid.UUID]*ConfirmAllWorkflow),
	}
}

func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	rooms, err := s.loadRooms(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// The repo value is authoritative for the bid slot; refresh it before
	// building the per-room views.
	negotiation := s.negotiation.ForOrder(orderID)
	bid, err := s.repo.Bid.FindByOrderID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to load active bid", zap.Error(err), zap.String("order_id", orderID.String()))
	} else if bid != nil {
		negotiation.Set(ActiveBid{
			RoomBookingID: bid.RoomBookingID,
			Amount:        bid.Amount,
			Status:        bid.Status,
		})
	} else {
		negotiation.Clear()
	}

	ledger := NewLedger(rooms)

	roomResponses := make([]response.RoomBookingResponse, len(rooms))
	for i, room := range rooms {
		items := make([]response.PricingItemResponse, len(room.Items))
		for j := range room.Items {
			items[j] = response.PricingItemToResponse(&room.Items[j])
		}

		roomResponses[i] = response.RoomBookingResponse{
			ID:         room.ID.String(),
			RoomName:   room.RoomName,
			GuestName:  room.GuestName,
			CheckIn:    room.CheckIn,
			CheckOut:   room.CheckOut,
			Nights:     room.Nights,
			PayAtHotel: room.PayAtHotel,
			Items:      items,
			Total:      ledger.RoomTotal(room.ID),
			Bid:        s.buildBidView(room, negotiation),
		}
	}

	return &response.OrderResponse{
		ID:           order.ID.String(),
		Code:         order.Code,
		HotelID:      order.HotelID,
		Status:       order.Status,
		Rooms:        roomResponses,
		OverallTotal: ledger.OverallTotal(),
	}, nil
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, roomID, itemID uuid.UUID, itemName string, itemType entity.ItemType) error {
	room, err := s.repo.RoomBooking.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if room == nil || room.OrderID != orderID {
		return ErrRoomNotFound
	}

	item, err := s.repo.PricingItem.FindByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if item == nil || item.RoomBookingID != roomID {
		return ErrItemNotFound
	}

	// The reserved base room is never removable. Rejected locally: no
	// external call, one error notification, nothing changes.
	if item.IsBaseRoom() {
		s.log.Warn("Rejected base room removal",
			zap.String("order_id", orderID.String()),
			zap.String("item_id", itemID.String()),
		)
		s.notifier.Notify(orderID, Notification{
			Message:  s.labels.Notifications.BaseRoomProtected,
			Severity: SeverityError,
		})
		return ErrBaseRoomProtected
	}

	if !s.markInFlight(itemID) {
		return ErrRemovalInFlight
	}
	defer s.clearInFlight(itemID)

	// Let the line settle visibly before the engine removes it.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.upsell.RemoveSettleDelay):
	}

	if err := s.repo.PricingItem.Delete(ctx, itemID); err != nil {
		s.log.Error("Item removal failed",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("item_id", itemID.String()),
		)
		s.notifier.Notify(orderID, Notification{
			Message:  fmt.Sprintf(s.labels.Notifications.ItemRemoveFailed, itemName),
			Severity: SeverityError,
		})
		return fmt.Errorf("remove item %s: %w", itemID.String(), err)
	}

	s.log.Info("Item removed",
		zap.String("order_id", orderID.String()),
		zap.String("item_id", itemID.String()),
		zap.String("item_name", itemName),
		zap.String("item_type", string(itemType)),
	)

	s.notifier.Notify(orderID, Notification{
		Message:  fmt.Sprintf(s.labels.Notifications.ItemRemoved, itemName),
		Severity: SeveritySuccess,
	})
	s.broadcaster.Publish(realtime.BroadcastEvent{
		Name:    realtime.EventOrderUpdated,
		OrderID: orderID.String(),
	})

	return nil
}

func (s *orderService) ConfirmAll(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("confirm all: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}

	rooms, err := s.repo.RoomBooking.FindByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("confirm all: %w", err)
	}

	workflow := s.confirmFor(orderID)
	ran, err := workflow.Run(func() error {
		return s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed)
	})

	if !ran {
		// A confirm is already settling; the second click does nothing.
		return nil
	}

	if err != nil {
		s.log.Error("Confirm all failed",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		s.notifier.Notify(orderID, Notification{
			Message:  s.labels.Notifications.ConfirmFailed,
			Severity: SeverityError,
		})
		return nil
	}

	s.log.Info("Order confirmed",
		zap.String("order_id", orderID.String()),
		zap.Int("room_count", len(rooms)),
	)

	s.notifier.Notify(orderID, Notification{
		Message:  fmt.Sprintf(s.labels.Notifications.ConfirmSuccess, len(rooms)),
		Severity: SeveritySuccess,
	})
	s.broadcaster.Publish(realtime.BroadcastEvent{
		Name:    realtime.EventOrderUpdated,
		OrderID: orderID.String(),
	})

	return nil
}

// ==================== HELPER METHODS ====================

func (s *orderService) loadRooms(ctx context.Context, orderID uuid.UUID) ([]*entity.RoomBooking, error) {
	rooms, err := s.repo.RoomBooking.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	for _, room := range rooms {
		items, err := s.repo.PricingItem.FindByRoomBookingID(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("load items for room %s: %w", room.ID.String(), err)
		}
		room.Items = items
	}

	return rooms, nil
}

func (s *orderService) buildBidView(room *entity.RoomBooking, negotiation *NegotiationSession) *response.BidViewResponse {
	roomPrice := baseRoomPrice(room)
	if roomPrice <= 0 {
		return nil
	}

	session := NewBidSession(room.ID, roomPrice, bidBoundsFromConfig(s.upsell), negotiation)

	view := &response.BidViewResponse{
		State:         string(session.State()),
		ProposedPrice: session.ProposedPrice(),
		MinPrice:      session.MinPrice(),
		MaxPrice:      session.MaxPrice(),
	}
	if session.State() == BidStateSubmitted {
		view.SubmittedPrice = session.SubmittedPrice()
	}
	return view
}

func baseRoomPrice(room *entity.RoomBooking) float64 {
	for i := range room.Items {
		if room.Items[i].Type == entity.ItemTypeRoom && room.Items[i].IsBaseRoom() {
			return room.Items[i].Price
		}
	}
	return 0
}

func (s *orderService) markInFlight(itemID uuid.UUID) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()

	if _, ok := s.inflight[itemID]; ok {
		return false
	}
	s.inflight[itemID] = struct{}{}
	return true
}

func (s *orderService) clearInFlight(itemID uuid.UUID) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	delete(s.inflight, itemID)
}

func (s *orderService) confirmFor(orderID uuid.UUID) *ConfirmAllWorkflow {
	s.confirmMu.Lock()
	defer s.confirmMu.Unlock()

	workflow, ok := s.confirms[orderID]
	if !ok {
		workflow = NewConfirmAllWorkflow()
		s.confirms[orderID] = workflow
	}
	return workflow
}
