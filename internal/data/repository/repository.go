package repository

import (
	"github.com/vladHotelverse/hotel-upsell/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Order        OrderRepository
	RoomBooking  RoomBookingRepository
	PricingItem  PricingItemRepository
	Bid          BidRepository
	Proposal     ProposalRepository
	GuestSession GuestSessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Order:        NewOrderRepository(db, log),
		RoomBooking:  NewRoomBookingRepository(db, log),
		PricingItem:  NewPricingItemRepository(db, log),
		Bid:          NewBidRepository(db, log),
		Proposal:     NewProposalRepository(db, log),
		GuestSession: NewGuestSessionRepository(db, log),
	}
}
