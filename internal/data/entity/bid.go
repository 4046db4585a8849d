package entity

import (
	"github.com/google/uuid"
)

type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusSubmitted BidStatus = "submitted"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
)

// Bid is the single active price offer for an order. The order_id column is
// unique: only one room of an order can hold a live bid at a time, the next
// upsert replaces the previous one.
type Bid struct {
	Base
	OrderID       uuid.UUID `db:"order_id"`
	RoomBookingID uuid.UUID `db:"room_booking_id"`
	Amount        float64   `db:"amount"`
	Status        BidStatus `db:"status"`
}
