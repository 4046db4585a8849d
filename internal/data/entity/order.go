package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	Base
	Code    string      `db:"code"`
	HotelID string      `db:"hotel_id"`
	Status  OrderStatus `db:"status"`
	// Bcrypt hash of the access code handed to the guest alongside the
	// booking code. Never serialized outward.
	AccessCodeHash string `db:"access_code_hash" json:"-"`
}

type RoomBooking struct {
	Base
	OrderID    uuid.UUID `db:"order_id"`
	RoomName   string    `db:"room_name"`
	GuestName  string    `db:"guest_name"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Nights     int       `db:"nights"`
	PayAtHotel bool      `db:"pay_at_hotel"`

	// Loaded separately; position column keeps insertion order as display order.
	Items []PricingItem `db:"-"`
}
