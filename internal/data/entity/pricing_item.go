package entity

import (
	"github.com/google/uuid"
)

type ItemType string

const (
	ItemTypeRoom          ItemType = "room"
	ItemTypeCustomization ItemType = "customization"
	ItemTypeOffer         ItemType = "offer"
	ItemTypeBid           ItemType = "bid"
)

// Category marking a room line as an upgrade. A room item without this
// category is the guest's reserved base room and can never be removed.
const CategoryRoomUpgrade = "room_upgrade"

type PricingItem struct {
	BaseSimple
	RoomBookingID uuid.UUID `db:"room_booking_id"`
	Name          string    `db:"name"`
	Price         float64   `db:"price"`
	Type          ItemType  `db:"item_type"`
	Concept       string    `db:"concept"`
	Category      string    `db:"category"`
	BidStatus     *string   `db:"bid_status"`
	ItemStatus    *string   `db:"item_status"`
	Position      int       `db:"position"`
}

// IsBaseRoom reports whether this line is the non-removable reserved room.
func (p *PricingItem) IsBaseRoom() bool {
	return p.Type == ItemTypeRoom && p.Category != CategoryRoomUpgrade
}
