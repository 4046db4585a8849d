package response

import (
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
)

type OrderResponse struct {
	ID           string                `json:"id"`
	Code         string                `json:"code"`
	HotelID      string                `json:"hotel_id"`
	Status       entity.OrderStatus    `json:"status"`
	Rooms        []RoomBookingResponse `json:"rooms"`
	OverallTotal float64               `json:"overall_total"`
}

type RoomBookingResponse struct {
	ID         string                `json:"id"`
	RoomName   string                `json:"room_name"`
	GuestName  string                `json:"guest_name"`
	CheckIn    time.Time             `json:"check_in"`
	CheckOut   time.Time             `json:"check_out"`
	Nights     int                   `json:"nights"`
	PayAtHotel bool                  `json:"pay_at_hotel"`
	Items      []PricingItemResponse `json:"items"`
	Total      float64               `json:"total"`
	Bid        *BidViewResponse      `json:"bid,omitempty"`
}

type PricingItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      float64         `json:"price"`
	Type       entity.ItemType `json:"type"`
	Concept    string          `json:"concept"`
	Category   string          `json:"category,omitempty"`
	BidStatus  *string         `json:"bid_status,omitempty"`
	ItemStatus *string         `json:"item_status,omitempty"`
}

func PricingItemToResponse(item *entity.PricingItem) PricingItemResponse {
	return PricingItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Price:      item.Price,
		Type:       item.Type,
		Concept:    item.Concept,
		Category:   item.Category,
		BidStatus:  item.BidStatus,
		ItemStatus: item.ItemStatus,
	}
}
