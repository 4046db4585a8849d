package response

import (
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
)

type BidResponse struct {
	RoomBookingID string           `json:"room_booking_id"`
	Amount        float64          `json:"amount"`
	Status        entity.BidStatus `json:"status"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// BidViewResponse is the room card's offer widget state: slider bounds, the
// price being proposed and, once submitted, the authoritative amount.
type BidViewResponse struct {
	State          string  `json:"state"`
	ProposedPrice  float64 `json:"proposed_price"`
	SubmittedPrice float64 `json:"submitted_price,omitempty"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
}

func BidToResponse(bid *entity.Bid) BidResponse {
	return BidResponse{
		RoomBookingID: bid.RoomBookingID.String(),
		Amount:        bid.Amount,
		Status:        bid.Status,
		UpdatedAt:     bid.UpdatedAt,
	}
}
