package request

type CreateProposalRequest struct {
	OrderID         string   `json:"order_id" validate:"required,uuid4"`
	Type            string   `json:"type" validate:"required,oneof=room_change customization_change offer_change price_change"`
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"max=2000"`
	OriginalItem    *string  `json:"original_item,omitempty"`
	ProposedItem    *string  `json:"proposed_item,omitempty"`
	PriceDifference *float64 `json:"price_difference,omitempty"`
	// ExpiresInMinutes leaves the proposal open-ended when omitted.
	ExpiresInMinutes *int `json:"expires_in_minutes,omitempty" validate:"omitempty,gt=0"`
}
