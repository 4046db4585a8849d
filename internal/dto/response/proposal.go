package response

import (
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
)

type ProposalResponse struct {
	ID              string                `json:"id"`
	Type            entity.ProposalType   `json:"type"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	OriginalItem    *string               `json:"original_item,omitempty"`
	ProposedItem    *string               `json:"proposed_item,omitempty"`
	PriceDifference *float64              `json:"price_difference,omitempty"`
	Status          entity.ProposalStatus `json:"status"`
	IsExpired       bool                  `json:"is_expired"`
	IsActionable    bool                  `json:"is_actionable"`
	CreatedAt       time.Time             `json:"created_at"`
	ExpiresAt       *time.Time            `json:"expires_at,omitempty"`
}

// ProposalToResponse derives expiry at render time; storage keeps "pending".
func ProposalToResponse(proposal *entity.Proposal, now time.Time) ProposalResponse {
	return ProposalResponse{
		ID:              proposal.ID.String(),
		Type:            proposal.Type,
		Title:           proposal.Title,
		Description:     proposal.Description,
		OriginalItem:    proposal.OriginalItem,
		ProposedItem:    proposal.ProposedItem,
		PriceDifference: proposal.PriceDifference,
		Status:          proposal.Status,
		IsExpired:       proposal.IsExpired(now),
		IsActionable:    proposal.IsActionable(now),
		CreatedAt:       proposal.CreatedAt,
		ExpiresAt:       proposal.ExpiresAt,
	}
}
