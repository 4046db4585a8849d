package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProposalType string

const (
	ProposalTypeRoomChange          ProposalType = "room_change"
	ProposalTypeCustomizationChange ProposalType = "customization_change"
	ProposalTypeOfferChange         ProposalType = "offer_change"
	ProposalTypePriceChange         ProposalType = "price_change"
)

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Proposal is a hotel-initiated counter-offer the guest must accept or
// reject. Expiry is never written to the status column: a proposal past its
// expires_at stays "pending" in storage and is only presented as expired.
type Proposal struct {
	Base
	OrderID         uuid.UUID      `db:"order_id"`
	Type            ProposalType   `db:"proposal_type"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	OriginalItem    *string        `db:"original_item"`
	ProposedItem    *string        `db:"proposed_item"`
	PriceDifference *float64       `db:"price_difference"`
	Status          ProposalStatus `db:"status"`
	ExpiresAt       *time.Time     `db:"expires_at"`
}

// IsExpired is derived at evaluation time, not stored.
func (p *Proposal) IsExpired(now time.Time) bool {
	return p.Status == ProposalStatusPending && p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// IsActionable reports whether accept/reject controls should be offered.
func (p *Proposal) IsActionable(now time.Time) bool {
	return p.Status == ProposalStatusPending && !p.IsExpired(now)
}
