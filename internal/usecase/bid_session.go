package usecase

import (
	"math"

	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
)

type BidState string

const (
	BidStateIdle      BidState = "idle"
	BidStateSubmitted BidState = "submitted"
)

// BidSession is the per-room-card offer state machine. It is a read-through
// view of the order's NegotiationSession slot: when the slot points at this
// room the external value wins over anything set locally, and when the slot
// moves elsewhere the session falls back to idle with the default price.
type BidSession struct {
	roomID        uuid.UUID
	minPrice      float64
	maxPrice      float64
	defaultFactor float64
	negotiation   *NegotiationSession

	state          BidState
	proposedPrice  float64
	submittedPrice float64
}

// BidBounds shapes the offer slider relative to the room price. The factors
// are configuration, loaded once at startup.
type BidBounds struct {
	MinFactor     float64
	MaxFactor     float64
	DefaultFactor float64
}

func bidBoundsFromConfig(cfg utils.UpsellConfig) BidBounds {
	return BidBounds{
		MinFactor:     cfg.MinBidFactor,
		MaxFactor:     cfg.MaxBidFactor,
		DefaultFactor: cfg.DefaultBidFactor,
	}
}

// NewBidSession derives the slider range from the room price: the floor and
// ceiling are factors of it, the default proposal is a factor of the ceiling
// but never below the floor.
func NewBidSession(roomID uuid.UUID, roomPrice float64, bounds BidBounds, negotiation *NegotiationSession) *BidSession {
	s := &BidSession{
		roomID:        roomID,
		minPrice:      bounds.MinFactor * roomPrice,
		maxPrice:      bounds.MaxFactor * roomPrice,
		defaultFactor: bounds.DefaultFactor,
		negotiation:   negotiation,
		state:         BidStateIdle,
	}
	s.proposedPrice = s.DefaultPrice()
	s.Sync()
	return s
}

func (s *BidSession) DefaultPrice() float64 {
	return math.Max(math.Round(s.maxPrice*s.defaultFactor), s.minPrice)
}

// SetProposedPrice is a pure local update, called on every slider move.
func (s *BidSession) SetProposedPrice(price float64) {
	s.proposedPrice = price
}

// MakeOffer moves the session to submitted and returns the price to persist.
// Persistence belongs to the caller; there is no rollback if it fails later.
func (s *BidSession) MakeOffer() float64 {
	s.state = BidStateSubmitted
	s.submittedPrice = s.proposedPrice
	return s.submittedPrice
}

// Reset returns the session to idle with the default computed price.
func (s *BidSession) Reset() {
	s.state = BidStateIdle
	s.submittedPrice = 0
	s.proposedPrice = s.DefaultPrice()
}

// Sync pulls the authoritative slot value into the session.
func (s *BidSession) Sync() {
	if s.negotiation == nil {
		return
	}

	active := s.negotiation.Get()
	if active != nil && active.RoomBookingID == s.roomID && active.Status != "" {
		s.state = BidStateSubmitted
		s.submittedPrice = active.Amount
		s.proposedPrice = active.Amount
		return
	}

	if s.state == BidStateSubmitted {
		s.Reset()
	}
}

func (s *BidSession) State() BidState         { return s.state }
func (s *BidSession) ProposedPrice() float64  { return s.proposedPrice }
func (s *BidSession) SubmittedPrice() float64 { return s.submittedPrice }
func (s *BidSession) MinPrice() float64       { return s.minPrice }
func (s *BidSession) MaxPrice() float64       { return s.maxPrice }
func (s *BidSession) RoomID() uuid.UUID       { return s.roomID }
