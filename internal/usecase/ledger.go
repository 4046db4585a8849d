package usecase

import (
	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"

	"github.com/google/uuid"
)

// Ledger sums pricing items per room and across the whole order. Totals are
// computed once per loaded room-booking collection; build a new Ledger when
// the collection changes. Prices are plain sums, the nightly rate is already
// folded into each line when the booking engine writes it.
type Ledger struct {
	roomTotals map[uuid.UUID]float64
	overall    float64
}

func NewLedger(rooms []*entity.RoomBooking) *Ledger {
	ledger := &Ledger{
		roomTotals: make(map[uuid.UUID]float64, len(rooms)),
	}

	for _, room := range rooms {
		var total float64
		for _, item := range room.Items {
			total += item.Price
		}
		ledger.roomTotals[room.ID] = total
		ledger.overall += total
	}

	return ledger
}

// RoomTotal returns 0 for an unknown room id.
func (l *Ledger) RoomTotal(roomID uuid.UUID) float64 {
	return l.roomTotals[roomID]
}

func (l *Ledger) OverallTotal() float64 {
	return l.overall
}
