package wire

import (
	"github.com/vladHotelverse/hotel-upsell/internal/adaptor"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBid(
	r chi.Router,
	bidHandler *adaptor.BidHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require guest session) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthGuest(repo.GuestSession, log))

		// POST /api/rooms/{roomId}/bid - Submit an upgrade offer
		r.Post("/api/rooms/{roomId}/bid", bidHandler.PlaceBid)

		// DELETE /api/rooms/{roomId}/bid - Withdraw the order's active bid
		r.Delete("/api/rooms/{roomId}/bid", bidHandler.CancelBid)
	})
}
