package wire

import (
	"github.com/vladHotelverse/hotel-upsell/internal/adaptor"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRealtime(
	r chi.Router,
	realtimeHandler *adaptor.RealtimeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require guest session) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthGuest(repo.GuestSession, log))

		// GET /ws - Push channel for notifications, proposals and order updates
		r.Get("/ws", realtimeHandler.Serve)
	})
}
