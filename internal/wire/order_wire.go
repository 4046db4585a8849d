package wire

import (
	"github.com/vladHotelverse/hotel-upsell/internal/adaptor"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require guest session) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthGuest(repo.GuestSession, log))

		// GET /api/order - Full order with rooms, items, totals and bid state
		r.Get("/api/order", orderHandler.GetOrder)

		// POST /api/order/confirm - Confirm every room in the order
		r.Post("/api/order/confirm", orderHandler.ConfirmAll)

		// DELETE /api/rooms/{roomId}/items/{itemId} - Remove one pricing item
		r.Delete("/api/rooms/{roomId}/items/{itemId}", orderHandler.RemoveItem)

		// POST /api/accordion/toggle - Toggle a room panel
		r.Post("/api/accordion/toggle", orderHandler.ToggleAccordion)

		// GET /api/accordion - Current active panel set
		r.Get("/api/accordion", orderHandler.GetAccordion)
	})
}
