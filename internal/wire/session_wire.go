package wire

import (
	"github.com/vladHotelverse/hotel-upsell/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, sessionHandler *adaptor.SessionHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/session - Exchange booking code + access code for a session
	r.Post("/api/session", sessionHandler.CreateSession)
}
