package wire

import (
	"github.com/vladHotelverse/hotel-upsell/internal/adaptor"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/pkg/middleware"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProposal(
	r chi.Router,
	proposalHandler *adaptor.ProposalHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require guest session) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthGuest(repo.GuestSession, log))

		// GET /api/proposals - Proposals for the guest's order
		r.Get("/api/proposals", proposalHandler.ListProposals)

		// POST /api/proposals/{proposalId}/accept - Accept a pending proposal
		r.Post("/api/proposals/{proposalId}/accept", proposalHandler.Accept)

		// POST /api/proposals/{proposalId}/reject - Reject a pending proposal
		r.Post("/api/proposals/{proposalId}/reject", proposalHandler.Reject)
	})

	// ==================== HOTEL ROUTES (require API key) ====================
	r.Route("/api/hotel/proposals", func(r chi.Router) {
		r.Use(middleware.HotelAPIKey(config.App.HotelAPIKey, log))

		// POST /api/hotel/proposals - Push a proposal to a guest's order
		r.Post("/", proposalHandler.Create)
	})
}
