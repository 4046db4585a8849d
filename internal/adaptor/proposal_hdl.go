package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProposalHandler struct {
	service usecase.ProposalService
	log     *zap.Logger
}

func NewProposalHandler(service usecase.ProposalService, log *zap.Logger) *ProposalHandler {
	return &ProposalHandler{
		service: service,
		log:     log.With(zap.String("handler", "proposal")),
	}
}

// ListProposals handles GET /api/proposals?page=1&per_page=10
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	query := r.URL.Query()
	page := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	proposals, err := h.service.ListProposals(r.Context(), orderID, page)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", proposals)
}

// Accept handles POST /api/proposals/{proposalId}/accept
func (h *ProposalHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.service.Accept, "Proposal accepted")
}

// Reject handles POST /api/proposals/{proposalId}/reject
func (h *ProposalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.service.Reject, "Proposal rejected")
}

func (h *ProposalHandler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, orderID, proposalID uuid.UUID) (bool, error),
	message string,
) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	proposalID, err := uuid.Parse(chi.URLParam(r, "proposalId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid proposal id", nil)
		return
	}

	changed, err := action(r.Context(), orderID, proposalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !changed {
		// Already resolved by a concurrent actor, or expired in the meantime.
		utils.ResponseConflict(w, "Proposal is no longer actionable")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// Create handles POST /api/hotel/proposals (hotel side, API-key protected)
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	proposal, err := h.service.CreateProposal(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Proposal created", proposal)
}
