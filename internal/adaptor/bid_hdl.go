package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BidHandler struct {
	service usecase.BidService
	log     *zap.Logger
}

func NewBidHandler(service usecase.BidService, log *zap.Logger) *BidHandler {
	return &BidHandler{
		service: service,
		log:     log.With(zap.String("handler", "bid")),
	}
}

// PlaceBid handles POST /api/rooms/{roomId}/bid
func (h *BidHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	roomID, err := uuid.Parse(chi.URLParam(r, "roomId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room id", nil)
		return
	}

	var req request.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bid, err := h.service.PlaceBid(r.Context(), orderID, roomID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Bid submitted", bid)
}

// CancelBid handles DELETE /api/rooms/{roomId}/bid
//
// The order holds a single bid slot, so the room id in the path is only a
// routing nicety; cancellation always targets the order's active bid.
func (h *BidHandler) CancelBid(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	if err := h.service.CancelBid(r.Context(), orderID); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bid cancelled", nil)
}
