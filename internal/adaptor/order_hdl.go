package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service   usecase.OrderService
	accordion usecase.AccordionService
	log       *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, accordion usecase.AccordionService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:   service,
		accordion: accordion,
		log:       log.With(zap.String("handler", "order")),
	}
}

// GetOrder handles GET /api/order
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// RemoveItem handles DELETE /api/rooms/{roomId}/items/{itemId}
//
// The item name and type travel as query params so the failure notification
// can describe the item even when the row is already gone.
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
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
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid item id", nil)
		return
	}

	itemName := r.URL.Query().Get("name")
	itemType := entity.ItemType(r.URL.Query().Get("type"))

	if err := h.service.RemoveItem(r.Context(), orderID, roomID, itemID, itemName, itemType); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Item removed", nil)
}

// ConfirmAll handles POST /api/order/confirm
func (h *OrderHandler) ConfirmAll(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	if err := h.service.ConfirmAll(r.Context(), orderID); err != nil {
		respondServiceError(w, err)
		return
	}

	// The workflow reports its outcome through notifications; the HTTP reply
	// only acknowledges the attempt.
	utils.ResponseAccepted(w, "Confirmation started", nil)
}

// ToggleAccordion handles POST /api/accordion/toggle
func (h *OrderHandler) ToggleAccordion(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	var req request.ToggleAccordionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room id", nil)
		return
	}

	utils.ResponseSuccess(w, "success", h.accordion.Toggle(orderID, roomID))
}

// GetAccordion handles GET /api/accordion
func (h *OrderHandler) GetAccordion(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	utils.ResponseSuccess(w, "success", h.accordion.Get(orderID))
}
