package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.GuestSessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.GuestSessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// CreateSession handles POST /api/session (public)
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", session)
}
