package adaptor

import (
	"errors"
	"net/http"

	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Session  *SessionHandler
	Order    *OrderHandler
	Bid      *BidHandler
	Proposal *ProposalHandler
	Realtime *RealtimeHandler
}

func NewHandler(service *usecase.Service, realtime *RealtimeHandler, log *zap.Logger) *Handler {
	return &Handler{
		Session:  NewSessionHandler(service.Session, log),
		Order:    NewOrderHandler(service.Order, service.Accordion, log),
		Bid:      NewBidHandler(service.Bid, log),
		Proposal: NewProposalHandler(service.Proposal, log),
		Realtime: realtime,
	}
}

// respondServiceError maps core errors onto the JSON envelope.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrRoomNotFound),
		errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrProposalNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidAccessCode):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrBaseRoomProtected),
		errors.Is(err, usecase.ErrBidOutOfRange):
		utils.ResponseUnprocessable(w, err.Error())
	case errors.Is(err, usecase.ErrRemovalInFlight):
		utils.ResponseConflict(w, err.Error())
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
