package adaptor

import (
	"net/http"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// RealtimeHandler upgrades guest connections and wires the hub to the merged
// change feed.
type RealtimeHandler struct {
	hub      *realtime.Hub
	bridge   *realtime.Bridge
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, bridge *realtime.Bridge, log *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:    hub,
		bridge: bridge,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The session token already gates this route; cross-origin
			// guests are expected.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With(zap.String("handler", "realtime")),
	}
}

// Serve handles GET /ws. The bridge holds one subscription per concern, so
// connecting retargets the feed to this order; the hub still fans events out
// to every open connection for it.
func (h *RealtimeHandler) Serve(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.GetOrderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn, orderID)
	h.log.Info("Guest connected",
		zap.String("order_id", orderID.String()),
		zap.Int("connections", h.hub.ConnectionCount(orderID)))

	h.bridge.SubscribeProposals(orderID, func(proposal entity.Proposal) {
		h.hub.Push(orderID, realtime.WSOut{
			Type:    realtime.EventNewProposal,
			Payload: response.ProposalToResponse(&proposal, time.Now()),
		})
	})
	h.bridge.SubscribeOrderStatus(orderID, func(event realtime.BroadcastEvent) {
		h.hub.Push(orderID, realtime.WSOut{
			Type:    event.Name,
			Payload: event.Payload,
		})
	})
}
