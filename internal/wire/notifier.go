package wire

import (
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"

	"github.com/google/uuid"
)

// hubNotifier pushes core notifications to the guest's open connections.
type hubNotifier struct {
	hub *realtime.Hub
}

func newHubNotifier(hub *realtime.Hub) usecase.Notifier {
	return &hubNotifier{hub: hub}
}

func (n *hubNotifier) Notify(orderID uuid.UUID, notification usecase.Notification) {
	n.hub.Push(orderID, realtime.WSOut{
		Type:    "notification",
		Payload: notification,
	})
}

// newActiveRoomEmitter surfaces accordion transitions over the same push
// channel, both opens and closes.
func newActiveRoomEmitter(hub *realtime.Hub) usecase.ActiveRoomEmitter {
	return func(orderID, roomID uuid.UUID, open bool) {
		hub.Push(orderID, realtime.WSOut{
			Type: "active_room_change",
			Payload: map[string]any{
				"room_id": roomID.String(),
				"open":    open,
			},
		})
	}
}
