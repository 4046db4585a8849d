package response

import "time"

type SessionResponse struct {
	Token     string    `json:"token"`
	OrderID   string    `json:"order_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
