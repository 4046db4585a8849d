package entity

import (
	"time"

	"github.com/google/uuid"
)

// GuestSession grants a guest access to one order. Created by exchanging the
// booking code plus access code, expired sessions are treated as absent.
type GuestSession struct {
	BaseSimple
	OrderID   uuid.UUID `db:"order_id"`
	Token     uuid.UUID `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
