package usecase

import (
	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a user-facing message the core asks the host surface to
// show. The core never renders; it only emits these.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier delivers notifications to the guest viewing an order.
type Notifier interface {
	Notify(orderID uuid.UUID, notification Notification)
}

// NopNotifier discards notifications, used when no push surface is wired.
type NopNotifier struct{}

func (NopNotifier) Notify(uuid.UUID, Notification) {}
