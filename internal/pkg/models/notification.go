package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies connection notifications
type NotificationType string

const (
	NotificationConnectionAccepted   NotificationType = "connection_accepted"
	NotificationPaymentRequest       NotificationType = "payment_request"
	NotificationPaymentConfirmation  NotificationType = "payment_confirmation"
)

// Notification is the connection-request entity a payment attaches to.
// FromUserID is the seeker (payee) and ToUserID the sponsor (payer); the
// payment_* columns embed the PaymentRequest record.
type Notification struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	Type       NotificationType `json:"type" db:"type"`
	FromUserID uuid.UUID        `json:"from_user_id" db:"from_user_id"`
	ToUserID   uuid.UUID        `json:"to_user_id" db:"to_user_id"`
	ListingID  uuid.UUID        `json:"listing_id" db:"listing_id"`
	Content    string           `json:"content" db:"content"`
	Status     string           `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`

	Payment *PaymentRequest `json:"payment,omitempty"`
}
