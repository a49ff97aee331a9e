package service

import (
	"context"
	"time"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypePriceAlert     = "price_alert"
	EventTypePurchaseStatus = "purchase_status"
)

// PriceAlertEvent is emitted when a dealership lowers an offer price.
type PriceAlertEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OfferID      int64     `json:"offer_id"`
	CarID        int64     `json:"car_id"`
	CarName      string    `json:"car_name"`
	DealershipID int64     `json:"dealership_id"`
	OldPrice     float64   `json:"old_price"`
	NewPrice     float64   `json:"new_price"`
	BuyerIDs     []int64   `json:"buyer_ids"` // Favorites with price alerts enabled
	OccurredAt   time.Time `json:"occurred_at"`
}

// PurchaseStatusEvent is emitted after a purchase transition commits.
type PurchaseStatusEvent struct {
	RequestID    string    `json:"request_id,omitempty"`
	PurchaseID   int64     `json:"purchase_id"`
	OfferID      int64     `json:"offer_id"`
	BuyerID      int64     `json:"buyer_id"`
	DealershipID int64     `json:"dealership_id"`
	FromStatus   string    `json:"from_status,omitempty"`
	ToStatus     string    `json:"to_status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishPriceAlert(ctx context.Context, event *PriceAlertEvent) error

	PublishPurchaseStatus(ctx context.Context, event *PurchaseStatusEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
