package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is emitted once a cart has been checked out.
type OrderPlacedEvent struct {
	RequestID string           `json:"request_id,omitempty"` // For distributed tracing
	CartID    string           `json:"cart_id"`              // Display id of the placed cart
	UserID    string           `json:"user_id"`
	PlacedAt  time.Time        `json:"placed_at"`
	Items     []OrderEventItem `json:"items"`
}

// OrderEventItem is one product line of a placed order.
type OrderEventItem struct {
	ProductID int64   `json:"product_id"`
	ShopID    int64   `json:"shop_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for shop fulfilment
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
