package order

import "time"

const EventOrderPlaced = "OrderPlaced"

// OrderPlaced is published to Kafka after a placement commits.
type OrderPlaced struct {
	EventID  string      `json:"event_id"`
	OrderID  string      `json:"order_id"`
	UserID   string      `json:"user_id"`
	Items    []OrderItem `json:"items"`
	PlacedAt time.Time   `json:"placed_at"`
}
