package order

import "time"

// OrderPlaced is emitted when a checkout succeeds.
type OrderPlaced struct {
	OrderID  string     `json:"order_id"`
	Items    []LineItem `json:"items"`
	Total    int64      `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}

// OrderStatusChanged is emitted on every accepted status transition,
// cancellation included.
type OrderStatusChanged struct {
	OrderID   string    `json:"order_id"`
	From      Status    `json:"from"`
	To        Status    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}
