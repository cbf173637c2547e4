// Package order implements the order store and its status state machine.
package order

import (
	"fmt"
	"time"
)

// Status is the lifecycle position of an order. The happy path is
// pending → processing → shipped → delivered; cancelled is reachable from
// any non-terminal status. Delivered and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  nil,
	StatusCancelled:  nil,
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := transitions[st]; !ok {
		return "", fmt.Errorf("unknown order status: %q", s)
	}
	return st, nil
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether moving from s to target is a valid forward
// step of the lifecycle graph.
func (s Status) CanTransition(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// LineItem is a frozen cart line inside an order. Never re-priced.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Order is a point-in-time snapshot of a checked-out cart. Only Status
// changes after creation.
type Order struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Items     []LineItem `json:"items"`
	Total     int64      `json:"total"`
	Status    Status     `json:"status"`
}

func (o Order) clone() Order {
	items := make([]LineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
