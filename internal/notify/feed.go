// Package notify turns order lifecycle events into the session's
// notification feed.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shambadirect/agrimarket/internal/order"
)

// Notification is one human-readable feed entry.
type Notification struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Feed accumulates notifications from order events. Events arrive on the
// message router goroutine while reads come from HTTP handlers, hence the
// mutex.
type Feed struct {
	mu    sync.Mutex
	items []Notification
}

func NewFeed() *Feed {
	return &Feed{}
}

// OnOrderPlaced records a notification for a successful checkout.
func (f *Feed) OnOrderPlaced(_ context.Context, e *order.OrderPlaced) error {
	f.append(e.OrderID, fmt.Sprintf("Order %s placed: %d item(s), TZS %d total", e.OrderID, len(e.Items), e.Total))
	return nil
}

// OnOrderStatusChanged records a notification for every status transition.
func (f *Feed) OnOrderStatusChanged(_ context.Context, e *order.OrderStatusChanged) error {
	f.append(e.OrderID, fmt.Sprintf("Order %s is now %s", e.OrderID, e.To))
	return nil
}

func (f *Feed) append(orderID, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, Notification{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// All returns the notifications, newest first.
func (f *Feed) All() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out
}

// Unread counts the notifications not yet marked read.
func (f *Feed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, item := range f.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead flags every notification as read.
func (f *Feed) MarkRead() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		f.items[i].Read = true
	}
}
