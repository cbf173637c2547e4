// Package session ties together the per-user state of the marketplace.
package session

import (
	"github.com/shambadirect/agrimarket/internal/cart"
	"github.com/shambadirect/agrimarket/internal/order"
)

// Session owns exactly one cart and one order store. It is passed explicitly
// to every operation instead of living in ambient scope; independent
// sessions never share state.
type Session struct {
	UserID string
	Cart   *cart.Cart
	Orders *order.Manager
}

// New creates a fresh session for a pre-authenticated user. bus may be nil
// when no event plumbing is wired.
func New(userID string, bus order.EventPublisher) *Session {
	return &Session{
		UserID: userID,
		Cart:   cart.New(),
		Orders: order.NewManager(bus),
	}
}
