package order

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shambadirect/agrimarket/internal/cart"
)

var (
	// ErrEmptyCart rejects checkout of a cart with no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnknownOrder is returned when the target order id does not exist.
	ErrUnknownOrder = errors.New("unknown order")
	// ErrInvalidTransition rejects a status change the lifecycle graph does
	// not permit.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAlreadyTerminal rejects cancelling a delivered or cancelled order.
	ErrAlreadyTerminal = errors.New("order is already terminal")
)

// EventPublisher publishes order lifecycle events. *cqrs.EventBus satisfies
// it; a nil publisher drops events.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Manager owns the orders of one session: it creates them at checkout and
// validates every status transition. All failures are local validation
// failures that leave state unchanged.
type Manager struct {
	mu     sync.Mutex
	orders map[string]*Order
	ids    []string // creation order
	bus    EventPublisher
	now    func() time.Time
}

// NewManager creates an empty order store. bus may be nil.
func NewManager(bus EventPublisher) *Manager {
	return &Manager{
		orders: make(map[string]*Order),
		bus:    bus,
		now:    time.Now,
	}
}

// Checkout freezes the cart's current contents into a new pending order and
// clears the cart. Both happen in one synchronous step with no fallible
// operation between them, so the caller never observes a half-finished
// checkout.
func (m *Manager) Checkout(ctx context.Context, c *cart.Cart) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.Empty() {
		return Order{}, ErrEmptyCart
	}

	items := make([]LineItem, 0, c.Len())
	for _, ci := range c.Items() {
		items = append(items, LineItem{
			ProductID: ci.ProductID,
			Name:      ci.Name,
			ImageURL:  ci.ImageURL,
			UnitPrice: ci.UnitPrice,
			Quantity:  ci.Quantity,
			Subtotal:  ci.UnitPrice * int64(ci.Quantity),
		})
	}

	o := &Order{
		ID:        uuid.New().String(),
		CreatedAt: m.now(),
		Items:     items,
		Total:     c.Subtotal(),
		Status:    StatusPending,
	}
	m.orders[o.ID] = o
	m.ids = append(m.ids, o.ID)
	c.Clear()

	m.publish(ctx, &OrderPlaced{
		OrderID:  o.ID,
		Items:    items,
		Total:    o.Total,
		PlacedAt: o.CreatedAt,
	})

	return o.clone(), nil
}

// Advance moves an order to newStatus if the lifecycle graph permits it.
// The order is left unchanged otherwise.
func (m *Manager) Advance(ctx context.Context, orderID string, newStatus Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return ErrUnknownOrder
	}
	if !o.Status.CanTransition(newStatus) {
		return ErrInvalidTransition
	}

	from := o.Status
	o.Status = newStatus
	m.publish(ctx, &OrderStatusChanged{OrderID: o.ID, From: from, To: newStatus, ChangedAt: m.now()})
	return nil
}

// Cancel moves a non-terminal order to cancelled.
func (m *Manager) Cancel(ctx context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return ErrUnknownOrder
	}
	if o.Status.Terminal() {
		return ErrAlreadyTerminal
	}

	from := o.Status
	o.Status = StatusCancelled
	m.publish(ctx, &OrderStatusChanged{OrderID: o.ID, From: from, To: StatusCancelled, ChangedAt: m.now()})
	return nil
}

// Get returns a copy of one order.
func (m *Manager) Get(orderID string) (Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return Order{}, false
	}
	return o.clone(), true
}

// List returns copies of all orders, newest first.
func (m *Manager) List() []Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Order, 0, len(m.ids))
	for i := len(m.ids) - 1; i >= 0; i-- {
		out = append(out, m.orders[m.ids[i]].clone())
	}
	return out
}

// publish emits a lifecycle event. The order mutation has already happened;
// a failed emit is logged, not rolled back.
func (m *Manager) publish(ctx context.Context, event any) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish order event", "event", event, "err", err)
	}
}
