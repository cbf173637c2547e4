package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shambadirect/agrimarket/internal/cart"
	"github.com/shambadirect/agrimarket/internal/catalog"
	"github.com/shambadirect/agrimarket/internal/order"
)

var (
	seeds      = catalog.Product{ID: "s1", Name: "Organic Maize Seeds", Category: catalog.CategorySeeds, Price: 2500, Unit: catalog.UnitKg}
	fertilizer = catalog.Product{ID: "ft1", Name: "Premium Fertilizer", Category: catalog.CategoryFertilizers, Price: 3500, Unit: catalog.UnitBag}
)

// recordingBus captures published events for assertions.
type recordingBus struct {
	events []any
}

func (b *recordingBus) Publish(_ context.Context, event any) error {
	b.events = append(b.events, event)
	return nil
}

func checkout(t *testing.T, m *order.Manager, c *cart.Cart) order.Order {
	t.Helper()
	o, err := m.Checkout(context.Background(), c)
	require.NoError(t, err)
	return o
}

func TestCheckoutFreezesCartAndClearsIt(t *testing.T) {
	bus := &recordingBus{}
	m := order.NewManager(bus)
	c := cart.New()
	c.Add(seeds, 2)
	c.Add(fertilizer, 1)
	require.Equal(t, int64(8500), c.Subtotal())

	o := checkout(t, m, c)

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, int64(8500), o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, int64(5000), o.Items[0].Subtotal)
	assert.Equal(t, int64(3500), o.Items[1].Subtotal)
	assert.True(t, c.Empty(), "checkout must clear the cart")
	assert.False(t, o.CreatedAt.IsZero())

	require.Len(t, bus.events, 1)
	placed, ok := bus.events[0].(*order.OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, o.ID, placed.OrderID)
	assert.Equal(t, int64(8500), placed.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	m := order.NewManager(nil)
	c := cart.New()

	_, err := m.Checkout(context.Background(), c)
	assert.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestAdvanceHappyPath(t *testing.T) {
	ctx := context.Background()
	bus := &recordingBus{}
	m := order.NewManager(bus)
	c := cart.New()
	c.Add(seeds, 1)
	o := checkout(t, m, c)

	// Skipping processing is rejected and leaves the order untouched.
	err := m.Advance(ctx, o.ID, order.StatusShipped)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	got, _ := m.Get(o.ID)
	assert.Equal(t, order.StatusPending, got.Status)

	require.NoError(t, m.Advance(ctx, o.ID, order.StatusProcessing))
	require.NoError(t, m.Advance(ctx, o.ID, order.StatusShipped))
	require.NoError(t, m.Advance(ctx, o.ID, order.StatusDelivered))

	got, _ = m.Get(o.ID)
	assert.Equal(t, order.StatusDelivered, got.Status)

	// OrderPlaced plus three status changes.
	assert.Len(t, bus.events, 4)
	last, ok := bus.events[3].(*order.OrderStatusChanged)
	require.True(t, ok)
	assert.Equal(t, order.StatusShipped, last.From)
	assert.Equal(t, order.StatusDelivered, last.To)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	m := order.NewManager(nil)
	err := m.Advance(context.Background(), "nope", order.StatusProcessing)
	assert.ErrorIs(t, err, order.ErrUnknownOrder)
}

func TestCancelFromNonTerminal(t *testing.T) {
	ctx := context.Background()
	m := order.NewManager(nil)
	c := cart.New()
	c.Add(seeds, 1)
	o := checkout(t, m, c)

	require.NoError(t, m.Advance(ctx, o.ID, order.StatusProcessing))
	require.NoError(t, m.Cancel(ctx, o.ID))

	got, _ := m.Get(o.ID)
	assert.Equal(t, order.StatusCancelled, got.Status)

	// Cancelled is terminal: no second cancel, no advance.
	assert.ErrorIs(t, m.Cancel(ctx, o.ID), order.ErrAlreadyTerminal)
	assert.ErrorIs(t, m.Advance(ctx, o.ID, order.StatusProcessing), order.ErrInvalidTransition)
}

func TestCancelDeliveredOrder(t *testing.T) {
	ctx := context.Background()
	m := order.NewManager(nil)
	c := cart.New()
	c.Add(fertilizer, 1)
	o := checkout(t, m, c)

	require.NoError(t, m.Advance(ctx, o.ID, order.StatusProcessing))
	require.NoError(t, m.Advance(ctx, o.ID, order.StatusShipped))
	require.NoError(t, m.Advance(ctx, o.ID, order.StatusDelivered))

	assert.ErrorIs(t, m.Cancel(ctx, o.ID), order.ErrAlreadyTerminal)
}

func TestCancelUnknownOrder(t *testing.T) {
	m := order.NewManager(nil)
	assert.ErrorIs(t, m.Cancel(context.Background(), "nope"), order.ErrUnknownOrder)
}

func TestListNewestFirst(t *testing.T) {
	m := order.NewManager(nil)

	c := cart.New()
	c.Add(seeds, 1)
	first := checkout(t, m, c)

	c.Add(fertilizer, 1)
	second := checkout(t, m, c)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestOrdersAreSnapshots(t *testing.T) {
	m := order.NewManager(nil)
	c := cart.New()
	c.Add(seeds, 2)
	o := checkout(t, m, c)

	// Mutating the returned copy must not touch the store.
	o.Items[0].Quantity = 99
	o.Total = 0

	got, ok := m.Get(o.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, int64(5000), got.Total)
}
