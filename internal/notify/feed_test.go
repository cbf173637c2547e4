package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shambadirect/agrimarket/internal/notify"
	"github.com/shambadirect/agrimarket/internal/order"
)

func TestFeedAccumulatesOrderEvents(t *testing.T) {
	ctx := context.Background()
	f := notify.NewFeed()

	require.NoError(t, f.OnOrderPlaced(ctx, &order.OrderPlaced{
		OrderID:  "ord-1",
		Items:    []order.LineItem{{ProductID: "c1", Quantity: 2}},
		Total:    2400,
		PlacedAt: time.Now(),
	}))
	require.NoError(t, f.OnOrderStatusChanged(ctx, &order.OrderStatusChanged{
		OrderID: "ord-1",
		From:    order.StatusPending,
		To:      order.StatusProcessing,
	}))

	all := f.All()
	require.Len(t, all, 2)
	// Newest first.
	assert.Contains(t, all[0].Message, "processing")
	assert.Contains(t, all[1].Message, "placed")
	assert.Equal(t, 2, f.Unread())
}

func TestMarkRead(t *testing.T) {
	f := notify.NewFeed()
	require.NoError(t, f.OnOrderStatusChanged(context.Background(), &order.OrderStatusChanged{
		OrderID: "ord-2",
		From:    order.StatusShipped,
		To:      order.StatusDelivered,
	}))

	f.MarkRead()

	assert.Zero(t, f.Unread())
	require.Len(t, f.All(), 1)
	assert.True(t, f.All()[0].Read)
}
