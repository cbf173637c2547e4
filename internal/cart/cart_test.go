package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shambadirect/agrimarket/internal/cart"
	"github.com/shambadirect/agrimarket/internal/catalog"
)

var (
	maize  = catalog.Product{ID: "c1", Name: "Maize", Category: catalog.CategoryCrops, Price: 1200, Unit: catalog.UnitKg, Location: "Morogoro"}
	rice   = catalog.Product{ID: "c2", Name: "Rice", Category: catalog.CategoryCrops, Price: 2500, Unit: catalog.UnitKg, Location: "Mbeya"}
	cattle = catalog.Product{ID: "l1", Name: "Dairy Cattle", Category: catalog.CategoryLivestock, Price: 750000, Unit: catalog.UnitHead, Location: "Arusha"}
)

func TestAddMergesSameProduct(t *testing.T) {
	c := cart.New()
	c.Add(maize, 2)
	c.Add(maize, 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(1200), items[0].UnitPrice)
}

func TestAddKeepsFirstAddOrder(t *testing.T) {
	c := cart.New()
	c.Add(rice, 1)
	c.Add(maize, 1)
	c.Add(rice, 1)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "c2", items[0].ProductID)
	assert.Equal(t, "c1", items[1].ProductID)
}

func TestAddNonPositiveQuantityCountsAsOne(t *testing.T) {
	c := cart.New()
	c.Add(maize, 0)
	c.Add(rice, -4)

	for _, item := range c.Items() {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestAdjustClampsAtOne(t *testing.T) {
	c := cart.New()
	c.Add(maize, 5)

	c.Adjust("c1", -100)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdjustAbsentIDIsNoop(t *testing.T) {
	c := cart.New()
	c.Add(maize, 2)

	c.Adjust("nope", 3)

	assert.Equal(t, int64(2400), c.Subtotal())
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := cart.New()
	c.Add(maize, 1)
	c.Add(rice, 1)

	c.Remove("c1")
	c.Remove("c1")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "c2", items[0].ProductID)
}

func TestSubtotalUsesFrozenPrices(t *testing.T) {
	c := cart.New()
	p := maize
	c.Add(p, 2)

	// A later catalog price change must not reprice the cart.
	p.Price = 9999
	assert.Equal(t, int64(2400), c.Subtotal())
}

func TestSubtotalScenario(t *testing.T) {
	c := cart.New()
	c.Add(maize, 2)
	c.Adjust("c1", 3)

	assert.Equal(t, int64(6000), c.Subtotal())
}

func TestTotalAddsFlatShipping(t *testing.T) {
	c := cart.New()
	c.Add(cattle, 1)

	assert.Equal(t, int64(750500), c.Total(500))
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Add(maize, 1)
	c.Clear()

	assert.True(t, c.Empty())
	assert.Zero(t, c.Subtotal())
}
