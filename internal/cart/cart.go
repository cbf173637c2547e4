// Package cart holds the mutable shopping cart of a single session.
package cart

import "github.com/shambadirect/agrimarket/internal/catalog"

// Item is one cart line. UnitPrice, Name and ImageURL are snapshots frozen
// at add time; later catalog changes never alter them.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Cart is owned by exactly one session and mutated only on that session's
// request path. Line items keep their first-add order.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add merges qty into an existing line for the product, or appends a new
// line with a frozen price snapshot. A non-positive qty counts as 1.
func (c *Cart) Add(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
}

// Adjust changes a line's quantity by delta, clamping silently at 1.
// Removal is the only path to zero; an absent id is a no-op.
func (c *Cart) Adjust(productID string, delta int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Remove deletes a line item. Removing an absent id is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the line items in first-add order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Subtotal is the sum of quantity times frozen unit price over all lines.
func (c *Cart) Subtotal() int64 {
	var t int64
	for _, item := range c.items {
		t += item.UnitPrice * int64(item.Quantity)
	}
	return t
}

// Total adds a caller-supplied flat shipping fee to the subtotal. Shipping
// computation itself is external input.
func (c *Cart) Total(shippingFee int64) int64 {
	return c.Subtotal() + shippingFee
}

// Clear empties the cart. Checkout is the expected caller.
func (c *Cart) Clear() {
	c.items = nil
}
