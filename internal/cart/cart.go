// Package cart implements the in-progress order: an insertion-ordered set of
// line items, at most one per product. The cart is session-scoped and never
// persisted; it touches neither the catalog nor the ledger.
package cart

import "smartpos/internal/domain"

type Cart struct {
	items map[string]*domain.OrderItem // productID -> line
	order []string                     // productIDs in insertion order
}

func New() *Cart {
	return &Cart{
		items: make(map[string]*domain.OrderItem),
	}
}

// Len reports the number of distinct lines, not the summed quantity.
func (c *Cart) Len() int {
	return len(c.order)
}

// Items returns copies of the lines in insertion order. Mutating the result
// does not affect the cart.
func (c *Cart) Items() []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

// Quantity returns the quantity of the line for productID, or 0 if absent.
func (c *Cart) Quantity(productID string) int {
	if item, ok := c.items[productID]; ok {
		return item.Quantity
	}
	return 0
}

// Clear empties the cart with no other side effects.
func (c *Cart) Clear() {
	c.items = make(map[string]*domain.OrderItem)
	c.order = nil
}
