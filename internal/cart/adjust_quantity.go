package cart

// AdjustQuantity applies delta to the line's quantity, floored at 1. A line
// cannot reach zero through this operation; use RemoveItem to drop it.
// Adjusting an absent line is a no-op.
func (c *Cart) AdjustQuantity(productID string, delta int) {
	item, ok := c.items[productID]
	if !ok {
		return
	}
	next := item.Quantity + delta
	if next < 1 {
		next = 1
	}
	item.Quantity = next
}
