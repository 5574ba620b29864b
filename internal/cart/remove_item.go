package cart

// RemoveItem drops the line for productID entirely, regardless of quantity.
// Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
