package cart

// Totals returns the summed amount (price x quantity) and cost
// (cost x quantity) across all lines. Derived on demand, never stored.
func (c *Cart) Totals() (totalAmount, totalCost float64) {
	for _, item := range c.items {
		totalAmount += item.Price * float64(item.Quantity)
		totalCost += item.Cost * float64(item.Quantity)
	}
	return totalAmount, totalCost
}
