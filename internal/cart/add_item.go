package cart

import "smartpos/internal/domain"

// AddItem adds one unit of product to the cart. A repeated add for the same
// product increments the existing line instead of duplicating it. Price and
// cost are snapshotted here; a later catalog edit does not change this line.
// Stock is not checked at add time.
func (c *Cart) AddItem(product *domain.Product) {
	if existing, ok := c.items[product.ID]; ok {
		existing.Quantity++
		return
	}
	c.items[product.ID] = &domain.OrderItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Cost:      product.Cost,
		Quantity:  1,
	}
	c.order = append(c.order, product.ID)
}
