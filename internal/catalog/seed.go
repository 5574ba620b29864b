package catalog

import "smartpos/internal/domain"

// Categories recognised by the surface. CategoryAll is a filter wildcard,
// not a category products carry.
const (
	CategoryAll     = "全部"
	CategoryDrinks  = "飲品"
	CategoryFood    = "食物"
	CategoryOther   = "其他"
	DefaultCategory = CategoryDrinks
)

// SeedProducts returns the default catalog used when the product slot is
// absent on startup. Callers receive fresh copies.
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{ID: "1", Name: "拿鐵咖啡 (L)", Price: 42, Cost: 12, Category: CategoryDrinks, Stock: 100, Image: "https://picsum.photos/seed/coffee/200"},
		{ID: "2", Name: "牛角包", Price: 28, Cost: 8, Category: CategoryFood, Stock: 50, Image: "https://picsum.photos/seed/croissant/200"},
		{ID: "3", Name: "芝士蛋糕", Price: 45, Cost: 15, Category: CategoryFood, Stock: 20, Image: "https://picsum.photos/seed/cake/200"},
		{ID: "4", Name: "冷萃咖啡", Price: 38, Cost: 10, Category: CategoryDrinks, Stock: 80, Image: "https://picsum.photos/seed/coldbrew/200"},
	}
}
