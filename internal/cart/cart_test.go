package cart

import (
	"testing"

	"smartpos/internal/domain"
)

func latte() *domain.Product {
	return &domain.Product{ID: "1", Name: "拿鐵咖啡 (L)", Price: 42, Cost: 12, Stock: 100}
}

func croissant() *domain.Product {
	return &domain.Product{ID: "2", Name: "牛角包", Price: 28, Cost: 8, Stock: 50}
}

func TestAddItem_RepeatedAddsIncrementOneLine(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.AddItem(latte())
	}

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if got := c.Quantity("1"); got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestAddItem_SnapshotsPriceAndCost(t *testing.T) {
	c := New()
	p := latte()
	c.AddItem(p)

	// A later catalog edit must not reach lines already in the cart.
	p.Price = 99
	p.Cost = 50

	items := c.Items()
	if items[0].Price != 42 || items[0].Cost != 12 {
		t.Errorf("expected snapshotted price 42 / cost 12, got %v / %v", items[0].Price, items[0].Cost)
	}
}

func TestRemoveItem_DropsLineEntirely(t *testing.T) {
	c := New()
	c.AddItem(latte())
	c.AddItem(latte())
	c.AddItem(latte())

	c.RemoveItem("1")

	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(latte())
	c.RemoveItem("missing")

	if c.Len() != 1 {
		t.Errorf("expected 1 line, got %d", c.Len())
	}
}

func TestRemoveThenAdd_StartsAtOne(t *testing.T) {
	c := New()
	c.AddItem(latte())
	c.AddItem(latte())
	c.RemoveItem("1")
	c.AddItem(latte())

	if got := c.Quantity("1"); got != 1 {
		t.Errorf("expected quantity 1 after remove+add, got %d", got)
	}
}

func TestAdjustQuantity_FlooredAtOne(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"increment", 1, 1, 2},
		{"decrement", 3, -1, 2},
		{"floor at one", 1, -1, 1},
		{"large negative", 2, -10, 1},
		{"large positive", 1, 10, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.AddItem(latte())
			c.AdjustQuantity("1", tt.start-1)
			c.AdjustQuantity("1", tt.delta)
			if got := c.Quantity("1"); got != tt.want {
				t.Errorf("expected quantity %d, got %d", tt.want, got)
			}
		})
	}
}

func TestAdjustQuantity_AbsentIsNoOp(t *testing.T) {
	c := New()
	c.AdjustQuantity("missing", 3)
	if c.Len() != 0 {
		t.Errorf("expected empty cart, got %d lines", c.Len())
	}
}

func TestTotals(t *testing.T) {
	c := New()
	c.AddItem(latte())
	c.AddItem(latte())
	c.AddItem(croissant())

	amount, cost := c.Totals()
	if amount != 112 {
		t.Errorf("expected totalAmount 112, got %v", amount)
	}
	if cost != 32 {
		t.Errorf("expected totalCost 32, got %v", cost)
	}
}

func TestTotals_EmptyCart(t *testing.T) {
	c := New()
	amount, cost := c.Totals()
	if amount != 0 || cost != 0 {
		t.Errorf("expected zero totals, got %v / %v", amount, cost)
	}
}

func TestItems_InsertionOrderPreserved(t *testing.T) {
	c := New()
	c.AddItem(croissant())
	c.AddItem(latte())
	c.AddItem(croissant())

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != "2" || items[1].ProductID != "1" {
		t.Errorf("expected insertion order [2 1], got [%s %s]", items[0].ProductID, items[1].ProductID)
	}
}

func TestItems_ReturnsCopies(t *testing.T) {
	c := New()
	c.AddItem(latte())

	items := c.Items()
	items[0].Quantity = 99

	if got := c.Quantity("1"); got != 1 {
		t.Errorf("mutating the returned slice changed the cart: quantity %d", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(latte())
	c.AddItem(croissant())
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cart after clear, got %d lines", c.Len())
	}
	amount, cost := c.Totals()
	if amount != 0 || cost != 0 {
		t.Errorf("expected zero totals after clear, got %v / %v", amount, cost)
	}
}
