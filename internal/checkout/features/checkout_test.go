package features

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"smartpos/internal/cart"
	"smartpos/internal/catalog"
	"smartpos/internal/checkout"
	"smartpos/internal/domain"
	"smartpos/internal/ledger"
)

type checkoutTestContext struct {
	catalog   *catalog.Store
	ledger    *ledger.Ledger
	cart      *cart.Cart
	processor *checkout.Processor
	lastOrder domain.Order
	lastErr   error
}

func (c *checkoutTestContext) reset() {
	c.catalog = catalog.NewStore()
	c.ledger = ledger.New()
	c.cart = cart.New()
	c.processor = nil
	c.lastOrder = domain.Order{}
	c.lastErr = nil
}

func (c *checkoutTestContext) ensureProcessor() *checkout.Processor {
	if c.processor == nil {
		c.processor = checkout.NewProcessor(c.catalog, c.ledger, zap.NewNop())
	}
	return c.processor
}

func (c *checkoutTestContext) aCatalogWithProduct(id, name string, price, cost float64, stock int) error {
	products := c.catalog.List()
	next := make([]*domain.Product, 0, len(products)+1)
	for i := range products {
		next = append(next, &products[i])
	}
	next = append(next, &domain.Product{ID: id, Name: name, Price: price, Cost: cost, Stock: stock})
	c.catalog.Replace(next)
	return nil
}

func (c *checkoutTestContext) anEmptyLedger() error {
	c.ledger.Replace(nil)
	return nil
}

func (c *checkoutTestContext) anEmptyCart() error {
	c.cart.Clear()
	return nil
}

func (c *checkoutTestContext) theClockIsFrozen() error {
	frozen := time.UnixMilli(1700000000000)
	c.ensureProcessor().SetClock(func() time.Time { return frozen })
	return nil
}

func (c *checkoutTestContext) theCartHoldsProductWithQuantity(id string, quantity int) error {
	p, ok := c.catalog.Get(id)
	if !ok {
		return fmt.Errorf("product %s not in catalog", id)
	}
	for i := 0; i < quantity; i++ {
		c.cart.AddItem(&p)
	}
	return nil
}

func (c *checkoutTestContext) iCheckOutWith(method string) error {
	c.lastOrder, c.lastErr = c.ensureProcessor().Checkout(c.cart, domain.PaymentMethod(method))
	return nil
}

func (c *checkoutTestContext) theCheckoutFailsWithStatus(status string) error {
	if c.lastErr == nil {
		return fmt.Errorf("expected checkout to fail")
	}
	code, ok := domain.CodeOf(c.lastErr)
	if !ok {
		return fmt.Errorf("expected a typed error, got %v", c.lastErr)
	}
	if code.String() != status {
		return fmt.Errorf("expected status %s, got %s", status, code)
	}
	return nil
}

func (c *checkoutTestContext) theLedgerHasOrders(n int) error {
	if c.ledger.Count() != n {
		return fmt.Errorf("expected %d orders, got %d", n, c.ledger.Count())
	}
	return nil
}

func (c *checkoutTestContext) theOrderTotalAmountIs(want float64) error {
	if c.lastOrder.TotalAmount != want {
		return fmt.Errorf("expected total amount %v, got %v", want, c.lastOrder.TotalAmount)
	}
	return nil
}

func (c *checkoutTestContext) theOrderTotalCostIs(want float64) error {
	if c.lastOrder.TotalCost != want {
		return fmt.Errorf("expected total cost %v, got %v", want, c.lastOrder.TotalCost)
	}
	return nil
}

func (c *checkoutTestContext) theOrderTotalProfitIs(want float64) error {
	if c.lastOrder.TotalProfit != want {
		return fmt.Errorf("expected total profit %v, got %v", want, c.lastOrder.TotalProfit)
	}
	return nil
}

func (c *checkoutTestContext) theOrderPaymentMethodIs(method string) error {
	if string(c.lastOrder.PaymentMethod) != method {
		return fmt.Errorf("expected payment method %s, got %s", method, c.lastOrder.PaymentMethod)
	}
	return nil
}

func (c *checkoutTestContext) productHasStock(id string, stock int) error {
	p, ok := c.catalog.Get(id)
	if !ok {
		return fmt.Errorf("product %s not in catalog", id)
	}
	if p.Stock != stock {
		return fmt.Errorf("expected stock %d for product %s, got %d", stock, id, p.Stock)
	}
	return nil
}

func (c *checkoutTestContext) theCartHasLines(n int) error {
	if c.cart.Len() != n {
		return fmt.Errorf("expected %d cart lines, got %d", n, c.cart.Len())
	}
	return nil
}

func (c *checkoutTestContext) theTwoOrdersHaveDistinctIDs() error {
	orders := c.ledger.All()
	if len(orders) != 2 {
		return fmt.Errorf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID == orders[1].ID {
		return fmt.Errorf("order ids collide: %s", orders[0].ID)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a catalog with product "([^"]*)" named "([^"]*)" priced (\d+) costing (\d+) with stock (\d+)$`, tc.aCatalogWithProduct)
	ctx.Step(`^an empty ledger$`, tc.anEmptyLedger)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^the clock is frozen$`, tc.theClockIsFrozen)
	ctx.Step(`^the cart holds product "([^"]*)" with quantity (\d+)$`, tc.theCartHoldsProductWithQuantity)
	ctx.Step(`^I check out with payment method "([^"]*)"$`, tc.iCheckOutWith)
	ctx.Step(`^the checkout fails with status "([^"]*)"$`, tc.theCheckoutFailsWithStatus)
	ctx.Step(`^the ledger has (\d+) orders?$`, tc.theLedgerHasOrders)
	ctx.Step(`^the order total amount is (\d+)$`, tc.theOrderTotalAmountIs)
	ctx.Step(`^the order total cost is (\d+)$`, tc.theOrderTotalCostIs)
	ctx.Step(`^the order total profit is (\d+)$`, tc.theOrderTotalProfitIs)
	ctx.Step(`^the order payment method is "([^"]*)"$`, tc.theOrderPaymentMethodIs)
	ctx.Step(`^product "([^"]*)" has stock (\d+)$`, tc.productHasStock)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the two orders have distinct ids$`, tc.theTwoOrdersHaveDistinctIDs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
