// Package checkout finalizes a cart into a permanent order: it appends to the
// ledger, deducts stock and clears the cart as one logical unit.
package checkout

import (
	"time"

	"go.uber.org/zap"

	"smartpos/internal/cart"
	"smartpos/internal/catalog"
	"smartpos/internal/domain"
	"smartpos/internal/ledger"
)

const (
	ErrMsgCartEmpty      = "Cart is empty"
	ErrMsgInvalidPayment = "Unknown payment method"
)

type Processor struct {
	catalog *catalog.Store
	ledger  *ledger.Ledger
	ids     idGenerator
	now     func() time.Time
	log     *zap.Logger
}

func NewProcessor(cat *catalog.Store, led *ledger.Ledger, log *zap.Logger) *Processor {
	p := &Processor{
		catalog: cat,
		ledger:  led,
		now:     time.Now,
		log:     log,
	}
	for _, o := range led.All() {
		p.ids.seed(o.ID)
	}
	return p
}

// SetClock overrides the time source. Tests use this to pin the evaluation
// instant.
func (p *Processor) SetClock(now func() time.Time) {
	p.now = now
}

// Checkout converts the cart into an immutable order. On success the order is
// in the ledger, each affected product's stock is decremented (floored at
// zero) and the cart is empty. An empty cart or unknown payment method leaves
// everything untouched.
func (p *Processor) Checkout(c *cart.Cart, method domain.PaymentMethod) (domain.Order, error) {
	if c.Len() == 0 {
		return domain.Order{}, domain.NewFailedPrecondition(ErrMsgCartEmpty)
	}
	if !method.Valid() {
		return domain.Order{}, domain.NewInvalidArgument(ErrMsgInvalidPayment)
	}

	items := c.Items()
	totalAmount, totalCost := c.Totals()
	now := p.now()

	order := domain.Order{
		ID:            p.ids.next(now.UnixMilli()),
		Items:         items,
		TotalAmount:   totalAmount,
		TotalCost:     totalCost,
		TotalProfit:   totalAmount - totalCost,
		Timestamp:     now.UnixMilli(),
		PaymentMethod: method,
	}

	p.ledger.Append(order)
	clamped := p.catalog.ApplyDeductions(items)
	c.Clear()

	p.log.Info("order completed",
		zap.String("order_id", order.ID),
		zap.String("payment_method", string(method)),
		zap.Int("lines", len(items)),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Float64("total_profit", order.TotalProfit),
	)
	for _, id := range clamped {
		p.log.Warn("stock clamped to zero on deduction", zap.String("product_id", id), zap.String("order_id", order.ID))
	}

	return order, nil
}
