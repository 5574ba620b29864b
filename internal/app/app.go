// Package app holds the terminal's application state: catalog, ledger and the
// active cart behind one mutex, with persistence through an injected store.
// Every mutation is applied as a single synchronous step, so no caller ever
// observes an order without its stock deduction or vice versa.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"smartpos/internal/cart"
	"smartpos/internal/catalog"
	"smartpos/internal/checkout"
	"smartpos/internal/domain"
	"smartpos/internal/insight"
	"smartpos/internal/ledger"
	"smartpos/internal/report"
	"smartpos/internal/storage"
)

type App struct {
	mu        sync.Mutex
	catalog   *catalog.Store
	ledger    *ledger.Ledger
	cart      *cart.Cart
	processor *checkout.Processor
	store     storage.Store
	insight   *insight.Service
	log       *zap.Logger
	onOrder   []func(domain.Order)
}

func New(store storage.Store, insightSvc *insight.Service, log *zap.Logger) *App {
	cat := catalog.NewStore()
	led := ledger.New()
	return &App{
		catalog:   cat,
		ledger:    led,
		cart:      cart.New(),
		processor: checkout.NewProcessor(cat, led, log),
		store:     store,
		insight:   insightSvc,
		log:       log,
	}
}

// OnOrder registers a hook invoked after each completed checkout, outside the
// state lock. The httpapi feed uses this to push orders to dashboards.
func (a *App) OnOrder(fn func(domain.Order)) {
	a.onOrder = append(a.onOrder, fn)
}

// Load restores both slots from storage. An absent product slot is seeded
// with the default catalog and persisted immediately; an absent order slot
// starts an empty ledger and is not written until the first order.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, ok, err := a.store.Load(ctx, storage.ProductsKey)
	if err != nil {
		return err
	}
	if ok {
		var products []*domain.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return fmt.Errorf("failed to decode product slot: %w", err)
		}
		a.catalog.Replace(products)
	} else {
		a.catalog.Replace(catalog.SeedProducts())
		if err := a.persistProducts(ctx); err != nil {
			return err
		}
		a.log.Info("seeded default catalog", zap.Int("products", a.catalog.Len()))
	}

	data, ok, err = a.store.Load(ctx, storage.OrdersKey)
	if err != nil {
		return err
	}
	if ok {
		var orders []domain.Order
		if err := json.Unmarshal(data, &orders); err != nil {
			return fmt.Errorf("failed to decode order slot: %w", err)
		}
		a.ledger.Replace(orders)
	}

	// Rebuild the processor so its id guard covers the loaded history.
	a.processor = checkout.NewProcessor(a.catalog, a.ledger, a.log)

	a.log.Info("state loaded",
		zap.Int("products", a.catalog.Len()),
		zap.Int("orders", a.ledger.Count()),
	)
	return nil
}

func (a *App) persistProducts(ctx context.Context) error {
	products := a.catalog.List()
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode product slot: %w", err)
	}
	return a.store.Save(ctx, storage.ProductsKey, data)
}

func (a *App) persistOrders(ctx context.Context) error {
	orders := a.ledger.All()
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode order slot: %w", err)
	}
	return a.store.Save(ctx, storage.OrdersKey, data)
}

// Products lists the catalog filtered by category and name substring.
func (a *App) Products(category, query string) []domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalog.Filter(category, query)
}

func (a *App) Product(id string) (domain.Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalog.Get(id)
}

func (a *App) CreateProduct(ctx context.Context, in catalog.ProductInput) (domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, err := a.catalog.Create(in)
	if err != nil {
		return domain.Product{}, err
	}
	if err := a.persistProducts(ctx); err != nil {
		a.log.Error("failed to persist catalog", zap.Error(err))
	}
	return p, nil
}

func (a *App) UpdateProduct(ctx context.Context, id string, in catalog.ProductInput) (domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, err := a.catalog.Update(id, in)
	if err != nil {
		return domain.Product{}, err
	}
	if err := a.persistProducts(ctx); err != nil {
		a.log.Error("failed to persist catalog", zap.Error(err))
	}
	return p, nil
}

func (a *App) DeleteProduct(ctx context.Context, id string, confirmed bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.catalog.Delete(id, confirmed); err != nil {
		return err
	}
	if err := a.persistProducts(ctx); err != nil {
		a.log.Error("failed to persist catalog", zap.Error(err))
	}
	return nil
}

// CartView is the cart as the surface renders it.
type CartView struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	TotalCost   float64            `json:"totalCost"`
}

func (a *App) Cart() CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartView()
}

func (a *App) cartView() CartView {
	amount, cost := a.cart.Totals()
	return CartView{Items: a.cart.Items(), TotalAmount: amount, TotalCost: cost}
}

// AddToCart adds one unit of the product to the cart. Unknown products are
// rejected; stock is not checked here.
func (a *App) AddToCart(productID string) (CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.catalog.Get(productID)
	if !ok {
		return CartView{}, domain.NewFailedPrecondition(cart.ErrMsgUnknownProduct)
	}
	a.cart.AddItem(&p)
	return a.cartView(), nil
}

func (a *App) RemoveFromCart(productID string) CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.RemoveItem(productID)
	return a.cartView()
}

func (a *App) AdjustCartQuantity(productID string, delta int) CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.AdjustQuantity(productID, delta)
	return a.cartView()
}

func (a *App) ClearCart() CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.Clear()
	return a.cartView()
}

// Checkout finalizes the cart. Order append, stock deduction, cart clear and
// the wholesale rewrite of both slots happen under one lock acquisition.
func (a *App) Checkout(ctx context.Context, method domain.PaymentMethod) (domain.Order, error) {
	a.mu.Lock()
	order, err := a.processor.Checkout(a.cart, method)
	if err != nil {
		a.mu.Unlock()
		return domain.Order{}, err
	}
	if err := a.persistOrders(ctx); err != nil {
		a.log.Error("failed to persist ledger", zap.Error(err))
	}
	if err := a.persistProducts(ctx); err != nil {
		a.log.Error("failed to persist catalog", zap.Error(err))
	}
	hooks := a.onOrder
	a.mu.Unlock()

	for _, fn := range hooks {
		fn(order)
	}
	return order, nil
}

func (a *App) Stats(now time.Time) domain.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return report.ComputeStats(a.ledger.All(), now)
}

func (a *App) MonthlySeries(year int, loc *time.Location) []domain.MonthlySummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return report.MonthlySeries(a.ledger.All(), year, loc)
}

// History returns one reverse-chronological page of orders plus the total
// count for the pager.
func (a *App) History(page, pageSize int) ([]domain.Order, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.Page(page, pageSize), a.ledger.Count()
}

// RefreshInsight kicks off an asynchronous recommendation refresh over the
// current ledger. Non-blocking; the result lands in the insight register.
func (a *App) RefreshInsight(ctx context.Context) {
	a.mu.Lock()
	orders := a.ledger.All()
	a.mu.Unlock()
	a.insight.Refresh(ctx, orders)
}

func (a *App) Insight() (message string, pending bool) {
	return a.insight.Current()
}
