// Package httpapi is the interactive surface: a JSON API over the application
// state plus a websocket feed of completed orders.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"smartpos/internal/app"
	"smartpos/internal/cart"
	"smartpos/internal/catalog"
	"smartpos/internal/domain"
)

type Handlers struct {
	app  *app.App
	feed *OrderFeed
	log  *zap.Logger
}

func New(a *app.App, feed *OrderFeed, log *zap.Logger) *Handlers {
	return &Handlers{app: a, feed: feed, log: log}
}

func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Delete("/cart/items/{id}", h.removeCartItem)
	r.Post("/cart/items/{id}/quantity", h.adjustCartQuantity)
	r.Delete("/cart", h.clearCart)

	r.Post("/checkout", h.checkout)

	r.Get("/stats", h.stats)
	r.Get("/reports/monthly", h.monthly)
	r.Get("/orders", h.history)

	r.Get("/insight", h.getInsight)
	r.Post("/insight/refresh", h.refreshInsight)

	r.Get("/ws/orders", h.feed.ServeWS)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the engine error taxonomy onto HTTP statuses:
// invalid argument -> 400, failed precondition -> 409, anything else -> 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if code, ok := domain.CodeOf(err); ok {
		switch code {
		case domain.StatusInvalidArgument:
			status = http.StatusBadRequest
		case domain.StatusFailedPrecondition:
			status = http.StatusConflict
		}
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")
	products := h.app.Products(category, query)
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.app.Product(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: catalog.ErrMsgNotFound})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type productRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Image    string  `json:"image"`
}

func (req *productRequest) input() catalog.ProductInput {
	return catalog.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Cost:     req.Cost,
		Category: req.Category,
		Stock:    req.Stock,
		Image:    req.Image,
	}
}

func (h *Handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewInvalidArgument("invalid request body"))
		return
	}
	p, err := h.app.CreateProduct(r.Context(), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewInvalidArgument("invalid request body"))
		return
	}
	p, err := h.app.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := h.app.DeleteProduct(r.Context(), chi.URLParam(r, "id"), confirmed); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Cart())
}

func (h *Handlers) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, domain.NewInvalidArgument(cart.ErrMsgProductIDRequired))
		return
	}
	view, err := h.app.AddToCart(req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) removeCartItem(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.RemoveFromCart(chi.URLParam(r, "id")))
}

func (h *Handlers) adjustCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewInvalidArgument("invalid request body"))
		return
	}
	writeJSON(w, http.StatusOK, h.app.AdjustCartQuantity(chi.URLParam(r, "id"), req.Delta))
}

func (h *Handlers) clearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.ClearCart())
}

func (h *Handlers) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewInvalidArgument("invalid request body"))
		return
	}
	order, err := h.app.Checkout(r.Context(), req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Stats(time.Now()))
}

func (h *Handlers) monthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, domain.NewInvalidArgument("invalid year"))
			return
		}
		year = parsed
	}
	writeJSON(w, http.StatusOK, h.app.MonthlySeries(year, now.Location()))
}

func (h *Handlers) history(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)
	orders, total := h.app.History(page, pageSize)
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders":   orders,
		"page":     page,
		"pageSize": pageSize,
		"total":    total,
	})
}

func (h *Handlers) getInsight(w http.ResponseWriter, r *http.Request) {
	message, pending := h.app.Insight()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"pending": pending,
	})
}

func (h *Handlers) refreshInsight(w http.ResponseWriter, r *http.Request) {
	// Detach from the request context: the refresh outlives this request.
	h.app.RefreshInsight(context.Background())
	w.WriteHeader(http.StatusAccepted)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
