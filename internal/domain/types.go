// Package domain holds the persisted data model of the terminal: products,
// orders and the derived reporting shapes. JSON field names match the stored
// format exactly and must not change without migrating the slots.
package domain

import "time"

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
	Stock    int     `json:"stock"`
}

// OrderItem is a line item. Price and cost are snapshotted from the product
// when the line enters the cart; later catalog edits do not reach back into
// carts or past orders.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Cost      float64 `json:"cost"`
	Quantity  int     `json:"quantity"`
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "CreditCard"
	PaymentOctopus    PaymentMethod = "Octopus"
	PaymentPayMe      PaymentMethod = "PayMe"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentOctopus, PaymentPayMe:
		return true
	}
	return false
}

// Order is immutable once appended to the ledger. Timestamp is a millisecond
// epoch, matching the stored history.
type Order struct {
	ID            string        `json:"id"`
	Items         []OrderItem   `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	TotalCost     float64       `json:"totalCost"`
	TotalProfit   float64       `json:"totalProfit"`
	Timestamp     int64         `json:"timestamp"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Time returns the order's creation instant in the given location.
func (o *Order) Time(loc *time.Location) time.Time {
	return time.UnixMilli(o.Timestamp).In(loc)
}

type MonthlySummary struct {
	Month   string  `json:"month"`
	Sales   float64 `json:"sales"`
	Costs   float64 `json:"costs"`
	Profits float64 `json:"profits"`
}

// Stats is the dashboard aggregate: all-time sums plus the same sums
// restricted to the current calendar day.
type Stats struct {
	TotalSales  float64 `json:"totalSales"`
	TotalCost   float64 `json:"totalCost"`
	TotalProfit float64 `json:"totalProfit"`
	TodaySales  float64 `json:"todaySales"`
	TodayCost   float64 `json:"todayCost"`
	TodayProfit float64 `json:"todayProfit"`
	TotalOrders int     `json:"totalOrders"`
}
