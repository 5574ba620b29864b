// Package report derives dashboard figures from the order ledger. All
// functions are pure over their inputs and the supplied instant.
package report

import (
	"math"
	"time"

	"smartpos/internal/domain"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ComputeStats sums sales, cost and profit across all orders and, using the
// local calendar day containing now (midnight boundary), the same three sums
// restricted to today.
func ComputeStats(orders []domain.Order, now time.Time) domain.Stats {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var st domain.Stats
	st.TotalOrders = len(orders)
	for _, o := range orders {
		st.TotalSales += o.TotalAmount
		st.TotalCost += o.TotalCost
		st.TotalProfit += o.TotalProfit
		if !o.Time(loc).Before(midnight) {
			st.TodaySales += o.TotalAmount
			st.TodayCost += o.TotalCost
			st.TodayProfit += o.TotalProfit
		}
	}
	return st
}

// MonthlySeries buckets orders into the 12 calendar months of year in loc.
// The result always has exactly 12 entries in calendar order; months without
// orders carry zeros.
func MonthlySeries(orders []domain.Order, year int, loc *time.Location) []domain.MonthlySummary {
	out := make([]domain.MonthlySummary, 12)
	for i := range out {
		out[i].Month = monthNames[i]
	}
	for _, o := range orders {
		t := o.Time(loc)
		if t.Year() != year {
			continue
		}
		b := &out[int(t.Month())-1]
		b.Sales += o.TotalAmount
		b.Costs += o.TotalCost
	}
	for i := range out {
		out[i].Profits = out[i].Sales - out[i].Costs
	}
	return out
}

// Figures are the aggregate inputs to the insight prompt.
type Figures struct {
	OrderCount    int
	TotalSales    float64
	TotalProfit   float64
	AvgOrderValue float64 // rounded to 2 decimal places, 0 when no orders
}

func ComputeFigures(orders []domain.Order) Figures {
	f := Figures{OrderCount: len(orders)}
	for _, o := range orders {
		f.TotalSales += o.TotalAmount
		f.TotalProfit += o.TotalProfit
	}
	if f.OrderCount > 0 {
		f.AvgOrderValue = math.Round(f.TotalSales/float64(f.OrderCount)*100) / 100
	}
	return f
}
