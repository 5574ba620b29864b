// Package ledger is the append-only history of completed orders. Orders are
// never edited or deleted once appended.
package ledger

import "smartpos/internal/domain"

type Ledger struct {
	orders []domain.Order
}

func New() *Ledger {
	return &Ledger{}
}

// Replace swaps the full order list, e.g. after loading a persisted slot.
func (l *Ledger) Replace(orders []domain.Order) {
	l.orders = append(l.orders[:0], orders...)
}

// Append adds one completed order to the end of the ledger.
func (l *Ledger) Append(order domain.Order) {
	l.orders = append(l.orders, order)
}

// All returns a copy of the ledger in append order (oldest first).
func (l *Ledger) All() []domain.Order {
	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) Count() int {
	return len(l.orders)
}

// HasID reports whether an order with the given id exists. The checkout id
// generator uses this as its collision guard.
func (l *Ledger) HasID(id string) bool {
	for _, o := range l.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Page returns one page of orders in reverse-chronological (newest first)
// order. Pages are 1-based; an out-of-range page is empty.
func (l *Ledger) Page(page, pageSize int) []domain.Order {
	if page < 1 || pageSize < 1 {
		return nil
	}
	n := len(l.orders)
	start := (page - 1) * pageSize
	if start >= n {
		return nil
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	out := make([]domain.Order, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, l.orders[n-1-i])
	}
	return out
}
