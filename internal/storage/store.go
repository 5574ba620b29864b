// Package storage is the persistence boundary: two named slots holding the
// serialized catalog and ledger, rewritten wholesale on every mutation.
package storage

import "context"

// Slot keys. These match the historical storage layout and must not change
// without migrating existing data.
const (
	ProductsKey = "smartpos_products"
	OrdersKey   = "smartpos_orders"
)

// Store loads and saves whole slot values. Load reports ok=false when the
// slot has never been written, which is distinct from an error.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}
