package order

import (
	"fmt"
	"strings"
)

// MalformedProductIDError reports an order item whose product id does not
// parse as a store identifier.
type MalformedProductIDError struct {
	ID string
}

func (e *MalformedProductIDError) Error() string {
	return fmt.Sprintf("invalid product id: %s", e.ID)
}

// ProductsNotFoundError lists every requested product id absent from the
// catalog, not just the first.
type ProductsNotFoundError struct {
	IDs []string
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("products not found: [%s]", strings.Join(e.IDs, ", "))
}

// InsufficientStockError reports the first order item whose requested
// quantity exceeds its product's total stock.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product '%s' (available: %d, requested: %d)",
		e.Product, e.Available, e.Requested)
}

// PlacementAbortedError wraps a store failure during the apply or persist
// phase. The surrounding transaction rolls back every deduction, so no
// product retains a partial write when this is returned.
type PlacementAbortedError struct {
	Err error
}

func (e *PlacementAbortedError) Error() string {
	return fmt.Sprintf("order placement aborted: %v", e.Err)
}

func (e *PlacementAbortedError) Unwrap() error {
	return e.Err
}
