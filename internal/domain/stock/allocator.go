package stock

import (
	"errors"
	"fmt"

	"github.com/example/ec-commerce/internal/domain/catalog"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// InsufficientStockError reports a request exceeding a product's total stock.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock (available: %d, requested: %d)", e.Available, e.Requested)
}

// Allocate computes the deduction plan for one order item: a new variant
// sequence with `requested` units removed. Variants are consumed in stored
// order, first to last, draining each bucket before touching the next; labels
// and their order are preserved. The input slice is never modified.
func Allocate(sizes []catalog.SizeVariant, requested int) ([]catalog.SizeVariant, error) {
	if requested <= 0 {
		return nil, ErrInvalidQuantity
	}

	total := 0
	for _, s := range sizes {
		total += s.Quantity
	}
	if requested > total {
		return nil, &InsufficientStockError{Available: total, Requested: requested}
	}

	remaining := requested
	result := make([]catalog.SizeVariant, len(sizes))
	for i, s := range sizes {
		deduct := remaining
		if s.Quantity < deduct {
			deduct = s.Quantity
		}
		result[i] = catalog.SizeVariant{Size: s.Size, Quantity: s.Quantity - deduct}
		remaining -= deduct
	}
	return result, nil
}
