package catalog

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidName      = errors.New("name is required")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrNegativeQuantity = errors.New("quantity must be >= 0")
)

// DuplicateSizeError reports a size label appearing more than once in a
// product's variants.
type DuplicateSizeError struct {
	Size string
}

func (e *DuplicateSizeError) Error() string {
	return fmt.Sprintf("duplicate size found: %s", e.Size)
}

// SizeVariant is one per-label stock bucket of a product.
type SizeVariant struct {
	Size     string `bson:"size" json:"size"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Sizes []SizeVariant      `bson:"sizes" json:"sizes"`
}

// NewProduct validates and builds a product ready for insertion. Size labels
// must be unique and every quantity non-negative; an empty variant list is a
// product with zero total stock.
func NewProduct(name string, price float64, sizes []SizeVariant) (Product, error) {
	if name == "" {
		return Product{}, ErrInvalidName
	}
	if price <= 0 {
		return Product{}, ErrInvalidPrice
	}

	seen := make(map[string]struct{}, len(sizes))
	for _, s := range sizes {
		if s.Quantity < 0 {
			return Product{}, ErrNegativeQuantity
		}
		if _, ok := seen[s.Size]; ok {
			return Product{}, &DuplicateSizeError{Size: s.Size}
		}
		seen[s.Size] = struct{}{}
	}

	return Product{
		Name:  name,
		Price: price,
		Sizes: sizes,
	}, nil
}

// TotalStock is the sum of quantities across all size variants.
func (p Product) TotalStock() int {
	total := 0
	for _, s := range p.Sizes {
		total += s.Quantity
	}
	return total
}
