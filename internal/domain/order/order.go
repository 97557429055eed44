package order

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrMissingUser     = errors.New("user id is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// OrderItem is one line of an order: a product reference and a quantity.
// No price is stored; totals are recomputed from the catalog on read.
type OrderItem struct {
	ProductID string `bson:"product_id" json:"productId"`
	Quantity  int    `bson:"quantity" json:"qty"`
}

// Order is immutable once persisted. The placement engine creates it after
// all stock deductions for its items have been applied.
type Order struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"user_id" json:"userId"`
	Items  []OrderItem        `bson:"items" json:"items"`
}

// New validates and builds an order ready for insertion.
func New(userID string, items []OrderItem) (Order, error) {
	if userID == "" {
		return Order{}, ErrMissingUser
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return Order{}, ErrInvalidQuantity
		}
	}
	return Order{UserID: userID, Items: items}, nil
}
