package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/ec-commerce/internal/domain/catalog"
	"github.com/example/ec-commerce/internal/domain/order"
)

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Name string // case-insensitive substring match on product name
	Size string // exact match on a size label inside the variants
}

// CatalogStore is the product collection boundary.
type CatalogStore interface {
	Insert(ctx context.Context, p catalog.Product) (primitive.ObjectID, error)
	// FindByIDs returns the products matching ids; absent ids are simply
	// omitted from the result, callers detect them by comparing sets.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]catalog.Product, error)
	// List returns products matching filter, sorted by id ascending, after
	// applying offset then limit. A limit of 0 means no limit.
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]catalog.Product, error)
	// ReplaceSizes overwrites a product's size variants in place.
	ReplaceSizes(ctx context.Context, id primitive.ObjectID, sizes []catalog.SizeVariant) error
}

// OrderStore is the order collection boundary.
type OrderStore interface {
	Insert(ctx context.Context, o order.Order) (primitive.ObjectID, error)
	// ListByUser returns a user's orders sorted by id ascending (insertion
	// order), after applying offset then limit.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]order.Order, error)
}

// TxRunner executes fn inside a store transaction. Every store call made
// with the context passed to fn joins the transaction; if fn returns an
// error the transaction is rolled back and the error returned unchanged.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
