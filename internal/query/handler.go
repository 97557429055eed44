package query

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/ec-commerce/internal/domain/catalog"
	"github.com/example/ec-commerce/internal/infrastructure/store"
)

// MissingProductError reports an order line whose product no longer resolves
// in the catalog. Reconstruction of the listing fails hard rather than
// returning a silent partial result.
type MissingProductError struct {
	OrderID   string
	ProductID string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("order %s references missing product %s", e.OrderID, e.ProductID)
}

// Handler executes the read-side operations against injected store handles.
type Handler struct {
	catalog store.CatalogStore
	orders  store.OrderStore
}

func NewHandler(catalogStore store.CatalogStore, orderStore store.OrderStore) *Handler {
	return &Handler{catalog: catalogStore, orders: orderStore}
}

// ListProducts returns a filtered catalog page.
func (h *Handler) ListProducts(ctx context.Context, filter store.ProductFilter, limit, offset int) (ProductList, error) {
	products, err := h.catalog.List(ctx, filter, limit, offset)
	if err != nil {
		return ProductList{}, err
	}

	data := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		data = append(data, ProductSummary{
			ID:    p.ID.Hex(),
			Name:  p.Name,
			Price: p.Price,
		})
	}
	return ProductList{Data: data, Page: newPageInfo(limit, offset, len(data))}, nil
}

// ListUserOrders reconstructs a user's orders for one page window: each line
// item is joined against the catalog for the product's current name and id,
// and the order total is computed as the sum of quantity times the current
// price.
func (h *Handler) ListUserOrders(ctx context.Context, userID string, limit, offset int) (OrderList, error) {
	orders, err := h.orders.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return OrderList{}, err
	}

	// One batched catalog fetch for every product referenced on the page.
	var ids []primitive.ObjectID
	seen := make(map[string]struct{})
	for _, o := range orders {
		for _, item := range o.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			id, err := primitive.ObjectIDFromHex(item.ProductID)
			if err != nil {
				return OrderList{}, &MissingProductError{OrderID: o.ID.Hex(), ProductID: item.ProductID}
			}
			ids = append(ids, id)
		}
	}

	byID := make(map[string]catalog.Product, len(ids))
	if len(ids) > 0 {
		products, err := h.catalog.FindByIDs(ctx, ids)
		if err != nil {
			return OrderList{}, err
		}
		for _, p := range products {
			byID[p.ID.Hex()] = p
		}
	}

	data := make([]EnrichedOrder, 0, len(orders))
	for _, o := range orders {
		enriched := EnrichedOrder{
			ID:    o.ID.Hex(),
			Items: make([]EnrichedOrderItem, 0, len(o.Items)),
		}
		for _, item := range o.Items {
			p, ok := byID[item.ProductID]
			if !ok {
				return OrderList{}, &MissingProductError{OrderID: enriched.ID, ProductID: item.ProductID}
			}
			enriched.Items = append(enriched.Items, EnrichedOrderItem{
				ProductDetails: ProductDetails{Name: p.Name, ID: p.ID.Hex()},
				Qty:            item.Quantity,
			})
			enriched.Total += float64(item.Quantity) * p.Price
		}
		data = append(data, enriched)
	}

	return OrderList{Data: data, Page: newPageInfo(limit, offset, len(data))}, nil
}
