package command

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/ec-commerce/internal/domain/catalog"
	"github.com/example/ec-commerce/internal/domain/order"
	"github.com/example/ec-commerce/internal/domain/stock"
	"github.com/example/ec-commerce/internal/infrastructure/store"
)

// EventPublisher publishes domain events after a command commits.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Handler executes the write-side operations against injected store handles.
type Handler struct {
	catalog store.CatalogStore
	orders  store.OrderStore
	tx      store.TxRunner
	events  EventPublisher
	log     *logrus.Entry
}

// NewHandler wires the placement engine. events may be nil when no broker
// is configured.
func NewHandler(catalogStore store.CatalogStore, orderStore store.OrderStore, tx store.TxRunner, events EventPublisher) *Handler {
	return &Handler{
		catalog: catalogStore,
		orders:  orderStore,
		tx:      tx,
		events:  events,
		log:     logrus.WithField("component", "command"),
	}
}

// CreateProduct validates and inserts a new catalog product.
func (h *Handler) CreateProduct(ctx context.Context, cmd CreateProduct) (primitive.ObjectID, error) {
	p, err := catalog.NewProduct(cmd.Name, cmd.Price, cmd.Sizes)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return h.catalog.Insert(ctx, p)
}

// PlaceOrder runs the placement sequence: resolve product ids, check that
// every product exists, allocate stock per item in input order, apply the
// deduction plans, persist the order. Everything from the stock check to the
// order insert runs inside one store transaction, so concurrent placements
// cannot both pass the check against stale state and a late failure leaves
// no partial deductions behind.
func (h *Handler) PlaceOrder(ctx context.Context, cmd PlaceOrder) (primitive.ObjectID, error) {
	items := make([]order.OrderItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		items = append(items, order.OrderItem{ProductID: item.ProductID, Quantity: item.Qty})
	}
	o, err := order.New(cmd.UserID, items)
	if err != nil {
		return primitive.NilObjectID, err
	}

	ids, err := resolveProductIDs(cmd.Items)
	if err != nil {
		return primitive.NilObjectID, err
	}

	var orderID primitive.ObjectID
	err = h.tx.WithTransaction(ctx, func(ctx context.Context) error {
		id, txErr := h.placeOrder(ctx, o, ids)
		if txErr != nil {
			return txErr
		}
		orderID = id
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	h.publishOrderPlaced(ctx, orderID, o)
	return orderID, nil
}

// placeOrder is the transactional body of PlaceOrder.
func (h *Handler) placeOrder(ctx context.Context, o order.Order, ids []primitive.ObjectID) (primitive.ObjectID, error) {
	products, err := h.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return primitive.NilObjectID, err
	}

	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID.Hex()] = p
	}

	var missing []string
	for _, item := range o.Items {
		if _, ok := byID[item.ProductID]; !ok {
			missing = append(missing, item.ProductID)
		}
	}
	if len(missing) > 0 {
		return primitive.NilObjectID, &order.ProductsNotFoundError{IDs: missing}
	}

	// Deduction plans per product. Two items referencing the same product
	// compose sequentially against the running state, not against the
	// original snapshot twice.
	plans := make(map[string][]catalog.SizeVariant, len(byID))
	var applyOrder []string
	for _, item := range o.Items {
		p := byID[item.ProductID]
		sizes, planned := plans[item.ProductID]
		if !planned {
			sizes = p.Sizes
			applyOrder = append(applyOrder, item.ProductID)
		}

		newSizes, err := stock.Allocate(sizes, item.Quantity)
		if err != nil {
			var insufficient *stock.InsufficientStockError
			if errors.As(err, &insufficient) {
				return primitive.NilObjectID, &order.InsufficientStockError{
					Product:   p.Name,
					Available: insufficient.Available,
					Requested: insufficient.Requested,
				}
			}
			return primitive.NilObjectID, err
		}
		plans[item.ProductID] = newSizes
	}

	// Apply phase: all checks passed, write every plan then the order.
	for _, id := range applyOrder {
		if err := h.catalog.ReplaceSizes(ctx, byID[id].ID, plans[id]); err != nil {
			return primitive.NilObjectID, &order.PlacementAbortedError{Err: err}
		}
	}

	orderID, err := h.orders.Insert(ctx, o)
	if err != nil {
		return primitive.NilObjectID, &order.PlacementAbortedError{Err: err}
	}
	return orderID, nil
}

func (h *Handler) publishOrderPlaced(ctx context.Context, orderID primitive.ObjectID, o order.Order) {
	if h.events == nil {
		return
	}

	event := order.OrderPlaced{
		EventID:  uuid.New().String(),
		OrderID:  orderID.Hex(),
		UserID:   o.UserID,
		Items:    o.Items,
		PlacedAt: time.Now(),
	}
	// Best effort: the order is already committed, a broker outage must not
	// fail the placement.
	if err := h.events.Publish(ctx, event.OrderID, event); err != nil {
		h.log.WithError(err).WithField("order_id", event.OrderID).Warn("failed to publish OrderPlaced")
	}
}

func resolveProductIDs(items []OrderItemInput) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, &order.MalformedProductIDError{ID: item.ProductID}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
