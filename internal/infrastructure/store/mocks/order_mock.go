package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/ec-commerce/internal/domain/order"
)

// MockOrderStore is an in-memory OrderStore for testing.
type MockOrderStore struct {
	mu     sync.RWMutex
	orders []order.Order

	// Injectable failures
	InsertErr error
	ListErr   error
}

// NewMockOrderStore creates a new MockOrderStore
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{}
}

// Seed stores an order under a fresh id and returns it with the id set.
func (m *MockOrderStore) Seed(o order.Order) order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	m.orders = append(m.orders, o)
	return o
}

// All returns every stored order in insertion order.
func (m *MockOrderStore) All() []order.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]order.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

func (m *MockOrderStore) Insert(ctx context.Context, o order.Order) (primitive.ObjectID, error) {
	if m.InsertErr != nil {
		return primitive.NilObjectID, m.InsertErr
	}
	return m.Seed(o).ID, nil
}

func (m *MockOrderStore) ListByUser(ctx context.Context, userID string, limit, offset int) ([]order.Order, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]order.Order, 0)
	for _, o := range m.orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}

	if offset >= len(matched) {
		return []order.Order{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}
