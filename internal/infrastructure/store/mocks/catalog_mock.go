package mocks

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/ec-commerce/internal/domain/catalog"
	"github.com/example/ec-commerce/internal/infrastructure/store"
)

// MockCatalogStore is an in-memory CatalogStore for testing.
type MockCatalogStore struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]catalog.Product
	order    []primitive.ObjectID // insertion order, for stable listing

	// Injectable failures
	FindErr    error
	ReplaceErr error
	InsertErr  error

	// For tracking calls in tests
	ReplaceSizesCalls []ReplaceSizesCall
}

// ReplaceSizesCall records parameters passed to ReplaceSizes
type ReplaceSizesCall struct {
	ID    primitive.ObjectID
	Sizes []catalog.SizeVariant
}

// NewMockCatalogStore creates a new MockCatalogStore
func NewMockCatalogStore() *MockCatalogStore {
	return &MockCatalogStore{
		products: make(map[primitive.ObjectID]catalog.Product),
	}
}

// Seed stores a product under a fresh id and returns it with the id set.
func (m *MockCatalogStore) Seed(p catalog.Product) catalog.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, exists := m.products[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.products[p.ID] = p
	return p
}

// Get returns the current stored state of a product.
func (m *MockCatalogStore) Get(id primitive.ObjectID) (catalog.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	return p, ok
}

func (m *MockCatalogStore) Insert(ctx context.Context, p catalog.Product) (primitive.ObjectID, error) {
	if m.InsertErr != nil {
		return primitive.NilObjectID, m.InsertErr
	}
	return m.Seed(p).ID, nil
}

func (m *MockCatalogStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]catalog.Product, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := m.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *MockCatalogStore) List(ctx context.Context, filter store.ProductFilter, limit, offset int) ([]catalog.Product, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]catalog.Product, 0)
	for _, id := range m.order {
		p := m.products[id]
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Size != "" && !hasSize(p, filter.Size) {
			continue
		}
		matched = append(matched, p)
	}

	if offset >= len(matched) {
		return []catalog.Product{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MockCatalogStore) ReplaceSizes(ctx context.Context, id primitive.ObjectID, sizes []catalog.SizeVariant) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReplaceSizesCalls = append(m.ReplaceSizesCalls, ReplaceSizesCall{ID: id, Sizes: sizes})
	p, ok := m.products[id]
	if !ok {
		return nil
	}
	p.Sizes = sizes
	m.products[id] = p
	return nil
}

func hasSize(p catalog.Product, size string) bool {
	for _, s := range p.Sizes {
		if s.Size == size {
			return true
		}
	}
	return false
}
