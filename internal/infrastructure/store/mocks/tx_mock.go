package mocks

import "context"

// MockTxRunner runs the callback directly; the in-memory mocks have no
// transaction semantics so rollback behavior is asserted by inspecting
// store state after a failure.
type MockTxRunner struct {
	// For tracking calls in tests
	Calls int
}

// NewMockTxRunner creates a new MockTxRunner
func NewMockTxRunner() *MockTxRunner {
	return &MockTxRunner{}
}

func (m *MockTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}
