package mocks

import (
	"context"

	"github.com/you/twofasvc/domain"
)

// MockPendingAuthRepository implements domain.PendingAuthRepository for testing
type MockPendingAuthRepository struct {
	CreateFunc  func(ctx context.Context, pending *domain.PendingAuth) error
	FindFunc    func(ctx context.Context, token string) (*domain.PendingAuth, error)
	ConsumeFunc func(ctx context.Context, token string) (*domain.PendingAuth, error)
	DeleteFunc  func(ctx context.Context, token string) error
}

// NewMockPendingAuthRepository creates a new MockPendingAuthRepository with default behaviors
func NewMockPendingAuthRepository() *MockPendingAuthRepository {
	return &MockPendingAuthRepository{}
}

// Create stores a pending auth entry
func (m *MockPendingAuthRepository) Create(ctx context.Context, pending *domain.PendingAuth) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pending)
	}
	// Default behavior: success
	return nil
}

// Find looks up a pending auth entry without removing it
func (m *MockPendingAuthRepository) Find(ctx context.Context, token string) (*domain.PendingAuth, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, token)
	}
	// Default behavior: no pending state
	return nil, domain.ErrPendingAuthExpired
}

// Consume atomically fetches and deletes a pending auth entry
func (m *MockPendingAuthRepository) Consume(ctx context.Context, token string) (*domain.PendingAuth, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token)
	}
	// Default behavior: no pending state
	return nil, domain.ErrPendingAuthExpired
}

// Delete removes a pending auth entry
func (m *MockPendingAuthRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}
