package checkout

import (
	"context"
	"sync"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/payment"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

// MockCatalog implements Catalog for testing
type MockCatalog struct {
	Products map[string]*domain.Product
}

func (m *MockCatalog) Get(_ context.Context, productID string) (*domain.Product, error) {
	if p, ok := m.Products[productID]; ok {
		return p, nil
	}
	return nil, repository.ErrProductNotFound
}

// MockCarts implements Carts for testing
type MockCarts struct {
	mu         sync.Mutex
	ClearedFor []string
	ClearErr   error
}

func (m *MockCarts) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.ClearedFor = append(m.ClearedFor, userID)
	return nil
}

// MockOrders implements Orders for testing
type MockOrders struct {
	mu        sync.Mutex
	Inserted  []*domain.Order
	InsertErr error
}

func (m *MockOrders) Insert(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Inserted = append(m.Inserted, order)
	return nil
}

// MockOutbox implements Outbox for testing
type MockOutbox struct {
	mu        sync.Mutex
	Events    []*repository.OutboxEvent
	AppendErr error
}

func (m *MockOutbox) Append(_ context.Context, event *repository.OutboxEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Events = append(m.Events, event)
	return nil
}

// MockGateway implements payment.Gateway for testing
type MockGateway struct {
	Intent        *payment.Intent
	Err           error
	LastAmount    int64
	LastCurrency  string
	LastReceipt   string
	CreatedIntent bool
}

func (m *MockGateway) CreateIntent(_ context.Context, amountMinorUnits int64, currency, receipt string) (*payment.Intent, error) {
	m.CreatedIntent = true
	m.LastAmount = amountMinorUnits
	m.LastCurrency = currency
	m.LastReceipt = receipt
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Intent, nil
}

// MockPendingStore implements PendingStore for testing
type MockPendingStore struct {
	mu        sync.Mutex
	Snapshots map[string]*domain.CheckoutSnapshot
	PutErr    error
}

func NewMockPendingStore() *MockPendingStore {
	return &MockPendingStore{Snapshots: map[string]*domain.CheckoutSnapshot{}}
}

func (m *MockPendingStore) Put(_ context.Context, gatewayOrderID string, snapshot *domain.CheckoutSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Snapshots[gatewayOrderID] = snapshot
	return nil
}

func (m *MockPendingStore) Get(_ context.Context, gatewayOrderID string) (*domain.CheckoutSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.Snapshots[gatewayOrderID]; ok {
		return s, nil
	}
	return nil, ErrPendingNotFound
}

func (m *MockPendingStore) Delete(_ context.Context, gatewayOrderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Snapshots, gatewayOrderID)
	return nil
}
