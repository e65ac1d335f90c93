package service

import (
	"context"
	"sync"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/cache"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

type mockProductRepo struct {
	products map[string]*domain.Product
	getCalls int
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	m.getCalls++
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (m *mockProductRepo) List(_ context.Context, _ domain.ProductFilter) (*domain.ProductPage, error) {
	page := &domain.ProductPage{Page: 1, Pages: 1, Total: int64(len(m.products))}
	for _, p := range m.products {
		page.Products = append(page.Products, *p)
	}
	return page, nil
}

func (m *mockProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Insert(_ context.Context, product *domain.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

// mockProductCache is safe for concurrent use because the service
// populates it from a background goroutine.
type mockProductCache struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	deleted  []string
}

func newMockProductCache() *mockProductCache {
	return &mockProductCache{products: make(map[string]*domain.Product)}
}

func (m *mockProductCache) Get(_ context.Context, productID string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (m *mockProductCache) Set(_ context.Context, productID string, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[productID] = product
	return nil
}

func (m *mockProductCache) Delete(_ context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, productID)
	m.deleted = append(m.deleted, productID)
	return nil
}

type mockCartRepo struct {
	carts       map[string]*domain.Cart
	addItemErr  error
	deleteCalls int
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*domain.Cart)}
}

func (m *mockCartRepo) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	cart, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	return cart, nil
}

func (m *mockCartRepo) AddItem(_ context.Context, userID, productID string) error {
	if m.addItemErr != nil {
		return m.addItemErr
	}
	cart, ok := m.carts[userID]
	if !ok {
		cart = &domain.Cart{UserID: userID}
		m.carts[userID] = cart
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			return nil
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: 1})
	return nil
}

func (m *mockCartRepo) SetQuantity(_ context.Context, userID, productID string, quantity int) error {
	cart, ok := m.carts[userID]
	if !ok {
		return repository.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return repository.ErrItemNotFound
}

func (m *mockCartRepo) RemoveItem(_ context.Context, userID, productID string) error {
	cart, ok := m.carts[userID]
	if !ok {
		return nil
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCartRepo) DeleteCart(_ context.Context, userID string) error {
	m.deleteCalls++
	delete(m.carts, userID)
	return nil
}

type mockOrderRepo struct {
	orders          map[string]*domain.Order
	updateStatusErr error
}

func newMockOrderRepo(orders ...*domain.Order) *mockOrderRepo {
	m := &mockOrderRepo{orders: make(map[string]*domain.Order)}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *mockOrderRepo) Insert(_ context.Context, order *domain.Order) error {
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) Get(_ context.Context, id string) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

type mockWishlistRepo struct {
	wishlists map[string]*domain.Wishlist
}

func newMockWishlistRepo() *mockWishlistRepo {
	return &mockWishlistRepo{wishlists: make(map[string]*domain.Wishlist)}
}

func (m *mockWishlistRepo) Get(_ context.Context, userID string) (*domain.Wishlist, error) {
	w, ok := m.wishlists[userID]
	if !ok {
		return nil, repository.ErrWishlistNotFound
	}
	return w, nil
}

func (m *mockWishlistRepo) Upsert(_ context.Context, wishlist *domain.Wishlist) error {
	m.wishlists[wishlist.UserID] = wishlist
	return nil
}

func (m *mockWishlistRepo) AddProduct(_ context.Context, userID, productID string) error {
	w, ok := m.wishlists[userID]
	if !ok {
		w = &domain.Wishlist{UserID: userID}
		m.wishlists[userID] = w
	}
	if !w.Contains(productID) {
		w.ProductIDs = append(w.ProductIDs, productID)
	}
	return nil
}

func (m *mockWishlistRepo) RemoveProduct(_ context.Context, userID, productID string) error {
	w, ok := m.wishlists[userID]
	if !ok {
		return nil
	}
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (m *mockUserRepo) Insert(_ context.Context, user *domain.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}
