package http

import (
	"context"
	"errors"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/checkout"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/service"
)

type stubTokens struct{}

func (stubTokens) Validate(token string) (*domain.Identity, error) {
	switch token {
	case "customer-token":
		return &domain.Identity{UserID: "u1", Role: domain.RoleCustomer}, nil
	case "admin-token":
		return &domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}, nil
	default:
		return nil, errors.New("invalid token")
	}
}

type stubCatalog struct {
	products map[string]*domain.Product
}

func (s *stubCatalog) Get(_ context.Context, productID string) (*domain.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (s *stubCatalog) List(_ context.Context, _ domain.ProductFilter) (*domain.ProductPage, error) {
	page := &domain.ProductPage{Page: 1, Pages: 1, Total: int64(len(s.products))}
	for _, p := range s.products {
		page.Products = append(page.Products, *p)
	}
	return page, nil
}

func (s *stubCatalog) FeaturedPicks(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubCatalog) Create(_ context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = "generated"
	}
	s.products[product.ID] = product
	return nil
}

func (s *stubCatalog) Update(_ context.Context, product *domain.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	s.products[product.ID] = product
	return nil
}

type stubCart struct {
	items      map[string]int // productID -> quantity for the single test user
	clearCalls int
	addErr     error
}

func newStubCart() *stubCart {
	return &stubCart{items: make(map[string]int)}
}

func (s *stubCart) Add(_ context.Context, _, productID string) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.items[productID]++
	return nil
}

func (s *stubCart) SetQuantity(_ context.Context, _, productID string, quantity int) error {
	if _, ok := s.items[productID]; !ok {
		return repository.ErrItemNotFound
	}
	s.items[productID] = quantity
	return nil
}

func (s *stubCart) Remove(_ context.Context, _, productID string) error {
	delete(s.items, productID)
	return nil
}

func (s *stubCart) Clear(_ context.Context, _ string) error {
	s.clearCalls++
	s.items = make(map[string]int)
	return nil
}

func (s *stubCart) List(_ context.Context, userID string) (*domain.CartView, error) {
	view := &domain.CartView{UserID: userID, Lines: []domain.CartLine{}}
	for id, qty := range s.items {
		view.Lines = append(view.Lines, domain.CartLine{
			Product:  domain.Product{ID: id},
			Quantity: qty,
		})
	}
	return view, nil
}

type stubCheckout struct {
	placeResult *checkout.Result
	placeErr    error
	verifyOrder *domain.Order
	verifyErr   error
	lastRequest checkout.Request
}

func (s *stubCheckout) PlaceOrder(_ context.Context, _ string, req checkout.Request) (*checkout.Result, error) {
	s.lastRequest = req
	if s.placeErr != nil {
		return nil, s.placeErr
	}
	return s.placeResult, nil
}

func (s *stubCheckout) VerifyPayment(_ context.Context, _ string, _ checkout.VerifyRequest) (*domain.Order, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.verifyOrder, nil
}

type stubOrders struct {
	orders map[string]*domain.Order
}

func (s *stubOrders) Get(_ context.Context, orderID string, requester domain.Identity) (*domain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	if !requester.CanAccessOrder(o.UserID) {
		return nil, service.ErrNotAuthorized
	}
	return o, nil
}

func (s *stubOrders) ListMine(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	o.Status = next
	return o, nil
}

type stubWishlist struct {
	productIDs []string
}

func (s *stubWishlist) Get(_ context.Context, userID string) (*domain.WishlistView, error) {
	view := &domain.WishlistView{UserID: userID, Products: []domain.Product{}}
	for _, id := range s.productIDs {
		view.Products = append(view.Products, domain.Product{ID: id})
	}
	return view, nil
}

func (s *stubWishlist) Add(_ context.Context, _, productID string) error {
	s.productIDs = append(s.productIDs, productID)
	return nil
}

func (s *stubWishlist) Remove(_ context.Context, _, productID string) error {
	for i, id := range s.productIDs {
		if id == productID {
			s.productIDs = append(s.productIDs[:i], s.productIDs[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubAuth struct {
	registerErr error
	loginToken  string
	loginUser   *domain.User
	loginErr    error
}

func (s *stubAuth) Register(_ context.Context, name, email, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: "new-user", Name: name, Email: email, Role: domain.RoleCustomer}, nil
}

func (s *stubAuth) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func (s *stubAuth) Profile(_ context.Context, userID string) (*domain.User, error) {
	return &domain.User{ID: userID, Email: "ayesha@example.com"}, nil
}
