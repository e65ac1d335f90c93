package repository

import (
	"context"
	"errors"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrItemNotFound     = errors.New("item not found in cart")
	ErrOrderNotFound    = errors.New("order not found")
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
)

// Consumers define these interfaces, not the MongoDB implementations.

type ProductRepository interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
}

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	DeleteCart(ctx context.Context, userID string) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type WishlistRepository interface {
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)
	Upsert(ctx context.Context, wishlist *domain.Wishlist) error
	AddProduct(ctx context.Context, userID, productID string) error
	RemoveProduct(ctx context.Context, userID, productID string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, event *OutboxEvent) error
	GetUnprocessed(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkProcessed(ctx context.Context, id string) error
}
