package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

const cacheInvalidateTimeout = time.Second

type CartService struct {
	repo    repository.CartRepository
	catalog *CatalogService
}

func NewCartService(repo repository.CartRepository, catalog *CatalogService) *CartService {
	return &CartService{
		repo:    repo,
		catalog: catalog,
	}
}

// Add puts one unit of the product into the cart. A product already
// present has its quantity incremented; there is never more than one
// line per (user, product) pair.
func (s *CartService) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.catalog.Get(ctx, productID); err != nil {
		return err
	}

	if err := s.repo.AddItem(ctx, userID, productID); err != nil {
		log.Printf("repo add item error: %v", err)
		return err
	}
	return nil
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		log.Printf("repo set quantity error: %v", err)
		return err
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		log.Printf("repo remove item error: %v", err)
		return err
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.DeleteCart(ctx, userID); err != nil {
		log.Printf("repo delete cart error: %v", err)
		return err
	}
	return nil
}

// List joins cart items with the current catalog snapshot so the cart
// reflects the listed price right up until checkout freezes it. Items
// whose product has been delisted are dropped from the view.
func (s *CartService) List(ctx context.Context, userID string) (*domain.CartView, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &domain.CartView{UserID: userID, Lines: []domain.CartLine{}}, nil
		}
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.catalog.Get(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				log.Printf("cart item references missing product %s, skipping", item.ProductID)
				continue
			}
			return nil, err
		}
		lines = append(lines, domain.CartLine{
			Product:  *product,
			Quantity: item.Quantity,
		})
	}

	return &domain.CartView{UserID: userID, Lines: lines}, nil
}
