package service

import (
	"context"
	"errors"
	"log"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

type WishlistService struct {
	repo    repository.WishlistRepository
	catalog *CatalogService
}

func NewWishlistService(repo repository.WishlistRepository, catalog *CatalogService) *WishlistService {
	return &WishlistService{
		repo:    repo,
		catalog: catalog,
	}
}

// Get returns the user's wishlist joined with the catalog, creating an
// empty one on first read.
func (s *WishlistService) Get(ctx context.Context, userID string) (*domain.WishlistView, error) {
	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrWishlistNotFound) {
			return nil, err
		}
		wishlist = &domain.Wishlist{UserID: userID, ProductIDs: []string{}}
		if err := s.repo.Upsert(ctx, wishlist); err != nil {
			return nil, err
		}
	}

	products := make([]domain.Product, 0, len(wishlist.ProductIDs))
	for _, id := range wishlist.ProductIDs {
		product, err := s.catalog.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				log.Printf("wishlist references missing product %s, skipping", id)
				continue
			}
			return nil, err
		}
		products = append(products, *product)
	}

	return &domain.WishlistView{UserID: userID, Products: products}, nil
}

func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.catalog.Get(ctx, productID); err != nil {
		return err
	}

	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrWishlistNotFound) {
		return err
	}
	if wishlist != nil && wishlist.Contains(productID) {
		return ErrAlreadyInWishlist
	}

	return s.repo.AddProduct(ctx, userID, productID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	return s.repo.RemoveProduct(ctx, userID, productID)
}
