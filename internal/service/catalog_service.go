package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/cache"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

// CatalogService is the authoritative read surface for products; the
// checkout orchestrator prices every line through Get.
type CatalogService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCatalogService(repo repository.ProductRepository, cache cache.ProductCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	// Use singleflight so concurrent misses for a hot product hit the
	// database once
	v, err, _ := s.sfg.Do(productID, func() (interface{}, error) {
		product, err := s.cache.Get(ctx, productID)
		if err == nil {
			return product, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		product, errGet := s.repo.Get(ctx, productID)
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), productID, product); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

func (s *CatalogService) List(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	return s.repo.List(ctx, filter)
}

// FeaturedPicks returns the spotlight category shown on the landing
// page.
func (s *CatalogService) FeaturedPicks(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *CatalogService) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return s.repo.Insert(ctx, product)
}

func (s *CatalogService) Update(ctx context.Context, product *domain.Product) error {
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}

	s.invalidate(product.ID)
	return nil
}

func (s *CatalogService) invalidate(productID string) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheInvalidateTimeout)
	defer cancel()
	if err := s.cache.Delete(ctx, productID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
