package service

import (
	"context"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Get returns the order only to its owner or an admin.
func (s *OrderService) Get(ctx context.Context, orderID string, requester domain.Identity) (*domain.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !requester.CanAccessOrder(order.UserID) {
		return nil, ErrNotAuthorized
	}

	return order, nil
}

// ListMine returns the user's orders newest-first.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus applies an admin status transition. Cancellation is a
// transition like any other; orders are never deleted.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}
