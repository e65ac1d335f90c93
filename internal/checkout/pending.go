package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
)

var ErrPendingNotFound = errors.New("pending checkout not found")

// PendingStore keeps the priced snapshot of an online checkout between
// intent creation and the verification callback, keyed by the gateway
// order id. Entries expire with the gateway's own intent lifetime.
type PendingStore interface {
	Put(ctx context.Context, gatewayOrderID string, snapshot *domain.CheckoutSnapshot) error
	Get(ctx context.Context, gatewayOrderID string) (*domain.CheckoutSnapshot, error)
	Delete(ctx context.Context, gatewayOrderID string) error
}

func NewRedisPendingStore(client *redis.Client, ttl time.Duration) *RedisPendingStore {
	return &RedisPendingStore{
		client: client,
		ttl:    ttl,
	}
}

type RedisPendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisPendingStore) Put(ctx context.Context, gatewayOrderID string, snapshot *domain.CheckoutSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal pending checkout failed: %w", err)
	}

	if err := r.client.Set(ctx, pendingKey(gatewayOrderID), string(data), r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisPendingStore) Get(ctx context.Context, gatewayOrderID string) (*domain.CheckoutSnapshot, error) {
	data, err := r.client.Get(ctx, pendingKey(gatewayOrderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot domain.CheckoutSnapshot
	if err2 := json.Unmarshal(data, &snapshot); err2 != nil {
		return nil, fmt.Errorf("unmarshal pending checkout failed: %w", err2)
	}

	return &snapshot, nil
}

func (r *RedisPendingStore) Delete(ctx context.Context, gatewayOrderID string) error {
	if err := r.client.Del(ctx, pendingKey(gatewayOrderID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func pendingKey(gatewayOrderID string) string {
	return fmt.Sprintf("checkout:pending:%s", gatewayOrderID)
}
