package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every collection index. Called once at startup,
// the mongo analogue of running migrations.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewMongoProductRepository(db).CreateIndexes(ctx); err != nil {
		return err
	}
	if err := NewMongoCartRepository(db).CreateIndexes(ctx); err != nil {
		return err
	}
	if err := NewMongoOrderRepository(db).CreateIndexes(ctx); err != nil {
		return err
	}
	if err := NewMongoWishlistRepository(db).CreateIndexes(ctx); err != nil {
		return err
	}
	if err := NewMongoUserRepository(db).CreateIndexes(ctx); err != nil {
		return err
	}
	return NewMongoOutboxRepository(db).CreateIndexes(ctx)
}
