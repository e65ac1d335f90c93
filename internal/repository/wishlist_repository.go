package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
)

type mongoWishlistRepository struct {
	collection *mongo.Collection
}

func NewMongoWishlistRepository(db *mongo.Database) *mongoWishlistRepository {
	return &mongoWishlistRepository{
		collection: db.Collection("wishlists"),
	}
}

func (m *mongoWishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist

	err := m.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wishlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wishlist, nil
}

func (m *mongoWishlistRepository) Upsert(ctx context.Context, wishlist *domain.Wishlist) error {
	now := time.Now()
	if wishlist.CreatedAt.IsZero() {
		wishlist.CreatedAt = now
	}
	wishlist.UpdatedAt = now

	filter := bson.M{"user_id": wishlist.UserID}
	update := bson.M{"$set": wishlist}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert wishlist: %w", err)
	}

	return nil
}

// AddProduct relies on $addToSet for uniqueness; the service layer
// rejects duplicates before getting here so the caller sees a clean
// error rather than a silent no-op.
func (m *mongoWishlistRepository) AddProduct(ctx context.Context, userID, productID string) error {
	now := time.Now()
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$addToSet":    bson.M{"product_ids": productID},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to add product to wishlist: %w", err)
	}

	return nil
}

func (m *mongoWishlistRepository) RemoveProduct(ctx context.Context, userID, productID string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$pull": bson.M{"product_ids": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove product from wishlist: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrWishlistNotFound
	}

	return nil
}

func (m *mongoWishlistRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create wishlist indexes: %w", err)
	}

	return nil
}
