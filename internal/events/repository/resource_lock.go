package repository

import (
	"context"
	"fmt"
	"time"

	"campusbook/pkg/config"
	"campusbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	LockCollectionName = "ResourceLocks"
)

// ResourceLockRepository implements short-lived advisory locks keyed on a
// resource identifier. Acquisition relies on the unique _id index: the
// first writer inserts, every concurrent writer gets a duplicate-key
// error. A TTL index on expires_at reaps locks orphaned by a crash.
type ResourceLockRepository interface {
	Create(ctx context.Context, lock *model.ResourceLock) error
	Delete(ctx context.Context, id string) error
}

type mongoResourceLockRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoResourceLockRepository(cfg *config.Config) ResourceLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoResourceLockRepository{
		cfg:        cfg,
		collection: db.Collection(LockCollectionName),
	}
}

func (r *mongoResourceLockRepository) Create(ctx context.Context, lock *model.ResourceLock) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	lock.CreatedAt = time.Now().UTC()
	if _, err := r.collection.InsertOne(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("resource lock already held: %s", lock.ID)
		}
		return fmt.Errorf("failed to create resource lock: %w", err)
	}

	return nil
}

func (r *mongoResourceLockRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete resource lock: %w", err)
	}

	return nil
}
