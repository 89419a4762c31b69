package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogerrors "campusbook/internal/catalog/errors"
	"campusbook/pkg/config"
	"campusbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MediaCollectionName = "MediaResources"
)

type MediaRepository interface {
	Create(ctx context.Context, media *model.MediaResource) error
	FindByID(ctx context.Context, id string) (*model.MediaResource, error)
	FindAll(ctx context.Context) ([]*model.MediaResource, error)
	Update(ctx context.Context, id string, media *model.MediaResource) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoMediaRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoMediaRepository(cfg *config.Config) MediaRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoMediaRepository{
		cfg:        cfg,
		collection: db.Collection(MediaCollectionName),
	}
}

func (r *mongoMediaRepository) Create(ctx context.Context, media *model.MediaResource) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	media.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		return fmt.Errorf("failed to create media resource: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		media.ID = oid.Hex()
	}
	return nil
}

func (r *mongoMediaRepository) FindByID(ctx context.Context, id string) (*model.MediaResource, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogerrors.ErrInvalidID, id)
	}

	var media model.MediaResource
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalogerrors.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to find media resource: %w", err)
	}

	return &media, nil
}

func (r *mongoMediaRepository) FindAll(ctx context.Context) ([]*model.MediaResource, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find media resources: %w", err)
	}
	defer cursor.Close(ctx)

	var media []*model.MediaResource
	if err = cursor.All(ctx, &media); err != nil {
		return nil, fmt.Errorf("failed to decode media resources: %w", err)
	}

	return media, nil
}

func (r *mongoMediaRepository) Update(ctx context.Context, id string, media *model.MediaResource) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", catalogerrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":     media.Name,
			"category": media.Category,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update media resource: %w", err)
	}

	if result.MatchedCount == 0 {
		return catalogerrors.ErrMediaNotFound
	}

	return nil
}

func (r *mongoMediaRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", catalogerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete media resource: %w", err)
	}

	if result.DeletedCount == 0 {
		return catalogerrors.ErrMediaNotFound
	}

	return nil
}

func (r *mongoMediaRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count media resources: %w", err)
	}

	return count, nil
}
