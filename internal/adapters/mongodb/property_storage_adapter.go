package mongodb_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoPropertyStorageAdapter хранит объявления в коллекции MongoDB
type MongoPropertyStorageAdapter struct {
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoPropertyStorageAdapter(client *mongo.Client, collection *mongo.Collection) (*MongoPropertyStorageAdapter, error) {
	if client == nil || collection == nil {
		return nil, fmt.Errorf("mongo client and collection cannot be nil")
	}
	return &MongoPropertyStorageAdapter{
		client:     client,
		collection: collection,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}, nil
}

// EnsureIndexes создает индексы под сортировку и частые фильтры
func (a *MongoPropertyStorageAdapter) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}
	if _, err := a.collection.Indexes().CreateMany(ctx, models); err != nil {
		return domain.NewStoreError("ensure indexes", err)
	}
	return nil
}

func (a *MongoPropertyStorageAdapter) List(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "MongoPropertyStorageAdapter",
		"method":    "List",
	})

	query := buildFilter(filters)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := a.collection.Find(ctx, query, opts)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, domain.NewStoreError("list", err)
	}
	defer cursor.Close(ctx)

	var docs []propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		repoLogger.Error("Failed to decode properties", err, nil)
		return nil, domain.NewStoreError("list", err)
	}

	properties := make([]domain.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, doc.toDomain())
	}

	repoLogger.Debug("Properties listed", port.Fields{"count": len(properties)})
	return properties, nil
}

func (a *MongoPropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	var doc propertyDocument
	err = a.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to fetch property", err, port.Fields{
			"component":   "MongoPropertyStorageAdapter",
			"property_id": id,
		})
		return nil, domain.NewStoreError("get", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (a *MongoPropertyStorageAdapter) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	now := a.now()
	property.CreatedAt = now
	property.UpdatedAt = now

	doc := toDocument(property)
	doc.ID = primitive.NewObjectID()

	if _, err := a.collection.InsertOne(ctx, doc); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to insert property", err, port.Fields{
			"component": "MongoPropertyStorageAdapter",
		})
		return nil, domain.NewStoreError("create", err)
	}

	created := doc.toDomain()
	return &created, nil
}

// Replace перезаписывает все поля, кроме _id и createdAt
func (a *MongoPropertyStorageAdapter) Replace(ctx context.Context, property domain.Property) (*domain.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(property.ID)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	property.UpdatedAt = a.now()
	doc := toDocument(property)

	update := bson.M{"$set": bson.M{
		"title":       doc.Title,
		"description": doc.Description,
		"price":       doc.Price,
		"location":    doc.Location,
		"bedrooms":    doc.Bedrooms,
		"bathrooms":   doc.Bathrooms,
		"area":        doc.Area,
		"type":        doc.Type,
		"status":      doc.Status,
		"images":      doc.Images,
		"amenities":   doc.Amenities,
		"updatedAt":   doc.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated propertyDocument
	err = a.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to update property", err, port.Fields{
			"component":   "MongoPropertyStorageAdapter",
			"property_id": property.ID,
		})
		return nil, domain.NewStoreError("replace", err)
	}

	p := updated.toDomain()
	return &p, nil
}

func (a *MongoPropertyStorageAdapter) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := a.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to delete property", err, port.Fields{
			"component":   "MongoPropertyStorageAdapter",
			"property_id": id,
		})
		return domain.NewStoreError("delete", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (a *MongoPropertyStorageAdapter) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx, readpref.Primary()); err != nil {
		return domain.NewStoreError("ping", err)
	}
	return nil
}

func (a *MongoPropertyStorageAdapter) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
