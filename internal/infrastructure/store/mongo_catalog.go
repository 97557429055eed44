package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/ec-commerce/internal/domain/catalog"
)

const productsCollection = "products"

// MongoCatalogStore persists products in the products collection.
type MongoCatalogStore struct {
	coll *mongo.Collection
}

func NewMongoCatalogStore(db *mongo.Database) *MongoCatalogStore {
	return &MongoCatalogStore{coll: db.Collection(productsCollection)}
}

func (s *MongoCatalogStore) Insert(ctx context.Context, p catalog.Product) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert product")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoCatalogStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]catalog.Product, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "find products by ids")
	}

	var products []catalog.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func (s *MongoCatalogStore) List(ctx context.Context, filter ProductFilter, limit, offset int) ([]catalog.Product, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Size != "" {
		query["sizes.size"] = filter.Size
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	var products []catalog.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func (s *MongoCatalogStore) ReplaceSizes(ctx context.Context, id primitive.ObjectID, sizes []catalog.SizeVariant) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"sizes": sizes}},
	)
	return errors.Wrap(err, "replace product sizes")
}
