package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/example/ec-commerce/internal/domain/order"
)

const ordersCollection = "orders"

// MongoOrderStore persists orders in the orders collection.
type MongoOrderStore struct {
	coll *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{coll: db.Collection(ordersCollection)}
}

func (s *MongoOrderStore) Insert(ctx context.Context, o order.Order) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, o)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert order")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// ListByUser selects the page with an aggregation pipeline so the match,
// sort and paging stages run store-side. A limit of 0 means no limit stage.
func (s *MongoOrderStore) ListByUser(ctx context.Context, userID string, limit, offset int) ([]order.Order, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	if offset > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: int64(offset)}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(limit)}})
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "list orders by user")
	}

	var orders []order.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}
