package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// MongoStore binds the gateway to a MongoDB database. One client is
// created at startup and shared by every request; the driver pools
// connections underneath.
type MongoStore struct {
	db     *mongo.Database
	logger *zap.SugaredLogger
}

// NewMongoStore connects to the store named in the connection string
// and binds the given database.
func NewMongoStore(url, dbName string, logger *zap.SugaredLogger) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	logger.Infow("Bound document store", "backend", "mongo", "database", dbName)

	return &MongoStore{
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

func (s *MongoStore) Kind() string { return "mongo" }

func (s *MongoStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", &OpError{Op: "insert", Collection: collection, Err: err}
	}
	return normalizeID(res.InsertedID), nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]Document, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, q, opts)
	if err != nil {
		return nil, &OpError{Op: "query", Collection: collection, Err: err}
	}
	defer cur.Close(ctx)

	var docs []Document
	for cur.Next(ctx) {
		var row bson.M
		if err := cur.Decode(&row); err != nil {
			return nil, &OpError{Op: "decode", Collection: collection, Err: err}
		}
		doc := Document(row)
		if raw, ok := doc[IDKey]; ok {
			doc[IDKey] = normalizeID(raw)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, &OpError{Op: "query", Collection: collection, Err: err}
	}

	return docs, nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &OpError{Op: "list-collections", Err: err}
	}
	return names, nil
}

// normalizeID renders a store-native identifier as text. Mongo assigns
// binary ObjectIDs; callers only ever see the hex form.
func normalizeID(raw any) string {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", raw)
	}
}
