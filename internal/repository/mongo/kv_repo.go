package mongo

import (
	"context"
	"errors"
	"time"

	"astgym/gym-ai/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultKVCollectionName = "kv_store"

// kvDocument is one slot. Value keeps the JSON text so documents stay readable in the shell.
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoKVRepository implements repository.KeyValueStore using one MongoDB collection.
type mongoKVRepository struct {
	collection *mongo.Collection
}

// NewMongoKVRepository creates a store over the named collection of db.
func NewMongoKVRepository(db *mongo.Database, collection string) repository.KeyValueStore {
	if collection == "" {
		collection = DefaultKVCollectionName
	}
	return &mongoKVRepository{collection: db.Collection(collection)}
}

func (r *mongoKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		return nil, mapFindError(err)
	}
	return []byte(doc.Value), nil
}

// mapFindError turns the driver's empty-result error into repository.ErrNotFound.
func mapFindError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// Set replaces the whole slot, inserting it on first write.
func (r *mongoKVRepository) Set(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}

func (r *mongoKVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// EnsureKVIndexes creates necessary indexes for the key-value collection.
// Call this once during application startup.
func EnsureKVIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}}, // most recently written slots first
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
