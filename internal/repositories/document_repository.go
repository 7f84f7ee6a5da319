package repositories

import (
	"context"

	"fintrack/internal/constants"
	"fintrack/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentRepository stores schema-free documents in a single collection.
type DocumentRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	InsertMany(ctx context.Context, docs []bson.M) (int, error)
	ReplaceAll(ctx context.Context, docs []bson.M) error
}

type transactor interface {
	SupportsTransactions() bool
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type documentRepository struct {
	collection *mongo.Collection
	tx         transactor
}

func NewDocumentRepository(mongoClient *mongodb.MongoDBClient, collectionName string) DocumentRepository {
	return newDocumentRepository(mongoClient.GetCollectionByName(collectionName), mongoClient)
}

func newDocumentRepository(collection *mongo.Collection, tx transactor) *documentRepository {
	return &documentRepository{
		collection: collection,
		tx:         tx,
	}
}

func (r *documentRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// InsertMany inserts every document with a store-assigned id. Any _id supplied by
// the caller is dropped.
func (r *documentRepository) InsertMany(ctx context.Context, docs []bson.M) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	result, err := r.collection.InsertMany(ctx, withoutIDs(docs))
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

// ReplaceAll deletes every document and inserts docs. On deployments without
// transaction support the two steps are not atomic: readers may observe an empty
// collection in between, and a failed insert leaves it empty.
func (r *documentRepository) ReplaceAll(ctx context.Context, docs []bson.M) error {
	replace := func(ctx context.Context) error {
		if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		_, err := r.collection.InsertMany(ctx, withoutIDs(docs))
		return err
	}

	if r.tx != nil && r.tx.SupportsTransactions() {
		return r.tx.WithTransaction(ctx, replace)
	}
	return replace(ctx)
}

func withoutIDs(docs []bson.M) []interface{} {
	out := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		clean := make(bson.M, len(doc))
		for k, v := range doc {
			if k == constants.FieldID {
				continue
			}
			clean[k] = v
		}
		out = append(out, clean)
	}
	return out
}
