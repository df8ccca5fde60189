package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository is a MongoDB implementation of Repository
type MongoRepository[T any] struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a Repository backed by a MongoDB collection
func NewMongoRepository[T any](coll *mongo.Collection) Repository[T] {
	return &MongoRepository[T]{coll: coll}
}

// Create inserts a new document
func (r *MongoRepository[T]) Create(ctx context.Context, doc *T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translateMongoError(err)
	}
	return nil
}

// First finds the first document matching the query
func (r *MongoRepository[T]) First(ctx context.Context, q Query) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, mongoFilter(q)).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	return &doc, nil
}

// Find lists documents matching the query
func (r *MongoRepository[T]) Find(ctx context.Context, q Query) ([]T, error) {
	opts := options.Find()
	if q.SortDesc != "" {
		opts.SetSort(bson.D{{Key: q.SortDesc, Value: -1}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit)).SetSkip(int64(q.Offset))
	}

	cursor, err := r.coll.Find(ctx, mongoFilter(q), opts)
	if err != nil {
		return nil, translateMongoError(err)
	}

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translateMongoError(err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

// Replace overwrites the document matched by the query
func (r *MongoRepository[T]) Replace(ctx context.Context, q Query, doc *T) error {
	result, err := r.coll.ReplaceOne(ctx, mongoFilter(q), doc)
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document matched by the query
func (r *MongoRepository[T]) Delete(ctx context.Context, q Query) error {
	result, err := r.coll.DeleteOne(ctx, mongoFilter(q))
	if err != nil {
		return translateMongoError(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// mongoFilter translates a Query into a filter document. Multiple clauses are
// joined with $and so repeated fields never overwrite each other.
func mongoFilter(q Query) bson.M {
	clauses := make([]bson.M, 0, len(q.Conditions)+2)
	if q.ID != "" {
		clauses = append(clauses, bson.M{"_id": q.ID})
	}
	if q.OwnerID != "" {
		clauses = append(clauses, bson.M{ownerField: q.OwnerID})
	}
	for _, cond := range q.Conditions {
		clauses = append(clauses, mongoClause(cond))
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		and := make(bson.A, 0, len(clauses))
		for _, c := range clauses {
			and = append(and, c)
		}
		return bson.M{"$and": and}
	}
}

func mongoClause(cond Condition) bson.M {
	switch cond.Op {
	case OpLTE:
		return bson.M{cond.Field: bson.M{"$lte": cond.Value}}
	case OpLTEField:
		return bson.M{"$expr": bson.M{"$lte": bson.A{"$" + cond.Field, fmt.Sprint("$", cond.Value)}}}
	default:
		return bson.M{cond.Field: cond.Value}
	}
}

func translateMongoError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return err
	}
}
