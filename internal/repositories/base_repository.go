package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

/*
CrudRepository is the uniform access pattern shared by every content
collection: list, fetch by id, insert, sparse update, hard delete.
Concrete repositories either alias an instantiation of it or embed it
and add entity-specific queries.
*/
type CrudRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type crudRepo[T any] struct {
	coll      *mongo.Collection
	listSort  bson.D
	listLimit int64
}

// newCrudRepo is called by concrete repositories. The default list
// order is newest-first; entities with their own ordering override it.
func newCrudRepo[T any](coll *mongo.Collection) *crudRepo[T] {
	return &crudRepo[T]{
		coll:     coll,
		listSort: bson.D{{Key: "createdAt", Value: -1}},
	}
}

func (r *crudRepo[T]) List(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(r.listSort)
	if r.listLimit > 0 {
		opts.SetLimit(r.listLimit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	// Non-nil so an empty collection renders as [] rather than null.
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *crudRepo[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *crudRepo[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (r *crudRepo[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *crudRepo[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
