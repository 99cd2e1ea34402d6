package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check that the fake covers everything the services use.
var _ collection = (*fakeCollection)(nil)

// fakeCollection is a function-field stand-in for *mongo.Collection. Results
// are built with mongo.NewSingleResultFromDocument / NewCursorFromDocuments
// so decoding goes through the real bson machinery.
type fakeCollection struct {
	FindOneFunc    func(ctx context.Context, filter interface{}) *mongo.SingleResult
	FindFunc       func(ctx context.Context, filter interface{}) (*mongo.Cursor, error)
	AggregateFunc  func(ctx context.Context, pipeline interface{}) (*mongo.Cursor, error)
	InsertOneFunc  func(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOneFunc  func(ctx context.Context, filter, update interface{}) (*mongo.UpdateResult, error)
	UpdateManyFunc func(ctx context.Context, filter, update interface{}) (*mongo.UpdateResult, error)
	DeleteOneFunc  func(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	CountFunc      func(ctx context.Context, filter interface{}) (int64, error)
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	if f.FindOneFunc != nil {
		return f.FindOneFunc(ctx, filter)
	}
	return mongo.NewSingleResultFromDocument(struct{}{}, errors.New("FindOneFunc not implemented in fake"), nil)
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.FindFunc != nil {
		return f.FindFunc(ctx, filter)
	}
	return nil, errors.New("FindFunc not implemented in fake")
}

func (f *fakeCollection) Aggregate(ctx context.Context, pipeline interface{}, _ ...*options.AggregateOptions) (*mongo.Cursor, error) {
	if f.AggregateFunc != nil {
		return f.AggregateFunc(ctx, pipeline)
	}
	return nil, errors.New("AggregateFunc not implemented in fake")
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.InsertOneFunc != nil {
		return f.InsertOneFunc(ctx, document)
	}
	return nil, errors.New("InsertOneFunc not implemented in fake")
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.UpdateOneFunc != nil {
		return f.UpdateOneFunc(ctx, filter, update)
	}
	return nil, errors.New("UpdateOneFunc not implemented in fake")
}

func (f *fakeCollection) UpdateMany(ctx context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.UpdateManyFunc != nil {
		return f.UpdateManyFunc(ctx, filter, update)
	}
	return nil, errors.New("UpdateManyFunc not implemented in fake")
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if f.DeleteOneFunc != nil {
		return f.DeleteOneFunc(ctx, filter)
	}
	return nil, errors.New("DeleteOneFunc not implemented in fake")
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter interface{}, _ ...*options.CountOptions) (int64, error) {
	if f.CountFunc != nil {
		return f.CountFunc(ctx, filter)
	}
	return 0, errors.New("CountFunc not implemented in fake")
}

func docsToCursor(docs ...interface{}) *mongo.Cursor {
	cursor, err := mongo.NewCursorFromDocuments(docs, nil, nil)
	if err != nil {
		panic(err)
	}
	return cursor
}

func noDocuments() *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(struct{}{}, mongo.ErrNoDocuments, nil)
}
