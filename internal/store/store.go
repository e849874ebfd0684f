package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the three portal collections. It owns no business logic;
// it only translates domain filters into storage queries.
type Store struct {
	appointments *mongo.Collection
	users        *mongo.Collection
	doctors      *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		appointments: db.Collection("appointments"),
		users:        db.Collection("users"),
		doctors:      db.Collection("doctors"),
	}
}

// EnsureIndexes creates the unique index on users.email that keeps one
// account record per email and backs the duplicate check in registration.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Filter is an equality conjunction over document fields. This is the entire
// query capability the store exposes: no ranges, no sorting, no pagination.
type Filter struct {
	d bson.D
}

// Eq starts a filter matching field == value.
func Eq(field string, value any) Filter {
	return Filter{d: bson.D{{Key: field, Value: value}}}
}

// And adds another field == value condition to the conjunction.
func (f Filter) And(field string, value any) Filter {
	d := make(bson.D, len(f.d), len(f.d)+1)
	copy(d, f.d)
	return Filter{d: append(d, bson.E{Key: field, Value: value})}
}

// All matches every document in a collection.
func All() Filter {
	return Filter{}
}

// Doc renders the filter as a driver query document.
func (f Filter) Doc() bson.D {
	if f.d == nil {
		return bson.D{}
	}
	return f.d
}
