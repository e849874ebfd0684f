package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctors-portal/doctors-portal-api/internal/models"
)

// UserByEmail fetches the stored account for an email, or nil if none exists.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, Eq("email", email).Doc()).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new account record.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.users.InsertOne(ctx, user)
	return err
}

// UpsertUserByEmail merges the given fields into the account matching the
// user's email, inserting a fresh record when none exists. This is the
// create-or-update path used by sign-in flows.
func (s *Store) UpsertUserByEmail(ctx context.Context, user models.User) (*mongo.UpdateResult, error) {
	// _id is immutable; a client-supplied id must never reach the patch.
	user.ID = primitive.ObjectID{}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)
	return s.users.UpdateOne(ctx, Eq("email", user.Email).Doc(), update, opts)
}

// GrantAdmin sets role=admin on the account matching email. No upsert: a
// missing target simply matches nothing.
func (s *Store) GrantAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": "admin"}}
	return s.users.UpdateOne(ctx, Eq("email", email).Doc(), update)
}
