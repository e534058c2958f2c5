package repository

import (
	"context"
	"fmt"

	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		db:         db,
		collection: collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	coll := r.db.Collection(r.collection)

	insertedID, err := coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if oid, ok := insertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	coll := r.db.Collection(r.collection)

	var user domain.User
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	coll := r.db.Collection(r.collection)

	var user domain.User

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, err
	}

	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	return user, err
}
