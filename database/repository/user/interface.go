package userRepo

import (
	"context"

	"infibot/database"
	"infibot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository persists attendee details collected by the booking form.
type UserRepository interface {
	Save(ctx context.Context, info models.UserInfo) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingUser, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("infibot")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
