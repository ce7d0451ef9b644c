package bookingRepo

import (
	"context"

	"infibot/database"
	"infibot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists completed bookings.
type BookingRepository interface {
	Save(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("infibot")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
