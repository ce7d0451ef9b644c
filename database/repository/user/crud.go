package userRepo

import (
	"context"
	"time"

	"infibot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Save inserts a new attendee record and returns its ID.
func (r *mongoUserRepo) Save(ctx context.Context, info models.UserInfo) (string, error) {
	user := models.BookingUser{
		ID:        uuid.New().String(),
		Name:      info.Name,
		Age:       info.Age,
		Gender:    info.Gender,
		Phone:     info.Phone,
		Email:     info.Email,
		CreatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetByID returns an attendee record by its ID.
func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.BookingUser, error) {
	var user models.BookingUser
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
