package models

import "time"

// BookingUser is a persisted attendee record.
type BookingUser struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Age       int       `json:"age" bson:"age"`
	Gender    string    `json:"gender" bson:"gender"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingRecord is created exactly once per completed booking attempt.
type BookingRecord struct {
	ID          string    `json:"id" bson:"id"`
	EventID     string    `json:"eventId" bson:"eventId"`
	EventName   string    `json:"eventName" bson:"eventName"`
	UserID      string    `json:"userId" bson:"userId"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	TotalAmount string    `json:"totalAmount" bson:"totalAmount"`
	QRPayload   string    `json:"qrPayload" bson:"qrPayload"`
	TicketRef   string    `json:"ticketRef" bson:"ticketRef"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
