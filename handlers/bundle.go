package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handler funcs the route registration wires up.
type HandlerBundle struct {
	// Chat endpoints.
	CreateSession  gin.HandlerFunc
	GetSession     gin.HandlerFunc
	PostMessage    gin.HandlerFunc
	BookEvent      gin.HandlerFunc
	SelectQuantity gin.HandlerFunc
	SubmitUserInfo gin.HandlerFunc
	DeleteSession  gin.HandlerFunc

	// Booking record endpoints.
	GetBooking      gin.HandlerFunc
	GetUserBookings gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the constructed handlers.
func NewHandlerBundle(chat *ChatHandler, booking *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateSession:  chat.CreateSession,
		GetSession:     chat.GetSession,
		PostMessage:    chat.PostMessage,
		BookEvent:      chat.BookEvent,
		SelectQuantity: chat.SelectQuantity,
		SubmitUserInfo: chat.SubmitUserInfo,
		DeleteSession:  chat.DeleteSession,

		GetBooking:      booking.GetBooking,
		GetUserBookings: booking.GetUserBookings,
	}
}
