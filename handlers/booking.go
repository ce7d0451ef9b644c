package handlers

import (
	"errors"
	"net/http"

	bookingRepo "infibot/database/repository/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves persisted booking records.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// GetBooking returns one booking record by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	record, err := h.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetUserBookings returns all bookings made by an attendee.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.Param("userID")

	records, err := h.Bookings.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to fetch bookings", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, records)
}
