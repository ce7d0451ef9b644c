package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	bookingRepo "infibot/database/repository/booking"
	"infibot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBooking(t *testing.T) {
	r, d := newTestServer(t)
	record := &models.BookingRecord{
		ID:          "booking-1",
		EventID:     "Mumbai-Music-1",
		EventName:   "Music 1 in Mumbai",
		UserID:      "user-1",
		Quantity:    3,
		TotalAmount: "₹1500",
	}
	d.bookings.On("GetByID", mock.Anything, "booking-1").Return(record, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings/booking-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BookingRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *record, got)
}

func TestGetBooking_NotFound(t *testing.T) {
	r, d := newTestServer(t)
	d.bookings.On("GetByID", mock.Anything, "nope").Return(nil, bookingRepo.ErrBookingNotFound)

	w := doJSON(r, http.MethodGet, "/api/bookings/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserBookings(t *testing.T) {
	r, d := newTestServer(t)
	records := []models.BookingRecord{
		{ID: "booking-1", UserID: "user-1"},
		{ID: "booking-2", UserID: "user-1"},
	}
	d.bookings.On("GetByUserID", mock.Anything, "user-1").Return(records, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings/user/user-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.BookingRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
