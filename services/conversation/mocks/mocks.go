// Package mocks provides testify mocks for the conversation controller's
// collaborator interfaces.
package mocks

import (
	"context"

	"infibot/models"
	"infibot/services/ticket"

	"github.com/stretchr/testify/mock"
)

// MockCatalog is a mock implementation of catalog.CatalogService.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListCities(ctx context.Context) ([]models.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *MockCatalog) ListCategories(ctx context.Context) ([]models.EventCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventCategory), args.Error(1)
}

func (m *MockCatalog) ListEvents(ctx context.Context, city, category string) ([]models.Event, error) {
	args := m.Called(ctx, city, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

// StubWriter is a ChatWriter returning fixed copy, so conversation tests
// don't depend on a generation backend.
type StubWriter struct{}

func (StubWriter) WelcomeMessage(ctx context.Context) string { return "Welcome to InfiBot!" }
func (StubWriter) CityResponse(ctx context.Context, city string) string {
	return "Great choice: " + city
}
func (StubWriter) CategoryResponse(ctx context.Context, city, category string) string {
	return "Here are " + category + " events in " + city
}
func (StubWriter) EventResponse(ctx context.Context, eventName string) string {
	return "Details for " + eventName
}
func (StubWriter) UserInfoPrompt(ctx context.Context, eventName string) string {
	return "Please share your details for " + eventName
}
func (StubWriter) BookingConfirmation(ctx context.Context, eventName, userName string) string {
	return "Booking confirmed for " + userName + ": " + eventName
}
func (StubWriter) FallbackReply(ctx context.Context) string {
	return "I'm here to help you book event tickets."
}

// MockRenderer is a mock implementation of ticket.Renderer.
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) QRPayload(bookingID string) string {
	args := m.Called(bookingID)
	return args.String(0)
}

func (m *MockRenderer) GenerateQR(payload string) ([]byte, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderTicket(details ticket.TicketDetails, qrPNG []byte) ([]byte, error) {
	args := m.Called(details, qrPNG)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockAssetStore is a mock implementation of storage.AssetStore.
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, name, contentType, data)
	return args.String(0), args.Error(1)
}

// MockUserRepo is a mock implementation of userRepo.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Save(ctx context.Context, info models.UserInfo) (string, error) {
	args := m.Called(ctx, info)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*models.BookingUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingUser), args.Error(1)
}

// MockBookingRepo is a mock implementation of bookingRepo.BookingRepository.
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Save(ctx context.Context, record models.BookingRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingRecord), args.Error(1)
}
