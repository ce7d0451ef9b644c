package conversation

import (
	"context"
	"errors"
	"testing"

	"infibot/models"
	"infibot/services/conversation/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testCities = []models.City{
		{ID: "1", Name: "Mumbai", State: "Maharashtra"},
		{ID: "2", Name: "Delhi", State: "Delhi"},
		{ID: "3", Name: "Bangalore", State: "Karnataka"},
	}
	testCategories = []models.EventCategory{
		{ID: "1", Name: "Music", Description: "Live music performances"},
		{ID: "2", Name: "Comedy", Description: "Stand-up comedy"},
	}
	testEvents = []models.Event{
		{ID: "Mumbai-Music-1", Name: "Music 1 in Mumbai", Category: "Music", City: "Mumbai", Date: "June 1, 2026", Price: "₹500"},
		{ID: "Mumbai-Music-2", Name: "Music 2 in Mumbai", Category: "Music", City: "Mumbai", Date: "June 4, 2026", Price: "₹1000"},
	}
	testUser = models.UserInfo{Name: "Asha", Age: 25, Gender: "Female", Phone: "9876543210", Email: "a@b.com"}
)

type testDeps struct {
	catalog  *mocks.MockCatalog
	renderer *mocks.MockRenderer
	assets   *mocks.MockAssetStore
	users    *mocks.MockUserRepo
	bookings *mocks.MockBookingRepo
}

func newTestConversation(t *testing.T) (*Conversation, *testDeps) {
	t.Helper()

	d := &testDeps{
		catalog:  new(mocks.MockCatalog),
		renderer: new(mocks.MockRenderer),
		assets:   new(mocks.MockAssetStore),
		users:    new(mocks.MockUserRepo),
		bookings: new(mocks.MockBookingRepo),
	}
	d.catalog.On("ListCities", mock.Anything).Return(testCities, nil)
	d.catalog.On("ListCategories", mock.Anything).Return(testCategories, nil)

	conv := New(Deps{
		Catalog:  d.catalog,
		Writer:   mocks.StubWriter{},
		Renderer: d.renderer,
		Assets:   d.assets,
		Users:    d.users,
		Bookings: d.bookings,
	})
	require.NoError(t, conv.Start(context.Background()))
	return conv, d
}

// advanceToUserForm drives a fresh conversation through city, category,
// booking and quantity selection.
func advanceToUserForm(t *testing.T, conv *Conversation, d *testDeps) {
	t.Helper()
	ctx := context.Background()

	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.SelectCategory(ctx, "Music"))
	require.NoError(t, conv.BookEvent(ctx, testEvents[0].ID))
	require.NoError(t, conv.SelectTicketQuantity(ctx, testEvents[0].ID, 3))
	require.Equal(t, models.StateUserForm, conv.State())
}

func expectTicketPipeline(d *testDeps) {
	d.renderer.On("QRPayload", mock.Anything).Return(`{"bookingData":"x|sig","message":"Ticket is verified"}`)
	d.renderer.On("GenerateQR", mock.Anything).Return([]byte("png"), nil)
	d.renderer.On("RenderTicket", mock.Anything, mock.Anything).Return([]byte("pdf"), nil)
	d.assets.On("Put", mock.Anything, mock.Anything, "application/pdf", mock.Anything).Return("/assets/ticket.pdf", nil)
}

func lastMessage(t *testing.T, conv *Conversation) models.ChatMessage {
	t.Helper()
	msgs := conv.Messages()
	require.NotEmpty(t, msgs)
	return msgs[len(msgs)-1]
}

func messagesOfType(conv *Conversation, mt models.MessageType) []models.ChatMessage {
	var out []models.ChatMessage
	for _, m := range conv.Messages() {
		if m.Type == mt && m.Role == models.RoleBot {
			out = append(out, m)
		}
	}
	return out
}

func TestStart(t *testing.T) {
	conv, _ := newTestConversation(t)

	assert.Equal(t, models.StateCitySelection, conv.State())

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.MessageText, msgs[0].Type)
	assert.Equal(t, models.MessageCitySelection, msgs[1].Type)
	assert.Equal(t, []string{"Mumbai", "Delhi", "Bangalore"}, msgs[1].Options)
}

func TestStart_FatalWhenCityFetchFails(t *testing.T) {
	cat := new(mocks.MockCatalog)
	cat.On("ListCities", mock.Anything).Return(nil, errors.New("catalog down"))

	conv := New(Deps{Catalog: cat, Writer: mocks.StubWriter{}})
	err := conv.Start(context.Background())

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "cities", initErr.Stage)
	assert.Equal(t, models.StateInitial, conv.State())
}

func TestSubmit_CityMatchIsCaseInsensitive(t *testing.T) {
	conv, _ := newTestConversation(t)

	require.NoError(t, conv.Submit(context.Background(), "mUmBaI"))

	assert.Equal(t, models.StateCategorySelection, conv.State())
	// The canonical stored name, not the user's casing.
	assert.Equal(t, "Mumbai", conv.SelectedCity())
	assert.Equal(t, []string{"Music", "Comedy"}, lastMessage(t, conv).Options)
}

func TestSubmit_UnknownCityRepromptsSameOptions(t *testing.T) {
	conv, _ := newTestConversation(t)
	before := lastMessage(t, conv).Options

	require.NoError(t, conv.Submit(context.Background(), "Atlantis"))

	assert.Equal(t, models.StateCitySelection, conv.State())
	assert.Empty(t, conv.SelectedCity())

	msg := lastMessage(t, conv)
	assert.Equal(t, models.MessageCitySelection, msg.Type)
	assert.Equal(t, before, msg.Options)
}

func TestSubmit_CategoryMatchFetchesEvents(t *testing.T) {
	conv, d := newTestConversation(t)
	ctx := context.Background()
	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)

	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.Submit(ctx, "music"))

	assert.Equal(t, models.StateEventSelection, conv.State())
	assert.Equal(t, "Music", conv.SelectedCategory())

	events := conv.Events()
	require.NotEmpty(t, events)
	for _, ev := range events {
		assert.Equal(t, "Music", ev.Category)
		assert.Equal(t, "Mumbai", ev.City)
	}
	assert.Equal(t, testEvents, lastMessage(t, conv).Events)
	d.catalog.AssertExpectations(t)
}

func TestSubmit_EventSelectionByNameOrID(t *testing.T) {
	for _, input := range []string{"music 2 in mumbai", "mumbai-music-2"} {
		t.Run(input, func(t *testing.T) {
			conv, d := newTestConversation(t)
			ctx := context.Background()
			d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
			require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
			require.NoError(t, conv.SelectCategory(ctx, "Music"))

			require.NoError(t, conv.Submit(ctx, input))

			assert.Equal(t, models.StateEventInfo, conv.State())
			require.NotNil(t, conv.SelectedEvent())
			assert.Equal(t, "Mumbai-Music-2", conv.SelectedEvent().ID)
			assert.Equal(t, models.MessageEventInfo, lastMessage(t, conv).Type)
		})
	}
}

func TestSubmit_EventMismatchRepromptsSameListing(t *testing.T) {
	conv, d := newTestConversation(t)
	ctx := context.Background()
	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.SelectCategory(ctx, "Music"))

	require.NoError(t, conv.Submit(ctx, "Opera Gala"))

	assert.Equal(t, models.StateEventSelection, conv.State())
	msg := lastMessage(t, conv)
	assert.Equal(t, models.MessageEventSelection, msg.Type)
	assert.Equal(t, testEvents, msg.Events)
}

func TestBookEvent_Idempotent(t *testing.T) {
	conv, d := newTestConversation(t)
	ctx := context.Background()
	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.SelectCategory(ctx, "Music"))

	require.NoError(t, conv.BookEvent(ctx, testEvents[0].ID))
	require.NoError(t, conv.BookEvent(ctx, testEvents[0].ID))

	assert.Equal(t, models.StateTicketQuantity, conv.State())
	require.NotNil(t, conv.SelectedEvent())
	assert.Equal(t, testEvents[0].ID, conv.SelectedEvent().ID)
	assert.Len(t, messagesOfType(conv, models.MessageTicketQuantity), 2)
}

func TestBookEvent_UnknownIDLeavesStateAlone(t *testing.T) {
	conv, d := newTestConversation(t)
	ctx := context.Background()
	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.SelectCategory(ctx, "Music"))

	require.NoError(t, conv.BookEvent(ctx, "no-such-event"))

	assert.Equal(t, models.StateEventSelection, conv.State())
	assert.Nil(t, conv.SelectedEvent())
}

func TestSelectTicketQuantity_Clamps(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		effective int
		total     string
	}{
		{"below range", 0, 1, "₹500"},
		{"above range", 15, 10, "₹5000"},
		{"in range", 3, 3, "₹1500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, d := newTestConversation(t)
			ctx := context.Background()
			d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
			require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
			require.NoError(t, conv.SelectCategory(ctx, "Music"))
			require.NoError(t, conv.BookEvent(ctx, testEvents[0].ID))

			require.NoError(t, conv.SelectTicketQuantity(ctx, testEvents[0].ID, tt.quantity))

			assert.Equal(t, models.StateUserForm, conv.State())
			assert.Equal(t, tt.effective, conv.Quantity())

			msg := lastMessage(t, conv)
			assert.Equal(t, models.MessageUserForm, msg.Type)
			assert.Equal(t, tt.effective, msg.TicketQuantity)
			assert.Equal(t, tt.total, msg.TotalAmount)
		})
	}
}

func TestSubmit_QuantityText(t *testing.T) {
	conv, d := newTestConversation(t)
	ctx := context.Background()
	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.SelectCategory(ctx, "Music"))
	require.NoError(t, conv.BookEvent(ctx, testEvents[0].ID))

	require.NoError(t, conv.Submit(ctx, "I'd like 2 tickets please"))

	assert.Equal(t, models.StateUserForm, conv.State())
	assert.Equal(t, 2, conv.Quantity())
	assert.Equal(t, "₹1000", lastMessage(t, conv).TotalAmount)
}

func TestSubmit_QuantityTextOutOfRangeReprompts(t *testing.T) {
	conv, d := newTestConversation(t)
	ctx := context.Background()
	d.catalog.On("ListEvents", mock.Anything, "Mumbai", "Music").Return(testEvents, nil)
	require.NoError(t, conv.SelectCity(ctx, "Mumbai"))
	require.NoError(t, conv.SelectCategory(ctx, "Music"))
	require.NoError(t, conv.BookEvent(ctx, testEvents[0].ID))

	require.NoError(t, conv.Submit(ctx, "12 tickets"))

	assert.Equal(t, models.StateTicketQuantity, conv.State())
	msg := lastMessage(t, conv)
	assert.Equal(t, models.MessageTicketQuantity, msg.Type)
	assert.Contains(t, msg.Content, "1 and 10")
}

func TestSubmitUserInfo_CompletesBooking(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	expectTicketPipeline(d)
	d.users.On("Save", mock.Anything, testUser).Return("user-1", nil)
	d.bookings.On("Save", mock.Anything, mock.Anything).Return("booking-1", nil)

	require.NoError(t, conv.SubmitUserInfo(context.Background(), testUser))

	assert.Equal(t, models.StateComplete, conv.State())

	tickets := messagesOfType(conv, models.MessageTicket)
	require.Len(t, tickets, 1)
	assert.Equal(t, "/assets/ticket.pdf", tickets[0].TicketURL)
	assert.Equal(t, "₹1500", tickets[0].TotalAmount)

	// The cosmetic thank-you text follows the ticket.
	assert.Equal(t, models.MessageText, lastMessage(t, conv).Type)

	saved := d.bookings.Calls[0].Arguments.Get(1).(models.BookingRecord)
	assert.Equal(t, testEvents[0].ID, saved.EventID)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, 3, saved.Quantity)
	d.users.AssertExpectations(t)
	d.bookings.AssertExpectations(t)
}

func TestSubmitUserInfo_BookingSaveFailureStillDeliversTicket(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	expectTicketPipeline(d)
	d.users.On("Save", mock.Anything, testUser).Return("user-1", nil)
	d.bookings.On("Save", mock.Anything, mock.Anything).Return("", errors.New("mongo down"))

	require.NoError(t, conv.SubmitUserInfo(context.Background(), testUser))

	assert.Equal(t, models.StateComplete, conv.State())
	require.Len(t, messagesOfType(conv, models.MessageTicket), 1)
}

func TestSubmitUserInfo_UserSaveFailureUsesSyntheticID(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	expectTicketPipeline(d)
	d.users.On("Save", mock.Anything, testUser).Return("", errors.New("mongo down"))
	d.bookings.On("Save", mock.Anything, mock.Anything).Return("booking-1", nil)

	require.NoError(t, conv.SubmitUserInfo(context.Background(), testUser))

	assert.Equal(t, models.StateComplete, conv.State())
	require.Len(t, messagesOfType(conv, models.MessageTicket), 1)

	saved := d.bookings.Calls[0].Arguments.Get(1).(models.BookingRecord)
	assert.Contains(t, saved.UserID, "guest-")
}

func TestSubmitUserInfo_RenderFailureAbortsWithoutTicket(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	d.users.On("Save", mock.Anything, testUser).Return("user-1", nil)
	d.renderer.On("QRPayload", mock.Anything).Return("payload")
	d.renderer.On("GenerateQR", mock.Anything).Return([]byte("png"), nil)
	d.renderer.On("RenderTicket", mock.Anything, mock.Anything).Return(nil, errors.New("pdf engine broken"))

	require.NoError(t, conv.SubmitUserInfo(context.Background(), testUser))

	assert.Equal(t, models.StateUserForm, conv.State())
	assert.Empty(t, messagesOfType(conv, models.MessageTicket))
	assert.Equal(t, models.MessageText, lastMessage(t, conv).Type)
	d.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmitUserInfo_InvalidFormReprompts(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	bad := testUser
	bad.Phone = "12345"
	require.NoError(t, conv.SubmitUserInfo(context.Background(), bad))

	assert.Equal(t, models.StateUserForm, conv.State())
	assert.Equal(t, models.MessageUserForm, lastMessage(t, conv).Type)
}

func TestSubmit_FreeTextUserInfoAdapter(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	expectTicketPipeline(d)
	d.users.On("Save", mock.Anything, testUser).Return("user-1", nil)
	d.bookings.On("Save", mock.Anything, mock.Anything).Return("booking-1", nil)

	text := "Name: Asha, Age: 25, Gender: Female, Phone: 9876543210, Email: a@b.com"
	require.NoError(t, conv.Submit(context.Background(), text))

	assert.Equal(t, models.StateComplete, conv.State())
	require.Len(t, messagesOfType(conv, models.MessageTicket), 1)
}

func TestSubmit_FallbackOutsideFunnel(t *testing.T) {
	conv, d := newTestConversation(t)
	advanceToUserForm(t, conv, d)

	expectTicketPipeline(d)
	d.users.On("Save", mock.Anything, testUser).Return("user-1", nil)
	d.bookings.On("Save", mock.Anything, mock.Anything).Return("booking-1", nil)
	require.NoError(t, conv.SubmitUserInfo(context.Background(), testUser))
	require.Equal(t, models.StateComplete, conv.State())

	require.NoError(t, conv.Submit(context.Background(), "hello again"))

	assert.Equal(t, models.StateComplete, conv.State())
	assert.Equal(t, models.MessageText, lastMessage(t, conv).Type)
}
