package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	bookingRepo "infibot/database/repository/booking"
	userRepo "infibot/database/repository/user"
	"infibot/models"
	"infibot/services/catalog"
	ai "infibot/services/intelligence"
	"infibot/services/storage"
	"infibot/services/ticket"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps bundles the collaborators every conversation calls at its transition
// points. All of them are injected; the controller never reaches for
// ambient singletons.
type Deps struct {
	Catalog  catalog.CatalogService
	Writer   ai.ChatWriter
	Renderer ticket.Renderer
	Assets   storage.AssetStore
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// Conversation owns the state of one booking funnel: the current state, the
// append-only message history, the session's reference caches, and the
// running selections. All fields are mutated only by the conversation's own
// operations, one at a time.
type Conversation struct {
	ID string

	deps Deps

	mu               sync.Mutex
	state            models.ConversationState
	messages         []models.ChatMessage
	cities           []models.City
	categories       []models.EventCategory
	events           []models.Event
	selectedCity     string
	selectedCategory string
	selectedEvent    *models.Event
	quantity         int
	lastActive       time.Time
}

// New creates an idle conversation. Call Start to fetch reference data and
// emit the opening prompts.
func New(deps Deps) *Conversation {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Conversation{
		ID:         uuid.New().String(),
		deps:       deps,
		state:      models.StateInitial,
		quantity:   1,
		lastActive: time.Now(),
	}
}

// begin claims the conversation for one operation. Concurrent submissions
// are rejected, not queued.
func (c *Conversation) begin() error {
	if !c.mu.TryLock() {
		return ErrBusy
	}
	c.lastActive = time.Now()
	return nil
}

// Start fetches the city and category reference sets and emits the greeting
// and the first city prompt. Either fetch failing is fatal to the session.
func (c *Conversation) Start(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.mu.Unlock()

	cities, err := c.deps.Catalog.ListCities(ctx)
	if err != nil {
		return &InitError{Stage: "cities", Err: err}
	}
	categories, err := c.deps.Catalog.ListCategories(ctx)
	if err != nil {
		return &InitError{Stage: "categories", Err: err}
	}
	c.cities = cities
	c.categories = categories

	c.addBot(models.ChatMessage{
		Content: c.deps.Writer.WelcomeMessage(ctx),
		Type:    models.MessageText,
	})
	c.addBot(models.ChatMessage{
		Content: "Which city would you like to explore?",
		Type:    models.MessageCitySelection,
		Options: c.cityNames(),
	})
	c.state = models.StateCitySelection
	return nil
}

// Submit feeds one free-text user input through the current state's
// transition. Unrecognized input re-prompts in place; it is conversational
// flow, not an error.
func (c *Conversation) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.mu.Unlock()

	c.addUser(text)

	switch c.state {
	case models.StateCitySelection:
		c.handleCity(ctx, text)
	case models.StateCategorySelection:
		c.handleCategory(ctx, text)
	case models.StateEventSelection:
		c.handleEvent(ctx, text)
	case models.StateTicketQuantity:
		c.handleQuantityText(ctx, text)
	case models.StateUserForm:
		if info, ok := parseUserInfo(text); ok {
			c.completeBooking(ctx, info)
		} else {
			c.addBot(models.ChatMessage{
				Content:        "Please provide your details in the format: Name: Your Name, Age: Your Age, Gender: Your Gender, Phone: Your Phone, Email: Your Email (or use the form below).",
				Type:           models.MessageUserForm,
				SelectedEvent:  c.selectedEvent,
				TicketQuantity: c.quantity,
				TotalAmount:    c.totalAmount(),
			})
		}
	default:
		c.addBot(models.ChatMessage{
			Content: c.deps.Writer.FallbackReply(ctx),
			Type:    models.MessageText,
		})
	}
	return nil
}

// SelectCity, SelectCategory and SelectEvent funnel structured UI clicks
// into the same matching path as typed input.
func (c *Conversation) SelectCity(ctx context.Context, name string) error {
	return c.Submit(ctx, name)
}

func (c *Conversation) SelectCategory(ctx context.Context, name string) error {
	return c.Submit(ctx, name)
}

func (c *Conversation) SelectEvent(ctx context.Context, name string) error {
	return c.Submit(ctx, name)
}

// BookEvent moves a chosen event into the quantity step. An id that no
// longer resolves against the session's cached listing produces a non-fatal
// notice and leaves the state alone.
func (c *Conversation) BookEvent(ctx context.Context, eventID string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.mu.Unlock()

	ev := c.findEventByID(eventID)
	if ev == nil {
		c.addBot(models.ChatMessage{
			Content: "I couldn't find that event anymore. Please pick one from the list above.",
			Type:    models.MessageText,
		})
		return nil
	}

	c.selectedEvent = ev
	c.addUser(fmt.Sprintf("Book %s", ev.Name))
	c.addBot(models.ChatMessage{
		Content:       fmt.Sprintf("How many tickets would you like for %s? You can book 1 to 10 tickets.", ev.Name),
		Type:          models.MessageTicketQuantity,
		Options:       quantityOptions(),
		SelectedEvent: ev,
	})
	c.state = models.StateTicketQuantity
	return nil
}

// SelectTicketQuantity is the structured quantity pick (stepper control).
// It clamps the quantity and moves the conversation to the user form.
func (c *Conversation) SelectTicketQuantity(ctx context.Context, eventID string, quantity int) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.mu.Unlock()

	if ev := c.findEventByID(eventID); ev != nil {
		c.selectedEvent = ev
	}
	if c.selectedEvent == nil {
		c.addBot(models.ChatMessage{
			Content: "I couldn't find that event anymore. Please pick one from the list above.",
			Type:    models.MessageText,
		})
		return nil
	}

	c.addUser(fmt.Sprintf("%d tickets", quantity))
	c.toUserForm(ctx, clampQuantity(quantity))
	return nil
}

// SubmitUserInfo runs the terminal booking transition with an
// already-structured form payload.
func (c *Conversation) SubmitUserInfo(ctx context.Context, info models.UserInfo) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.mu.Unlock()

	c.addUser(fmt.Sprintf("Name: %s, Age: %d, Gender: %s, Phone: %s, Email: %s",
		info.Name, info.Age, info.Gender, info.Phone, info.Email))
	c.completeBooking(ctx, info)
	return nil
}

// --- state handlers -----------------------------------------------------

func (c *Conversation) handleCity(ctx context.Context, input string) {
	city := c.findCity(input)
	if city == nil {
		c.addBot(models.ChatMessage{
			Content: fmt.Sprintf("I couldn't find %s in our list. Please select one of these cities:", input),
			Type:    models.MessageCitySelection,
			Options: c.cityNames(),
		})
		return
	}

	c.selectedCity = city.Name
	c.addBot(models.ChatMessage{
		Content: c.deps.Writer.CityResponse(ctx, city.Name),
		Type:    models.MessageCategorySelection,
		Options: c.categoryNames(),
	})
	c.state = models.StateCategorySelection
}

func (c *Conversation) handleCategory(ctx context.Context, input string) {
	category := c.findCategory(input)
	if category == nil {
		c.addBot(models.ChatMessage{
			Content: fmt.Sprintf("I couldn't find %s in our list. Please select one of these categories:", input),
			Type:    models.MessageCategorySelection,
			Options: c.categoryNames(),
		})
		return
	}

	events, err := c.deps.Catalog.ListEvents(ctx, c.selectedCity, category.Name)
	if err != nil {
		c.deps.Logger.Error("failed to list events",
			zap.String("city", c.selectedCity),
			zap.String("category", category.Name),
			zap.Error(err))
		c.addBot(models.ChatMessage{
			Content: "I couldn't load events right now. Please pick a category again in a moment:",
			Type:    models.MessageCategorySelection,
			Options: c.categoryNames(),
		})
		return
	}

	c.selectedCategory = category.Name
	c.events = events
	c.addBot(models.ChatMessage{
		Content: c.deps.Writer.CategoryResponse(ctx, c.selectedCity, category.Name),
		Type:    models.MessageEventSelection,
		Events:  events,
	})
	c.state = models.StateEventSelection
}

func (c *Conversation) handleEvent(ctx context.Context, input string) {
	ev := c.findEvent(input)
	if ev == nil {
		c.addBot(models.ChatMessage{
			Content: fmt.Sprintf("I couldn't find %q in our list. Please select one of these events:", input),
			Type:    models.MessageEventSelection,
			Events:  c.events,
		})
		return
	}

	c.selectedEvent = ev
	c.addBot(models.ChatMessage{
		Content:       c.deps.Writer.EventResponse(ctx, ev.Name),
		Type:          models.MessageEventInfo,
		SelectedEvent: ev,
	})
	c.state = models.StateEventInfo
}

func (c *Conversation) handleQuantityText(ctx context.Context, input string) {
	n, ok := parseQuantity(input)
	if !ok {
		// No number in the reply; keep the last known quantity.
		n = c.quantity
	}
	if n < 1 || n > 10 {
		c.addBot(models.ChatMessage{
			Content:       fmt.Sprintf("Sorry, %d is outside the bookable range. Please choose between 1 and 10 tickets.", n),
			Type:          models.MessageTicketQuantity,
			Options:       quantityOptions(),
			SelectedEvent: c.selectedEvent,
		})
		return
	}
	c.toUserForm(ctx, n)
}

// toUserForm records the chosen quantity, computes the total and emits the
// user-info form prompt.
func (c *Conversation) toUserForm(ctx context.Context, quantity int) {
	c.quantity = quantity
	c.addBot(models.ChatMessage{
		Content:        c.deps.Writer.UserInfoPrompt(ctx, c.selectedEvent.Name),
		Type:           models.MessageUserForm,
		SelectedEvent:  c.selectedEvent,
		TicketQuantity: quantity,
		TotalAmount:    c.totalAmount(),
	})
	c.state = models.StateUserForm
}

// completeBooking is the terminal transition: persist the attendee, render
// and store the ticket, persist the booking, confirm. Persistence failures
// degrade to a synthetic booking id so the user still gets a ticket; only a
// rendering or storage failure aborts with an apology.
func (c *Conversation) completeBooking(ctx context.Context, info models.UserInfo) {
	if c.selectedEvent == nil {
		c.addBot(models.ChatMessage{
			Content: "No event is selected yet. Please pick an event first.",
			Type:    models.MessageText,
		})
		return
	}
	if err := info.Validate(); err != nil {
		c.addBot(models.ChatMessage{
			Content:        fmt.Sprintf("That doesn't look right: %v. Please check the form and try again.", err),
			Type:           models.MessageUserForm,
			SelectedEvent:  c.selectedEvent,
			TicketQuantity: c.quantity,
			TotalAmount:    c.totalAmount(),
		})
		return
	}

	ev := *c.selectedEvent

	userID, err := c.deps.Users.Save(ctx, info)
	if err != nil {
		// Fallback path: a persistence outage must not cost the user
		// their ticket.
		userID = "guest-" + uuid.New().String()
		c.deps.Logger.Warn("failed to save user, continuing with synthetic id",
			zap.String("userId", userID), zap.Error(err))
	}

	bookingID := fmt.Sprintf("%s-%s-%d", ev.ID, userID, time.Now().UnixNano())
	qrPayload := c.deps.Renderer.QRPayload(bookingID)

	qrPNG, err := c.deps.Renderer.GenerateQR(qrPayload)
	if err != nil {
		c.deps.Logger.Error("failed to generate QR code", zap.Error(err))
		c.apologize()
		return
	}

	pdf, err := c.deps.Renderer.RenderTicket(ticket.TicketDetails{
		EventName:   ev.Name,
		UserName:    info.Name,
		EventDate:   ev.Date,
		Quantity:    c.quantity,
		TotalAmount: c.totalAmount(),
	}, qrPNG)
	if err != nil {
		c.deps.Logger.Error("failed to render ticket", zap.Error(err))
		c.apologize()
		return
	}

	ref, err := c.deps.Assets.Put(ctx, "ticket-"+bookingID+".pdf", "application/pdf", pdf)
	if err != nil {
		c.deps.Logger.Error("failed to store ticket asset", zap.Error(err))
		c.apologize()
		return
	}

	record := models.BookingRecord{
		ID:          bookingID,
		EventID:     ev.ID,
		EventName:   ev.Name,
		UserID:      userID,
		Quantity:    c.quantity,
		TotalAmount: c.totalAmount(),
		QRPayload:   qrPayload,
		TicketRef:   ref,
	}
	if _, err := c.deps.Bookings.Save(ctx, record); err != nil {
		// Non-fatal: the ticket is already rendered and delivered.
		c.deps.Logger.Warn("failed to persist booking record",
			zap.String("bookingId", bookingID), zap.Error(err))
	}

	c.addBot(models.ChatMessage{
		Content:        c.deps.Writer.BookingConfirmation(ctx, ev.Name, info.Name),
		Type:           models.MessageTicket,
		SelectedEvent:  &ev,
		TicketQuantity: c.quantity,
		TotalAmount:    c.totalAmount(),
		TicketURL:      ref,
	})
	c.addBot(models.ChatMessage{
		Content: "Thank you for booking with InfiBot! Have a great time at the event.",
		Type:    models.MessageText,
	})
	c.state = models.StateComplete
}

func (c *Conversation) apologize() {
	c.addBot(models.ChatMessage{
		Content: "I'm sorry, I couldn't generate your ticket right now. Your booking has not been completed; please try again.",
		Type:    models.MessageText,
	})
}

// --- matching and lookups ----------------------------------------------

func (c *Conversation) findCity(input string) *models.City {
	for i := range c.cities {
		if strings.EqualFold(c.cities[i].Name, input) {
			return &c.cities[i]
		}
	}
	return nil
}

func (c *Conversation) findCategory(input string) *models.EventCategory {
	for i := range c.categories {
		if strings.EqualFold(c.categories[i].Name, input) {
			return &c.categories[i]
		}
	}
	return nil
}

func (c *Conversation) findEvent(input string) *models.Event {
	for i := range c.events {
		if strings.EqualFold(c.events[i].Name, input) || strings.EqualFold(c.events[i].ID, input) {
			return &c.events[i]
		}
	}
	return nil
}

func (c *Conversation) findEventByID(id string) *models.Event {
	for i := range c.events {
		if c.events[i].ID == id {
			return &c.events[i]
		}
	}
	return nil
}

func (c *Conversation) cityNames() []string {
	names := make([]string, len(c.cities))
	for i, city := range c.cities {
		names[i] = city.Name
	}
	return names
}

func (c *Conversation) categoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

func quantityOptions() []string {
	opts := make([]string, 10)
	for i := range opts {
		opts[i] = fmt.Sprintf("%d", i+1)
	}
	return opts
}

func (c *Conversation) totalAmount() string {
	if c.selectedEvent == nil {
		return "₹0"
	}
	return fmt.Sprintf("₹%d", unitPrice(c.selectedEvent.Price)*c.quantity)
}
