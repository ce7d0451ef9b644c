package conversation

import (
	"time"

	"infibot/models"

	"github.com/google/uuid"
)

// addUser appends a user message to the history.
func (c *Conversation) addUser(content string) {
	c.messages = append(c.messages, models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
		Type:      models.MessageText,
	})
}

// addBot stamps identity and timestamp onto a bot message and appends it.
// History is append-only; messages are never mutated after this.
func (c *Conversation) addBot(msg models.ChatMessage) {
	msg.ID = uuid.New().String()
	msg.Role = models.RoleBot
	msg.Timestamp = time.Now()
	if msg.Type == "" {
		msg.Type = models.MessageText
	}
	c.messages = append(c.messages, msg)
}

// State returns the current conversation state.
func (c *Conversation) State() models.ConversationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns a copy of the message history.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// SelectedCity returns the canonical name of the matched city, or "".
func (c *Conversation) SelectedCity() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedCity
}

// SelectedCategory returns the canonical name of the matched category, or "".
func (c *Conversation) SelectedCategory() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedCategory
}

// SelectedEvent returns a copy of the chosen event, or nil.
func (c *Conversation) SelectedEvent() *models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedEvent == nil {
		return nil
	}
	ev := *c.selectedEvent
	return &ev
}

// Events returns the session's cached event listing.
func (c *Conversation) Events() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Quantity returns the last chosen ticket quantity.
func (c *Conversation) Quantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantity
}

// LastActive reports when the conversation last handled an operation.
func (c *Conversation) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}
