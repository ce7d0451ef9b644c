package models

import "time"

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser MessageRole = "user"
	RoleBot  MessageRole = "bot"
)

// MessageType tells the client how to render a message and which structured
// action, if any, it expects next.
type MessageType string

const (
	MessageText              MessageType = "text"
	MessageCitySelection     MessageType = "citySelection"
	MessageCategorySelection MessageType = "categorySelection"
	MessageEventSelection    MessageType = "eventSelection"
	MessageEventInfo         MessageType = "eventInfo"
	MessageTicketQuantity    MessageType = "ticketQuantity"
	MessageUserForm          MessageType = "userForm"
	MessageTicket            MessageType = "ticket"
)

// ChatMessage is a single entry in a conversation's append-only history.
// Option payloads are populated whenever the type requires user action.
type ChatMessage struct {
	ID             string      `json:"id"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	Timestamp      time.Time   `json:"timestamp"`
	Type           MessageType `json:"type,omitempty"`
	Options        []string    `json:"options,omitempty"`
	Events         []Event     `json:"events,omitempty"`
	SelectedEvent  *Event      `json:"selectedEvent,omitempty"`
	TicketQuantity int         `json:"ticketQuantity,omitempty"`
	TotalAmount    string      `json:"totalAmount,omitempty"`
	TicketURL      string      `json:"ticketUrl,omitempty"`
}

// ConversationState gates which inputs are valid and which transition runs
// next. Transitions are one-directional except for same-state re-prompts on
// input that matches none of the offered options.
type ConversationState string

const (
	StateInitial           ConversationState = "initial"
	StateCitySelection     ConversationState = "citySelection"
	StateCategorySelection ConversationState = "categorySelection"
	StateEventSelection    ConversationState = "eventSelection"
	StateEventInfo         ConversationState = "eventInfo"
	StateTicketQuantity    ConversationState = "ticketQuantity"
	StateUserForm          ConversationState = "userForm"
	StateComplete          ConversationState = "complete"
)
