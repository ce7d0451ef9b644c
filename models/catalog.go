package models

// City is a bookable city. The set is static for the lifetime of a session.
type City struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// EventCategory groups events by kind.
type EventCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Event is a bookable event in a given city and category. Price is a
// formatted currency string ("₹1500") as rendered to the user.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	City        string `json:"city"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
}
