package models

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UserInfo is the attendee detail set collected before a booking is made.
type UserInfo struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// Validate checks the fields against the booking form rules. It reports the
// first violation found.
func (u UserInfo) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if u.Age < 5 || u.Age > 120 {
		return fmt.Errorf("age must be between 5 and 120")
	}
	if !phonePattern.MatchString(u.Phone) {
		return fmt.Errorf("phone must be exactly 10 digits")
	}
	if !emailPattern.MatchString(u.Email) {
		return fmt.Errorf("email %q is not valid", u.Email)
	}
	return nil
}
