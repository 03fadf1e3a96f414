package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// UserID is a UUID-based identifier for User
type UserID string

// NewUserID generates a new UUID v4 UserID
func NewUserID() UserID {
	return UserID(uuid.New().String())
}

// User represents an organizational member managed by the dashboard
type User struct {
	ID         UserID    `firestore:"id" json:"id"`
	FirstName  string    `firestore:"first_name" json:"firstName"`
	LastName   string    `firestore:"last_name" json:"lastName"`
	Email      string    `firestore:"email" json:"email"`
	Phone      string    `firestore:"phone" json:"phone"`
	Role       string    `firestore:"role" json:"role"`
	Department string    `firestore:"department" json:"department"`
	JoinDate   string    `firestore:"join_date" json:"joinDate"` // YYYY-MM-DD
	CreatedAt  time.Time `firestore:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updated_at" json:"updatedAt"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Validate checks the user's form-level constraints
func (u *User) Validate() error {
	if u.FirstName == "" {
		return goerr.Wrap(ErrMissingName, "first name is required")
	}
	if !strings.Contains(u.Email, "@") {
		return goerr.Wrap(ErrInvalidEmail, "email must contain @", goerr.V("email", u.Email))
	}
	if u.JoinDate != "" {
		if _, err := time.Parse(DateLayout, u.JoinDate); err != nil {
			return goerr.Wrap(ErrInvalidDate, "join date must be YYYY-MM-DD", goerr.V("join_date", u.JoinDate))
		}
	}
	return nil
}
