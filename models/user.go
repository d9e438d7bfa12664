package models

import "time"

// User represents a studio member account used for authentication and
// for participation in sessions.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is assigned by the database at creation time.
	ID int64 `json:"id"`

	// Email is the unique user login identifier.
	Email string `json:"email"`

	// FirstName and LastName are the display name of the user.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Password stores the bcrypt hash of the user's password, never plaintext.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Admin marks studio administrators.
	Admin bool `json:"admin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Equal reports whether u and other denote the same persisted user.
// Users without an ID are never equal to anything, including each other.
func (u User) Equal(other User) bool {
	return u.ID != 0 && u.ID == other.ID
}
