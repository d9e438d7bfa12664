package models

import "time"

// Teacher is a yoga teacher who can own sessions.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Teacher model.
func (t Teacher) TableName() string {
	return "teachers"
}

// Equal reports whether t and other denote the same persisted teacher.
// Teachers without an ID are never equal.
func (t Teacher) Equal(other Teacher) bool {
	return t.ID != 0 && t.ID == other.ID
}
