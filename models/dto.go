package models

import "time"

// SessionDTO is the wire representation of a [Session].
//
// The teacher and the participants are referenced by ID only.
type SessionDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=50"`
	Date        Date      `json:"date" validate:"required"`
	TeacherID   *int64    `json:"teacher_id" validate:"required"`
	Description string    `json:"description" validate:"required,max=2500"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeacherDTO is the wire representation of a [Teacher].
type TeacherDTO struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserDTO is the wire representation of a [User]. It never carries the
// password hash.
type UserDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
