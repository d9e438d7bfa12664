package models

import "time"

// Session is a scheduled yoga class.
//
// Teacher is optional. Users holds the participants in the order they joined;
// a user appears at most once.
type Session struct {
	ID          int64
	Name        string
	Date        Date
	Description string
	Teacher     *Teacher
	Users       []User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Equal reports whether s and other denote the same persisted session.
// Sessions without an ID are never equal.
func (s Session) Equal(other Session) bool {
	return s.ID != 0 && s.ID == other.ID
}

// HasParticipant reports whether the user with the given ID takes part in s.
func (s Session) HasParticipant(userID int64) bool {
	for _, u := range s.Users {
		if u.Equal(User{ID: userID}) {
			return true
		}
	}
	return false
}

// ParticipantIDs returns the IDs of all participants in join order.
func (s Session) ParticipantIDs() []int64 {
	ids := make([]int64, 0, len(s.Users))
	for _, u := range s.Users {
		ids = append(ids, u.ID)
	}
	return ids
}
