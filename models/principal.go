package models

// Principal is the authenticated identity attached to a request after its
// bearer token has been verified. It is built from a User lookup on every
// request and is never persisted.
type Principal struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Admin     bool

	// Password is the bcrypt hash of the user's password.
	Password string
}

// Owns reports whether the principal is the owner of the given user account.
// Ownership is decided by username (email), the same identity the token
// carries.
func (p Principal) Owns(user User) bool {
	return p.Username != "" && p.Username == user.Email
}
