package models

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "Bearer"

// JWTResponse is returned by a successful login. It carries the signed
// bearer token together with the identity it was issued for, so the client
// does not have to decode the token.
type JWTResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// MessageResponse carries a human-readable confirmation or rejection.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
//
// Message is always generic for server-side failures; internal details are
// logged, never returned.
type ErrorResponse struct {
	Path    string `json:"path"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
