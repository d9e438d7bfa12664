package service

// SessionServiceWrapper defines middleware composition for SessionService.
// Implementations wrap an existing SessionService to add behavior such as
// input validation.
type SessionServiceWrapper interface {
	Wrap(SessionService) SessionService // returns a decorated SessionService applying additional behavior
}
