package session

import "time"

const (
	// TTL is how long a session stays valid after creation. The store
	// enforces it on read: expired rows are invisible to FindByToken.
	TTL = 24 * time.Hour

	// CookieName is the cookie carrying the opaque session token.
	CookieName = "session_token"

	tokenLen = 32
)

// Session binds an opaque token to the public fields of the account that
// logged in. The client only ever holds the token.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Repository interface {
	Create(sess *Session) error
	// FindByToken returns (nil, nil) for absent or expired tokens;
	// absence is a normal outcome, not an error.
	FindByToken(token string) (*Session, error)
	// Delete removes the session row. Deleting an unknown token is a no-op.
	Delete(token string) error
}
