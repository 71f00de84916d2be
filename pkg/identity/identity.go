package identity

import "context"

type contextKey string

const ContextKey contextKey = "identity"

// Identity holds the public account fields the access gate resolves from a
// session and attaches to the request context. Never carries the password hash.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func FromContext(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(ContextKey).(*Identity)
	if !ok || ident == nil || ident.ID == "" {
		return nil, false
	}
	return ident, true
}
