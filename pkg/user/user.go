package user

import "errors"

var (
	// ErrMissingFields signals incomplete input; the caller can resubmit.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmailTaken signals the store's uniqueness constraint fired.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so callers cannot tell registered identities from unregistered ones.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Repository interface {
	Create(acc *Account) error
	// FindByEmail returns (nil, nil) when no account exists for the email.
	FindByEmail(email string) (*Account, error)
}
