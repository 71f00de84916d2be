package session

import (
	"fmt"
	"time"

	"authportal/pkg/generator"
	"authportal/pkg/identity"
	"authportal/pkg/user"
)

type ManagerInterface interface {
	Create(acc *user.Account) (string, error)
	Validate(token string) (*identity.Identity, error)
	Destroy(token string) error
}

// Manager owns the session lifecycle: mint an opaque token on login, resolve
// it back to an identity on every gated request, drop it on logout.
type Manager struct {
	Repo Repository
}

func NewManager(repo Repository) *Manager {
	return &Manager{Repo: repo}
}

func (m *Manager) Create(acc *user.Account) (string, error) {
	token, err := generator.RandomToken(tokenLen)
	if err != nil {
		return "", fmt.Errorf("session token gen: %w", err)
	}

	now := time.Now().UTC()
	sess := &Session{
		Token:     token,
		UserID:    acc.ID,
		Username:  acc.Username,
		Email:     acc.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	if err := m.Repo.Create(sess); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

// Validate returns (nil, nil) for missing, unknown, and expired tokens; only
// a store failure is an error.
func (m *Manager) Validate(token string) (*identity.Identity, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := m.Repo.FindByToken(token)
	if err != nil {
		return nil, fmt.Errorf("validate session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	return &identity.Identity{ID: sess.UserID, Username: sess.Username, Email: sess.Email}, nil
}

func (m *Manager) Destroy(token string) error {
	if err := m.Repo.Delete(token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
