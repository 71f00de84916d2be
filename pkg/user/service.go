package user

import (
	"fmt"

	"authportal/pkg/generator"
	"authportal/pkg/hasher"
)

const lenID = 24

type ServiceInterface interface {
	Register(username, email, password string) (*Account, error)
	Login(email, password string) (*Account, error)
}

type Service struct {
	Repo   Repository
	Hasher hasher.Hasher
}

func NewService(repo Repository, h hasher.Hasher) *Service {
	return &Service{Repo: repo, Hasher: h}
}

// Register hashes the password and inserts exactly one account row. Uniqueness
// is enforced by the store constraint, so two concurrent registrations for the
// same email serialize there: one succeeds, the other gets ErrEmailTaken.
// No session is created; login is a separate step.
func (s *Service) Register(username, email, password string) (*Account, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hashedPassword, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	accountID, err := generator.RandomToken(lenID)
	if err != nil {
		return nil, fmt.Errorf("account id gen: %w", err)
	}

	acc := &Account{
		ID:       accountID,
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.Repo.Create(acc); err != nil {
		return nil, err
	}

	return &Account{ID: acc.ID, Username: acc.Username, Email: acc.Email}, nil
}

// Login resolves the account and verifies the password. A lookup miss and a
// hash mismatch take the same path and return the same error, so the response
// never reveals whether the email is registered.
func (s *Service) Login(email, password string) (*Account, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	acc, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	if acc == nil || !s.Hasher.Verify(password, acc.Password) {
		return nil, ErrInvalidCredentials
	}

	return &Account{ID: acc.ID, Username: acc.Username, Email: acc.Email}, nil
}
