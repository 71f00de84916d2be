package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is the only component allowed to compare a plaintext password with a
// stored hash. Hashes are salted: two calls with the same plaintext produce
// different values.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type Bcrypt struct{}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password error: %w", err)
	}
	return string(hashed), nil
}

func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
