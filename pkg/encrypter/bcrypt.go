package encrypter

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Encrypter hashes and checks passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. A cost outside bcrypt's range uses bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &implEncrypter{cost: cost}
}

func (e *implEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("encrypter.HashPassword: %w", err)
	}
	return string(hash), nil
}

func (e *implEncrypter) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
