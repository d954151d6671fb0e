// Package auth guards the administrative endpoints: bcrypt password hashes
// for the admin account and HMAC-signed JWT access tokens.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// PasswordEncoder hashes and verifies passwords with bcrypt.
type PasswordEncoder struct {
	cost int
}

// NewPasswordEncoder uses bcrypt.DefaultCost when cost is out of range.
func NewPasswordEncoder(cost int) PasswordEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordEncoder{cost: cost}
}

func (e PasswordEncoder) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether password hashes to hash. A malformed hash never matches.
func (e PasswordEncoder) Matches(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
