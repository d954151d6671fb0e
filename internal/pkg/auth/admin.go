package auth

import (
	"crypto/subtle"
	"time"
)

// AdminAuthenticator checks the single admin account configured by
// ADMIN_USERNAME and ADMIN_PASSWORD_HASH and hands out tokens for it.
type AdminAuthenticator struct {
	username     string
	passwordHash string
	encoder      PasswordEncoder
	tokens       *TokenService
}

func NewAdminAuthenticator(
	username, passwordHash string,
	encoder PasswordEncoder,
	tokens *TokenService,
) *AdminAuthenticator {
	return &AdminAuthenticator{
		username:     username,
		passwordHash: passwordHash,
		encoder:      encoder,
		tokens:       tokens,
	}
}

// Enabled is false when no password hash is configured; writes are then open.
func (a *AdminAuthenticator) Enabled() bool {
	return a != nil && a.passwordHash != ""
}

// Login returns a signed admin token for valid credentials.
func (a *AdminAuthenticator) Login(username, password string) (string, time.Time, error) {
	if !a.Enabled() {
		return "", time.Time{}, ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := a.encoder.Matches(password, a.passwordHash)
	if !userOK || !passOK {
		return "", time.Time{}, ErrInvalidCredentials
	}

	return a.tokens.Issue(a.username, RoleAdmin)
}

// Authorize validates an admin token.
func (a *AdminAuthenticator) Authorize(token string) (Claims, error) {
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Role != RoleAdmin || claims.Subject != a.username {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
