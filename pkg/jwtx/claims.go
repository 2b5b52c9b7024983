package jwtx

import (
	"errors"
	"time"
)

var (
	// ErrExpired reports a token past its expiry.
	ErrExpired = errors.New("jwtx: token expired")
	// ErrNotYetValid reports a token used before its nbf/iat window.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	// ErrInvalidToken reports a token that failed parsing or signature checks.
	ErrInvalidToken = errors.New("jwtx: invalid token")
	// ErrWrongIssuer reports a token minted by a different issuer.
	ErrWrongIssuer = errors.New("jwtx: wrong issuer")
)

// Claims is the decoded view of an access token. Scope strings are
// space-delimited on the wire ("scope" claim) and split here.
type Claims struct {
	Subject   string
	Email     string
	SessionID string
	Scopes    []string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ValidateExpiry ensures the token is inside its validity window.
func (c *Claims) ValidateExpiry() error {
	now := time.Now()
	if !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt) {
		return ErrExpired
	}
	if !c.IssuedAt.IsZero() && now.Add(time.Minute).Before(c.IssuedAt) {
		return ErrNotYetValid
	}
	return nil
}

// HasScope reports whether the claims carry the given scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
