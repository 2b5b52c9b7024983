package domain

import "time"

// Identity is an authentication account. Exactly one Agent row may exist
// per identity, keyed by the same id.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a server-tracked login. The opaque session token is stored as
// a fingerprint; sign-out revokes the row.
type Session struct {
	ID         string
	IdentityID string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PasswordReset is a time-boxed, single-use reset token.
type PasswordReset struct {
	ID         string
	IdentityID string
	TokenHash  string
	ExpiresAt  time.Time
	UsedAt     *time.Time
	CreatedAt  time.Time
}
