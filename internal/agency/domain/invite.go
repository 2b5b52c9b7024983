package domain

import "time"

// Invite is a pending agent invitation: a 6-digit code plus a temporary
// password shared out-of-band. Only the temp password's fingerprint is
// stored; the code is kept in clear since it is low-entropy display data
// and redemption requires the full triple anyway.
type Invite struct {
	ID               string
	Email            string
	TempPasswordHash string
	Code             string
	CreatedBy        string
	ExpiresAt        time.Time
	Used             bool
	UsedBy           string // empty until redeemed
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
