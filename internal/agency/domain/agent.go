package domain

import "time"

// Agent is a platform user who lists and manages properties. The ID equals
// the authentication identity's id; the identity owns credentials, this row
// owns profile data.
type Agent struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	AvatarPath     string // blob store path, empty when no avatar
	Manager        bool
	Active         bool
	SoldProperties int64
	CreatedAt      time.Time // immutable; the sole seniority ordering key
	DeactivatedAt  *time.Time
	UpdatedAt      time.Time
}
