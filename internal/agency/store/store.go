package store

import (
	"context"
	"errors"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement it. Sub-repositories keep concerns tidy and let the Tx-scoped
// store reuse the same surface.
type Store interface {
	Agents() Agents
	Invites() Invites
	Identities() Identities
	Sessions() Sessions
	PasswordResets() PasswordResets
	Properties() Properties
	Locations() Locations
	Inquiries() Inquiries

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn returns
	// an error and committing otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Agents interface {
	// GetAgentByID returns an agent profile by its identity id.
	GetAgentByID(ctx context.Context, id string) (domain.Agent, error)

	// GetAgentByEmail is used to reject invites for registered emails.
	GetAgentByEmail(ctx context.Context, email string) (domain.Agent, error)

	// ListAgents returns all agents ordered by created_at ascending, so
	// seniority is visible at a glance.
	ListAgents(ctx context.Context) ([]domain.Agent, error)

	// UpsertProfile inserts the profile row or, when it already exists for
	// the same id, refreshes name and phone. Manager and active flags are
	// never touched by the upsert.
	UpsertProfile(ctx context.Context, a domain.Agent) error

	// SetManager flips the manager flag.
	SetManager(ctx context.Context, agentID string, manager bool) error

	// SetActive flips the active flag and records/clears deactivated_at.
	SetActive(ctx context.Context, agentID string, active bool, deactivatedAt *time.Time) error

	// SetAvatarPath updates the stored avatar path; empty clears it to NULL.
	SetAvatarPath(ctx context.Context, agentID string, path string) error

	// AddSoldProperties applies an atomic increment to sold_properties.
	AddSoldProperties(ctx context.Context, agentID string, delta int64) error
}

type Invites interface {
	// CreateInvite writes a new invite (temp password stored as fingerprint).
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByEmailAndCode returns the unused invite matching both
	// values; the caller compares the temp password fingerprint.
	GetInviteByEmailAndCode(ctx context.Context, email, code string) (domain.Invite, error)

	// DeletePendingInvitesByEmail removes unused invites for an email.
	// Issuance uses it so re-inviting replaces rather than stacks.
	DeletePendingInvitesByEmail(ctx context.Context, email string) error

	// MarkInviteUsed sets used=1 and used_by (transaction-friendly).
	MarkInviteUsed(ctx context.Context, inviteID, usedByID string) error

	// DeleteExpiredInvites is housekeeping.
	DeleteExpiredInvites(ctx context.Context) error
}

type Identities interface {
	// CreateIdentity inserts a new identity; a duplicate email returns
	// ErrAlreadyExists.
	CreateIdentity(ctx context.Context, ident domain.Identity) error

	GetIdentityByID(ctx context.Context, id string) (domain.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)

	// UpdatePasswordHash sets a new argon2 hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, identityID, newHash string) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetActiveSessionByTokenHash returns a non-revoked, non-expired session.
	GetActiveSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// RevokeSession flips revoked=1.
	RevokeSession(ctx context.Context, sessionID string) error

	// RevokeAllIdentitySessions bulk-revokes, e.g. after a password reset.
	RevokeAllIdentitySessions(ctx context.Context, identityID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type PasswordResets interface {
	CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error

	// GetActivePasswordResetByTokenHash returns an unused, unexpired reset.
	GetActivePasswordResetByTokenHash(ctx context.Context, hash string) (domain.PasswordReset, error)

	// MarkPasswordResetUsed stamps used_at to enforce single use.
	MarkPasswordResetUsed(ctx context.Context, resetID string) error

	// DeleteExpiredPasswordResets is housekeeping.
	DeleteExpiredPasswordResets(ctx context.Context) error
}

// PropertyFilter narrows ListProperties. Zero values mean "no constraint".
type PropertyFilter struct {
	AgentID    string
	LocationID string
	Sold       *bool
	MinPrice   int64
	MaxPrice   int64
	Bedrooms   int
}

type Properties interface {
	CreateProperty(ctx context.Context, p domain.Property) error
	GetPropertyByID(ctx context.Context, id string) (domain.Property, error)

	// ListProperties applies the filter, newest first.
	ListProperties(ctx context.Context, f PropertyFilter) ([]domain.Property, error)

	// UpdateProperty refreshes the mutable listing fields.
	UpdateProperty(ctx context.Context, p domain.Property) error

	DeleteProperty(ctx context.Context, id string) error

	// MarkPropertySold flips sold=1 only when currently unsold and reports
	// whether this call made the transition. Callers use the report to
	// apply the seller's counter increment exactly once.
	MarkPropertySold(ctx context.Context, id string) (bool, error)

	// SetImagePaths replaces the stored image path list.
	SetImagePaths(ctx context.Context, id string, paths []string) error
}

type Locations interface {
	CreateLocation(ctx context.Context, l domain.Location) error
	GetLocationByID(ctx context.Context, id string) (domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	// AddNumProperties applies an atomic increment/decrement to
	// num_properties, clamped at zero.
	AddNumProperties(ctx context.Context, locationID string, delta int64) error
}

type Inquiries interface {
	CreateInquiry(ctx context.Context, inq domain.Inquiry) error

	// GetInquiryByClientRef serves idempotent re-submits.
	GetInquiryByClientRef(ctx context.Context, clientRef string) (domain.Inquiry, error)

	// ListInquiriesForAgent returns inquiries against the agent's
	// properties, newest first.
	ListInquiriesForAgent(ctx context.Context, agentID string) ([]domain.Inquiry, error)
}
