package domain

import "time"

// Property is a listing managed by an agent.
type Property struct {
	ID          string
	AgentID     string
	LocationID  string
	Title       string
	Description string
	PriceCents  int64
	Bedrooms    int
	Bathrooms   int
	Sold        bool
	ImagePaths  []string // blob store paths, parsed from space-delimited storage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location is a browsable area. NumProperties is maintained by atomic
// storage-level increments, never read-then-write.
type Location struct {
	ID            string
	Name          string
	Region        string
	NumProperties int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Inquiry is a public buyer message about a property. ClientRef is an
// optional caller-supplied idempotency key used to dedupe double submits.
type Inquiry struct {
	ID         string
	PropertyID string
	Name       string
	Email      string
	Phone      string
	Message    string
	ClientRef  string
	CreatedAt  time.Time
}
