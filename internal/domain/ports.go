package domain

import (
	"time"

	"github.com/google/uuid"
)

// KV is the durable key-value medium collections are persisted to.
// Implementations store one serialized collection per key.
type KV interface {
	// Get returns the stored value for key, and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any prior value.
	Set(key, value string) error

	// Available reports whether the medium can be used at all. When false,
	// Get and Set are expected to fail and callers should degrade to no-ops.
	Available() bool
}

// Notifier receives non-fatal diagnostics meant for the user.
type Notifier interface {
	// Publish surfaces a human-readable failure message. A new message
	// replaces any still-visible previous one.
	Publish(text string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator produces globally-unique opaque task identifiers.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}

// UUIDGenerator implements IDGenerator using random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new UUIDv4 string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
