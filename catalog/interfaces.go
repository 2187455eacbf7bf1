package catalog

import (
	"context"

	"github.com/guddy2005/real-estate-app/core"
)

// DemoUserID is the single registered profile supported in the current
// scope. The profile store abstraction makes multi-user support a drop-in
// extension rather than a rewrite.
const DemoUserID = "demo_user"

// Store provides read-only access to the property catalog.
// Implementations must be safe for concurrent use; returned values must
// not be mutated by callers.
type Store interface {
	// Regions returns every region with its properties, in a stable order.
	Regions(ctx context.Context) ([]core.Region, error)

	// Region returns a single region by its key.
	// Returns ErrNotFound if the region doesn't exist.
	Region(ctx context.Context, key string) (*core.Region, error)

	// Close releases resources held by the store.
	Close() error
}

// ProfileStore provides read-only access to stored user profiles.
type ProfileStore interface {
	// Profile returns the profile for the given user id.
	// Returns ErrNotFound if no such profile exists.
	Profile(ctx context.Context, id string) (*core.UserProfile, error)

	// Close releases resources held by the store.
	Close() error
}
