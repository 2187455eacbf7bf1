package jsonfile

import (
	"context"
	"fmt"

	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/core"
)

// Store is an immutable in-memory catalog snapshot. It is the default
// backend: the catalog is loaded once at startup and shared by every
// request without locking.
type Store struct {
	regions []core.Region
	byKey   map[string]int
}

var _ catalog.Store = (*Store)(nil)

// NewStore creates a Store over an already-validated region slice.
func NewStore(regions []core.Region) *Store {
	byKey := make(map[string]int, len(regions))
	for i := range regions {
		byKey[regions[i].Key] = i
	}
	return &Store{regions: regions, byKey: byKey}
}

// Open loads and validates a catalog JSON file into a Store.
func Open(path string) (*Store, error) {
	regions, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return NewStore(regions), nil
}

// Regions returns every region in key order. Callers must not mutate the
// returned slice.
func (s *Store) Regions(ctx context.Context) ([]core.Region, error) {
	return s.regions, nil
}

// Region returns a single region by key.
func (s *Store) Region(ctx context.Context, key string) (*core.Region, error) {
	i, ok := s.byKey[key]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", key, catalog.ErrNotFound)
	}
	return &s.regions[i], nil
}

// Close is a no-op for the in-memory snapshot.
func (s *Store) Close() error {
	return nil
}

// ProfileStore is an immutable in-memory profile snapshot.
type ProfileStore struct {
	profiles map[string]*core.UserProfile
}

var _ catalog.ProfileStore = (*ProfileStore)(nil)

// NewProfileStore creates a ProfileStore over already-validated profiles.
func NewProfileStore(profiles map[string]*core.UserProfile) *ProfileStore {
	return &ProfileStore{profiles: profiles}
}

// OpenProfiles loads and validates a user JSON file into a ProfileStore.
func OpenProfiles(path string) (*ProfileStore, error) {
	profiles, err := LoadUsers(path)
	if err != nil {
		return nil, err
	}
	return NewProfileStore(profiles), nil
}

// Profile returns the profile for the given user id.
func (s *ProfileStore) Profile(ctx context.Context, id string) (*core.UserProfile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", id, catalog.ErrNotFound)
	}
	return profile, nil
}

// Close is a no-op for the in-memory snapshot.
func (s *ProfileStore) Close() error {
	return nil
}
