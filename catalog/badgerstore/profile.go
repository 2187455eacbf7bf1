package badgerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/core"
)

// ProfileStore implements catalog.ProfileStore on top of BadgerDB.
type ProfileStore struct {
	backend *Backend
}

var _ catalog.ProfileStore = (*ProfileStore)(nil)

// NewProfileStore creates a new ProfileStore over the backend.
func NewProfileStore(backend *Backend) (*ProfileStore, error) {
	return &ProfileStore{backend: backend}, nil
}

// Close releases resources. ProfileStore has no resources of its own.
func (s *ProfileStore) Close() error {
	return nil
}

// PutProfile writes a user profile record.
func (s *ProfileStore) PutProfile(ctx context.Context, id string, profile *core.UserProfile) error {
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeProfileKey(id), catalog.MarshalProfile(profile)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Profile returns the profile for the given user id.
func (s *ProfileStore) Profile(ctx context.Context, id string) (*core.UserProfile, error) {
	var profile *core.UserProfile
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("profile %q: %w", id, catalog.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			profile, err = catalog.UnmarshalProfile(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
