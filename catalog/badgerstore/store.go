package badgerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/core"
)

// Store implements catalog.Store on top of BadgerDB. Regions and
// properties are stored as separate records; an ordered key list keeps
// catalog iteration deterministic across loads.
type Store struct {
	backend *Backend
}

var _ catalog.Store = (*Store)(nil)

// NewStore creates a new Store over the backend.
func NewStore(backend *Backend) (*Store, error) {
	return &Store{backend: backend}, nil
}

// Close releases resources. Store has no resources of its own; the
// backend owns the database handle.
func (s *Store) Close() error {
	return nil
}

// PutRegion writes a region record and all of its property records.
// Property IDs are derived from the property name, so rewriting the
// same region is idempotent.
func (s *Store) PutRegion(ctx context.Context, region *core.Region) error {
	if err := core.ValidateRegion(region); err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		record := catalog.RegionRecord{
			Key:         region.Key,
			Name:        region.Name,
			PropertyIDs: make([]core.ID, 0, len(region.Properties)),
		}

		for i := range region.Properties {
			prop := &region.Properties[i]
			id := core.IDFromName(prop.Name)
			record.PropertyIDs = append(record.PropertyIDs, id)

			if err := tx.Set(makePropertyKey(id), catalog.MarshalProperty(prop)); err != nil {
				return err
			}
		}

		if err := tx.Set(makeRegionKey(region.Key), catalog.MarshalRegionRecord(&record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// SetRegionKeys stores the ordered region key list. Regions iterates in
// exactly this order.
func (s *Store) SetRegionKeys(ctx context.Context, keys []string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(regionKeysKey), catalog.MarshalStrings(keys)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// RegionKeys returns the stored region key order. An empty database
// yields an empty list.
func (s *Store) RegionKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(regionKeysKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			keys, err = catalog.UnmarshalStrings(val)
			return err
		})
	}, false)
	return keys, err
}

// Regions returns every region in the stored key order.
func (s *Store) Regions(ctx context.Context) ([]core.Region, error) {
	keys, err := s.RegionKeys(ctx)
	if err != nil {
		return nil, err
	}

	regions := make([]core.Region, 0, len(keys))
	err = s.backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			region, err := readRegion(tx, key)
			if err != nil {
				return err
			}
			regions = append(regions, *region)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// Region returns a single region by key.
func (s *Store) Region(ctx context.Context, key string) (*core.Region, error) {
	var region *core.Region
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		region, err = readRegion(tx, key)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return region, nil
}

// readRegion reassembles a region from its record and property records.
func readRegion(tx *badger.Txn, key string) (*core.Region, error) {
	item, err := tx.Get(makeRegionKey(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("region %q: %w", key, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var record *catalog.RegionRecord
	if err := item.Value(func(val []byte) error {
		record, err = catalog.UnmarshalRegionRecord(val)
		return err
	}); err != nil {
		return nil, err
	}

	region := &core.Region{
		Key:        record.Key,
		Name:       record.Name,
		Properties: make([]core.Property, 0, len(record.PropertyIDs)),
	}
	for _, id := range record.PropertyIDs {
		prop, err := readProperty(tx, id)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", key, err)
		}
		region.Properties = append(region.Properties, *prop)
	}
	return region, nil
}

func readProperty(tx *badger.Txn, id core.ID) (*core.Property, error) {
	item, err := tx.Get(makePropertyKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("property %d: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var prop *core.Property
	if err := item.Value(func(val []byte) error {
		prop, err = catalog.UnmarshalProperty(val)
		return err
	}); err != nil {
		return nil, err
	}
	return prop, nil
}
