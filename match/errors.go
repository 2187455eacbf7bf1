package match

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog store is not provided.
	ErrCatalogRequired = errors.New("catalog store required")

	// ErrProfileStoreRequired is returned when a profile store is not provided.
	ErrProfileStoreRequired = errors.New("profile store required")
)
