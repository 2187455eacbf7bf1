package ingest

import "errors"

var (
	// ErrStoreRequired is returned when a catalog store is not provided.
	ErrStoreRequired = errors.New("catalog store required")

	// ErrProfileStoreRequired is returned when a profile store is not provided.
	ErrProfileStoreRequired = errors.New("profile store required")

	// ErrSchemaViolation is returned when a catalog file fails schema validation.
	ErrSchemaViolation = errors.New("catalog schema violation")
)
