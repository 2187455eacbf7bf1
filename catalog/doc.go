// Package catalog provides the read-only store abstractions for the
// property catalog and user profiles.
//
// This package defines store interfaces that decouple storage
// implementation from matching logic. Two backends implement them: an
// in-memory snapshot loaded from JSON files (catalog/jsonfile) and a
// persistent BadgerDB store populated by the import pipeline
// (catalog/badgerstore).
//
// Both backends are immutable after process start: each serving request
// sees the same catalog snapshot, so concurrent requests need no locking.
package catalog
