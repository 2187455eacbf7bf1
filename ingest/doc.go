// Package ingest imports catalog and user JSON files into the
// persistent store.
//
// Catalog files are validated against a JSON Schema before load;
// regions are written concurrently through a worker pool.
package ingest
