// Package badgerstore provides persistent catalog and profile stores
// backed by BadgerDB.
//
// Records are serialized with MUS. Each property is stored once under a
// content-derived ID; region records hold display data plus the ordered
// property ID list, and a single ordered key list fixes catalog
// iteration order.
package badgerstore
