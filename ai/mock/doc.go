// Package mock provides deterministic test doubles for the ai
// interfaces.
package mock
