// Package core defines the domain model for the real-estate assistant:
// regions, property listings, user profiles, and the validation rules
// applied to them when a catalog is loaded.
package core
