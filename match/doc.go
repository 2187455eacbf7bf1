// Package match scores a property catalog against a free-text query and
// an optional user profile.
//
// The Scorer type implements a two-stage ranking sweep:
//   - Profile rules applied for registered users (budget, location,
//     property type, listing type, bedrooms, must-have features)
//   - Keyword matching between the query and the property record,
//     applied for every user
//
// Each rule adds a fixed weight and, for most rules, a human-readable
// reason. Properties that score zero are dropped; the rest are ranked
// by score descending and capped at MaxMatches.
package match
