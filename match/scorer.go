package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/core"
)

// MaxMatches is the maximum number of results a single sweep returns.
const MaxMatches = 7

// Rule weights.
const (
	BudgetWeight       = 10
	LocationWeight     = 8
	PropertyTypeWeight = 7
	ListingTypeWeight  = 5
	BedroomsWeight     = 5
	FeatureWeight      = 3
	KeywordWeight      = 2
)

// RuleID identifies the rule that produced a reason.
type RuleID string

const (
	RuleBudget       RuleID = "budget"
	RuleLocation     RuleID = "location"
	RulePropertyType RuleID = "property_type"
	RuleBedrooms     RuleID = "bedrooms"
	RuleFeature      RuleID = "feature"
)

// Reason explains one rule hit in a match result.
type Reason struct {
	Rule RuleID
	Text string
}

// Result is a single scored catalog entry.
type Result struct {
	Property *core.Property
	Region   string
	Score    int
	Reasons  []Reason
}

// propertyRecord pairs a property with the region it was listed under.
type propertyRecord struct {
	Property *core.Property
	Region   *core.Region
}

// Scorer ranks catalog properties against a query and, for registered
// users, the stored profile.
type Scorer struct {
	catalog  catalog.Store
	profiles catalog.ProfileStore
	logger   *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScorer creates a new scorer over the given stores.
func NewScorer(store catalog.Store, profiles catalog.ProfileStore, opts ...Option) (*Scorer, error) {
	if store == nil {
		return nil, ErrCatalogRequired
	}
	if profiles == nil {
		return nil, ErrProfileStoreRequired
	}

	s := &Scorer{
		catalog:  store,
		profiles: profiles,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Score ranks the full catalog against the query.
// Returns up to MaxMatches results, ordered by score descending. Ties
// keep catalog order, so repeated sweeps over the same catalog produce
// identical rankings.
func (s *Scorer) Score(ctx context.Context, query string, user core.UserType) ([]Result, error) {
	return s.ScoreWithMonitor(ctx, query, user, nil)
}

// ScoreWithMonitor ranks the full catalog against the query with
// monitoring. The monitor receives callbacks at each stage of the sweep.
func (s *Scorer) ScoreWithMonitor(ctx context.Context, query string, user core.UserType, monitor Monitor) ([]Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateUserType(user); err != nil {
		return nil, err
	}

	monitor.Start(query, user)

	regions, err := s.catalog.Regions(ctx)
	if err != nil {
		s.logger.Error("error loading catalog regions", "err", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var profile *core.UserProfile
	if user == core.UserRegistered {
		profile, err = s.profiles.Profile(ctx, catalog.DemoUserID)
		if err != nil {
			s.logger.Error("error loading user profile", "user", catalog.DemoUserID, "err", err)
			return nil, fmt.Errorf("load profile: %w", err)
		}
		monitor.AfterProfileLoad(profile)
	}

	queryLower := strings.ToLower(query)

	properties := 0
	results := make([]Result, 0, MaxMatches)
	for i := range regions {
		region := &regions[i]
		for j := range region.Properties {
			properties++
			record := propertyRecord{Property: &region.Properties[j], Region: region}

			score, reasons := scoreRecord(&record, profile, queryLower)
			if score == 0 {
				monitor.PropertyFiltered(record.Property.Name)
				continue
			}

			result := Result{
				Property: record.Property,
				Region:   region.Name,
				Score:    score,
				Reasons:  reasons,
			}
			monitor.PropertyMatched(result)
			results = append(results, result)
		}
	}
	monitor.AfterCatalogSweep(len(regions), properties)

	// Sort by score descending; stable sort preserves catalog order on ties
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxMatches {
		results = results[:MaxMatches]
	}
	monitor.Finish(results)

	return results, nil
}

// scoreRecord applies the profile rules (when a profile is given) and
// the keyword pass to a single property. Rules that reference an absent
// optional field are skipped.
func scoreRecord(record *propertyRecord, profile *core.UserProfile, queryLower string) (int, []Reason) {
	score := 0
	var reasons []Reason

	if profile != nil {
		prop := record.Property

		if prop.PriceAED != nil {
			if profile.BudgetMinAED <= *prop.PriceAED && *prop.PriceAED <= profile.BudgetMaxAED {
				score += BudgetWeight
				reasons = append(reasons, Reason{Rule: RuleBudget, Text: "within your budget"})
			}
		}

		if containsString(profile.PreferredLocations, record.Region.Name) {
			score += LocationWeight
			reasons = append(reasons, Reason{
				Rule: RuleLocation,
				Text: fmt.Sprintf("in your preferred area (%s)", record.Region.Name),
			})
		}

		if containsPropertyType(profile.PropertyTypePreference, prop.Type) {
			score += PropertyTypeWeight
			reasons = append(reasons, Reason{
				Rule: RulePropertyType,
				Text: fmt.Sprintf("matches your preference for %ss", strings.ToLower(string(prop.Type))),
			})
		}

		// Listing type alignment scores but carries no reason
		if prop.ListingType == profile.ListingTypeInterest {
			score += ListingTypeWeight
		}

		if prop.Bedrooms != nil {
			if profile.BedroomsMin <= *prop.Bedrooms && *prop.Bedrooms <= profile.BedroomsMax {
				score += BedroomsWeight
				reasons = append(reasons, Reason{Rule: RuleBedrooms, Text: "suitable bedroom count"})
			}
		}

		for _, feature := range profile.MustHaveFeatures {
			if containsString(prop.Features, feature) {
				score += FeatureWeight
				reasons = append(reasons, Reason{
					Rule: RuleFeature,
					Text: fmt.Sprintf("includes %s", feature),
				})
			}
		}
	}

	score += keywordScore(recordText(record), queryLower)

	return score, reasons
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsPropertyType(haystack []core.PropertyType, needle core.PropertyType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}
