package match

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/catalog/jsonfile"
	"github.com/guddy2005/real-estate-app/core"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

// testRegions builds a small catalog with one strong profile match, one
// partial match and one property that never matches the demo profile.
func testRegions() []core.Region {
	return []core.Region{
		{
			Key:  "dubai_marina",
			Name: "Dubai Marina",
			Properties: []core.Property{
				{
					Name:        "Marina Crown Penthouse",
					Type:        core.PropertyPenthouse,
					Status:      core.StatusReady,
					AreaSqft:    4100,
					Description: "Luxury penthouse with sea view near the beach.",
					Features:    []string{"sea view", "pool"},
					ListingType: core.ListingSale,
					PriceAED:    int64Ptr(7800000),
					Bedrooms:    intPtr(3),
				},
			},
		},
		{
			Key:  "palm_jumeirah",
			Name: "Palm Jumeirah",
			Properties: []core.Property{
				{
					Name:        "Palm Frond Signature Villa",
					Type:        core.PropertyVilla,
					Status:      core.StatusReady,
					AreaSqft:    8500,
					Description: "Beachfront villa, the definition of luxury island living.",
					Features:    []string{"pool", "sea view", "private beach"},
					ListingType: core.ListingSale,
					PriceAED:    int64Ptr(18500000),
					Bedrooms:    intPtr(5),
				},
			},
		},
		{
			Key:  "business_bay",
			Name: "Business Bay",
			Properties: []core.Property{
				{
					Name:           "Canal Vista Executive Office",
					Type:           core.PropertyOffice,
					Status:         core.StatusReady,
					AreaSqft:       3200,
					Description:    "Fitted floor with canal views.",
					Features:       []string{"parking"},
					ListingType:    core.ListingLease,
					LeaseAnnualAED: int64Ptr(420000),
				},
			},
		},
	}
}

func testProfiles() map[string]*core.UserProfile {
	return map[string]*core.UserProfile{
		catalog.DemoUserID: {
			Name:                   "Ayesha Khan",
			BudgetMinAED:           4000000,
			BudgetMaxAED:           9000000,
			PreferredLocations:     []string{"Palm Jumeirah", "Dubai Marina"},
			PropertyTypePreference: []core.PropertyType{core.PropertyVilla, core.PropertyPenthouse},
			ListingTypeInterest:    core.ListingSale,
			BedroomsMin:            3,
			BedroomsMax:            5,
			MustHaveFeatures:       []string{"pool", "sea view"},
		},
	}
}

func newTestScorer(t *testing.T, regions []core.Region, profiles map[string]*core.UserProfile) *Scorer {
	t.Helper()
	scorer, err := NewScorer(jsonfile.NewStore(regions), jsonfile.NewProfileStore(profiles))
	require.NoError(t, err)
	return scorer
}

func TestNewScorer(t *testing.T) {
	store := jsonfile.NewStore(testRegions())
	profiles := jsonfile.NewProfileStore(testProfiles())

	t.Run("valid configuration", func(t *testing.T) {
		scorer, err := NewScorer(store, profiles)
		require.NoError(t, err)
		assert.NotNil(t, scorer)
	})

	t.Run("with custom logger", func(t *testing.T) {
		scorer, err := NewScorer(store, profiles, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, scorer)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		scorer, err := NewScorer(store, profiles, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, scorer)
	})

	t.Run("nil catalog store", func(t *testing.T) {
		_, err := NewScorer(nil, profiles)
		assert.Equal(t, ErrCatalogRequired, err)
	})

	t.Run("nil profile store", func(t *testing.T) {
		_, err := NewScorer(store, nil)
		assert.Equal(t, ErrProfileStoreRequired, err)
	})
}

func TestScore_InvalidUserType(t *testing.T) {
	scorer := newTestScorer(t, testRegions(), testProfiles())

	_, err := scorer.Score(context.Background(), "villa", core.UserType(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidUserType)
}

func TestScore_EmptyCatalog(t *testing.T) {
	scorer := newTestScorer(t, nil, testProfiles())

	for _, user := range []core.UserType{core.UserGuest, core.UserRegistered} {
		results, err := scorer.Score(context.Background(), "luxury villa", user)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestScore_GuestKeywords(t *testing.T) {
	// One Villa with pool, beach and a luxury description: the query hits
	// luxury, villa and pool, each worth 2.
	regions := []core.Region{
		{
			Key:  "palm_jumeirah",
			Name: "Palm Jumeirah",
			Properties: []core.Property{
				{
					Name:        "Frond Villa",
					Type:        core.PropertyVilla,
					Status:      core.StatusReady,
					AreaSqft:    6000,
					Description: "A luxury villa with a private pool by the beach.",
					Features:    []string{"pool", "beach"},
					ListingType: core.ListingSale,
					PriceAED:    int64Ptr(5000000),
				},
			},
		},
	}
	scorer := newTestScorer(t, regions, testProfiles())

	results, err := scorer.Score(context.Background(), "luxury villa with pool", core.UserGuest)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 6, results[0].Score)
	assert.Equal(t, "Frond Villa", results[0].Property.Name)
	assert.Equal(t, "Palm Jumeirah", results[0].Region)
	assert.Empty(t, results[0].Reasons, "keyword hits carry no reasons")
}

func TestScore_RegisteredProfileRules(t *testing.T) {
	// Budget, location, type and one feature hit, but no bedrooms field
	// and a listing type outside the profile's interest:
	// 10+8+7+3 profile points plus 2 each for luxury, villa and pool.
	regions := []core.Region{
		{
			Key:  "palm_jumeirah",
			Name: "Palm Jumeirah",
			Properties: []core.Property{
				{
					Name:        "Frond Villa",
					Type:        core.PropertyVilla,
					Status:      core.StatusReady,
					AreaSqft:    6000,
					Description: "A luxury villa with a private pool by the beach.",
					Features:    []string{"pool", "beach"},
					ListingType: core.ListingSale,
					PriceAED:    int64Ptr(5000000),
				},
			},
		},
	}
	profiles := map[string]*core.UserProfile{
		catalog.DemoUserID: {
			Name:                   "Ayesha Khan",
			BudgetMinAED:           4000000,
			BudgetMaxAED:           6000000,
			PreferredLocations:     []string{"Palm Jumeirah"},
			PropertyTypePreference: []core.PropertyType{core.PropertyVilla},
			ListingTypeInterest:    core.ListingRent,
			MustHaveFeatures:       []string{"pool"},
		},
	}
	scorer := newTestScorer(t, regions, profiles)

	results, err := scorer.Score(context.Background(), "luxury villa with pool", core.UserRegistered)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 34, results[0].Score)

	texts := reasonTexts(results[0].Reasons)
	assert.Contains(t, texts, "within your budget")
	assert.Contains(t, texts, "in your preferred area (Palm Jumeirah)")
	assert.Contains(t, texts, "matches your preference for villas")
	assert.Contains(t, texts, "includes pool")
}

func TestScore_RegisteredFullSweep(t *testing.T) {
	scorer := newTestScorer(t, testRegions(), testProfiles())

	results, err := scorer.Score(context.Background(), "", core.UserRegistered)
	require.NoError(t, err)
	require.Len(t, results, 2, "office scores zero and is dropped")

	// Penthouse: budget 10 + location 8 + type 7 + listing 5 + bedrooms 5
	// + pool 3 + sea view 3 = 41.
	penthouse := results[0]
	assert.Equal(t, "Marina Crown Penthouse", penthouse.Property.Name)
	assert.Equal(t, 41, penthouse.Score)
	assert.Equal(t, []Reason{
		{Rule: RuleBudget, Text: "within your budget"},
		{Rule: RuleLocation, Text: "in your preferred area (Dubai Marina)"},
		{Rule: RulePropertyType, Text: "matches your preference for penthouses"},
		{Rule: RuleBedrooms, Text: "suitable bedroom count"},
		{Rule: RuleFeature, Text: "includes pool"},
		{Rule: RuleFeature, Text: "includes sea view"},
	}, penthouse.Reasons, "listing type alignment scores without a reason")

	// Villa: over budget, so location 8 + type 7 + listing 5 + bedrooms 5
	// + pool 3 + sea view 3 = 31.
	villa := results[1]
	assert.Equal(t, "Palm Frond Signature Villa", villa.Property.Name)
	assert.Equal(t, 31, villa.Score)
	assert.NotContains(t, reasonTexts(villa.Reasons), "within your budget")
}

func TestScore_EmptyQueryGuest(t *testing.T) {
	// Without a profile and without query keywords every property scores
	// zero, so a non-empty catalog still yields no results.
	scorer := newTestScorer(t, testRegions(), testProfiles())

	results, err := scorer.Score(context.Background(), "", core.UserGuest)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScore_Truncation(t *testing.T) {
	region := core.Region{Key: "downtown_dubai", Name: "Downtown Dubai"}
	for i := 0; i < 10; i++ {
		region.Properties = append(region.Properties, core.Property{
			Name:        fmt.Sprintf("Boulevard Apartment %d", i),
			Type:        core.PropertyApartment,
			Status:      core.StatusReady,
			AreaSqft:    1000 + i,
			Description: "City apartment.",
			ListingType: core.ListingSale,
			PriceAED:    int64Ptr(2000000),
		})
	}
	scorer := newTestScorer(t, []core.Region{region}, testProfiles())

	results, err := scorer.Score(context.Background(), "apartment", core.UserGuest)
	require.NoError(t, err)
	require.Len(t, results, MaxMatches)

	// Equal scores keep catalog order.
	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("Boulevard Apartment %d", i), result.Property.Name)
		assert.Equal(t, 2, result.Score)
	}
}

func TestScore_TieStability(t *testing.T) {
	scorer := newTestScorer(t, testRegions(), testProfiles())

	// Both the penthouse and the villa contain "sea view"; the penthouse
	// region comes first in the catalog and must stay first.
	results, err := scorer.Score(context.Background(), "sea view", core.UserGuest)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Marina Crown Penthouse", results[0].Property.Name)
	assert.Equal(t, "Palm Frond Signature Villa", results[1].Property.Name)
	assert.Equal(t, results[0].Score, results[1].Score)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := newTestScorer(t, testRegions(), testProfiles())
	ctx := context.Background()

	first, err := scorer.Score(ctx, "luxury villa with pool", core.UserRegistered)
	require.NoError(t, err)
	second, err := scorer.Score(ctx, "luxury villa with pool", core.UserRegistered)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// recordingMonitor captures sweep callbacks for assertions.
type recordingMonitor struct {
	started  bool
	profile  *core.UserProfile
	matched  []string
	filtered []string
	regions  int
	scanned  int
	final    []Result
}

var _ Monitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(_ string, _ core.UserType)      { m.started = true }
func (m *recordingMonitor) AfterProfileLoad(p *core.UserProfile) { m.profile = p }
func (m *recordingMonitor) PropertyMatched(r Result)             { m.matched = append(m.matched, r.Property.Name) }
func (m *recordingMonitor) PropertyFiltered(name string)         { m.filtered = append(m.filtered, name) }
func (m *recordingMonitor) AfterCatalogSweep(regions, properties int) {
	m.regions = regions
	m.scanned = properties
}
func (m *recordingMonitor) Finish(results []Result) { m.final = results }

func TestScoreWithMonitor(t *testing.T) {
	scorer := newTestScorer(t, testRegions(), testProfiles())

	monitor := &recordingMonitor{}
	results, err := scorer.ScoreWithMonitor(context.Background(), "", core.UserRegistered, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	require.NotNil(t, monitor.profile)
	assert.Equal(t, "Ayesha Khan", monitor.profile.Name)
	assert.Equal(t, 3, monitor.regions)
	assert.Equal(t, 3, monitor.scanned)
	assert.Equal(t, []string{"Marina Crown Penthouse", "Palm Frond Signature Villa"}, monitor.matched)
	assert.Equal(t, []string{"Canal Vista Executive Office"}, monitor.filtered)
	assert.Equal(t, results, monitor.final)
}

func reasonTexts(reasons []Reason) []string {
	texts := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		texts = append(texts, reason.Text)
	}
	return texts
}
