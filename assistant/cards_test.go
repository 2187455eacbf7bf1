package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/match"
)

func cardResult() match.Result {
	return match.Result{
		Property: &core.Property{
			Name:        "Palm Frond Signature Villa",
			Type:        core.PropertyVilla,
			Status:      core.StatusReady,
			AreaSqft:    8500,
			Description: strings.Repeat("Beachfront villa on the fronds. ", 10),
			Features:    []string{"private beach", "pool", "sea view", "maid room", "cinema"},
			ListingType: core.ListingSale,
			PriceAED:    int64Ptr(18500000),
			Bedrooms:    intPtr(5),
		},
		Region: "Palm Jumeirah",
		Score:  31,
		Reasons: []match.Reason{
			{Rule: match.RuleLocation, Text: "in your preferred area (Palm Jumeirah)"},
			{Rule: match.RulePropertyType, Text: "matches your preference for villas"},
			{Rule: match.RuleBedrooms, Text: "suitable bedroom count"},
			{Rule: match.RuleFeature, Text: "includes pool"},
		},
	}
}

func TestRenderCards(t *testing.T) {
	html, err := RenderCards([]match.Result{cardResult()}, true)
	require.NoError(t, err)

	assert.Contains(t, html, `<div class="property-card">`)
	assert.Contains(t, html, "✅ Palm Frond Signature Villa - Palm Jumeirah")
	assert.Contains(t, html, "<strong>Villa</strong> | 5 BR | 8500 sqft")
	assert.Contains(t, html, "AED 18,500,000")

	// Description is cut at the card limit.
	assert.Contains(t, html, "...")
	assert.NotContains(t, html, strings.Repeat("Beachfront villa on the fronds. ", 5))

	// Only the first four features appear.
	assert.Contains(t, html, "private beach, pool, sea view, maid room")
	assert.NotContains(t, html, "cinema")

	// Only the first three reasons appear.
	assert.Contains(t, html, "Why this matches:")
	assert.Contains(t, html, "suitable bedroom count")
	assert.NotContains(t, html, "includes pool")
}

func TestRenderCards_WithoutReasons(t *testing.T) {
	html, err := RenderCards([]match.Result{cardResult()}, false)
	require.NoError(t, err)
	assert.NotContains(t, html, "Why this matches:")
}

func TestRenderCards_Window(t *testing.T) {
	results := make([]match.Result, 6)
	for i := range results {
		results[i] = cardResult()
	}

	html, err := RenderCards(results, true)
	require.NoError(t, err)
	assert.Equal(t, CardMatches, strings.Count(html, `<div class="property-card">`))
}

func TestRenderCards_UnderConstruction(t *testing.T) {
	result := cardResult()
	result.Property.Status = core.StatusUnderConstruction

	html, err := RenderCards([]match.Result{result}, true)
	require.NoError(t, err)
	assert.Contains(t, html, "🏗️")
}

func TestPriceDisplay(t *testing.T) {
	t.Run("sale", func(t *testing.T) {
		prop := &core.Property{PriceAED: int64Ptr(5000000)}
		assert.Equal(t, "AED 5,000,000", priceDisplay(prop))
	})

	t.Run("rent only", func(t *testing.T) {
		prop := &core.Property{RentAnnualAED: int64Ptr(145000)}
		assert.Equal(t, "Rent: AED 145,000/year", priceDisplay(prop))
	})

	t.Run("lease only", func(t *testing.T) {
		prop := &core.Property{LeaseAnnualAED: int64Ptr(420000)}
		assert.Equal(t, "Lease: AED 420,000/year", priceDisplay(prop))
	})
}
