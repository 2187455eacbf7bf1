package assistant

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/match"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func sampleResults(n int) []match.Result {
	results := make([]match.Result, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, match.Result{
			Property: &core.Property{
				Name:        fmt.Sprintf("Listing %d", i+1),
				Type:        core.PropertyApartment,
				Status:      core.StatusReady,
				AreaSqft:    1000 + i,
				Description: "City apartment.",
				ListingType: core.ListingSale,
				PriceAED:    int64Ptr(2500000),
				Bedrooms:    intPtr(2),
			},
			Region: "Downtown Dubai",
			Score:  20 - i,
			Reasons: []match.Reason{
				{Rule: match.RuleBudget, Text: "within your budget"},
			},
		})
	}
	return results
}

func TestPropertiesContext(t *testing.T) {
	text := PropertiesContext(sampleResults(2))

	assert.Contains(t, text, "RELEVANT PROPERTIES FROM CATALOG:")
	assert.Contains(t, text, "1. Listing 1 (Downtown Dubai)")
	assert.Contains(t, text, "2. Listing 2 (Downtown Dubai)")
	assert.Contains(t, text, "Type: Apartment | Area: 1000 sqft")
	assert.Contains(t, text, "Price: AED 2,500,000")
	assert.Contains(t, text, "Bedrooms: 2")
	assert.Contains(t, text, "Match Score: 20")
	assert.Contains(t, text, "Reasons: within your budget")
}

func TestPropertiesContext_Windowed(t *testing.T) {
	text := PropertiesContext(sampleResults(7))

	assert.Contains(t, text, fmt.Sprintf("%d. Listing %d", PromptMatches, PromptMatches))
	assert.NotContains(t, text, "6. Listing 6")
}

func TestPropertiesContext_Empty(t *testing.T) {
	assert.Empty(t, PropertiesContext(nil))
}

func TestPropertiesContext_SkipsAbsentFields(t *testing.T) {
	results := []match.Result{{
		Property: &core.Property{
			Name:           "Canal Vista Executive Office",
			Type:           core.PropertyOffice,
			Status:         core.StatusReady,
			AreaSqft:       3200,
			ListingType:    core.ListingLease,
			LeaseAnnualAED: int64Ptr(420000),
		},
		Region: "Business Bay",
		Score:  2,
	}}

	text := PropertiesContext(results)
	assert.NotContains(t, text, "Price:")
	assert.NotContains(t, text, "Bedrooms:")
	assert.NotContains(t, text, "Reasons:")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("luxury villa", guestContext, PropertiesContext(sampleResults(1)))

	assert.Contains(t, prompt, "DUBAI REAL ESTATE EXPERT SYSTEM")
	assert.Contains(t, prompt, "USER TYPE: Guest User")
	assert.Contains(t, prompt, "RELEVANT PROPERTIES FROM CATALOG:")
	assert.Contains(t, prompt, `USER QUERY: "luxury villa"`)
	assert.Contains(t, prompt, "INSTRUCTIONS:")
	assert.True(t, strings.HasSuffix(prompt, "RESPONSE:\n"))

	// Sections appear in reading order.
	knowledge := strings.Index(prompt, "DUBAI REAL ESTATE EXPERT SYSTEM")
	user := strings.Index(prompt, "USER TYPE:")
	properties := strings.Index(prompt, "RELEVANT PROPERTIES")
	query := strings.Index(prompt, "USER QUERY:")
	require.True(t, knowledge < user && user < properties && properties < query)
}

func TestBuildPrompt_NoMatches(t *testing.T) {
	prompt := BuildPrompt("hello", guestContext, "")
	assert.NotContains(t, prompt, "RELEVANT PROPERTIES")
	assert.Contains(t, prompt, `USER QUERY: "hello"`)
}
