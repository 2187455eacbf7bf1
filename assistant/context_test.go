package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guddy2005/real-estate-app/core"
)

func TestFormatAED(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{145000, "145,000"},
		{4000000, "4,000,000"},
		{18500000, "18,500,000"},
		{-125000, "-125,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAED(tt.amount))
	}
}

func TestUserContext_Guest(t *testing.T) {
	text := UserContext(core.UserGuest, nil)

	assert.Contains(t, text, "USER TYPE: Guest User (Non-Registered)")
	assert.Contains(t, text, "No personalization capabilities")
	assert.NotContains(t, text, "USER PROFILE")
}

func TestUserContext_Registered(t *testing.T) {
	profile := &core.UserProfile{
		Name:                   "Ayesha Khan",
		BudgetMinAED:           4000000,
		BudgetMaxAED:           9000000,
		PreferredLocations:     []string{"Palm Jumeirah", "Dubai Marina"},
		PropertyTypePreference: []core.PropertyType{core.PropertyVilla, core.PropertyPenthouse},
		CategoryInterest:       "Luxury",
		ListingTypeInterest:    core.ListingSale,
		BedroomsMin:            3,
		BedroomsMax:            5,
		MustHaveFeatures:       []string{"pool", "sea view"},
		LifestylePreferences:   []string{"beachfront"},
		BrowsingHistory: []core.BrowsingEvent{
			{PropertyID: "Bay Square Duplex", ViewedOn: "2026-08-10", TimeSpentSeconds: 60},
			{PropertyID: "Marina Crown Penthouse", ViewedOn: "2026-08-18", TimeSpentSeconds: 245},
			{PropertyID: "Palm Frond Signature Villa", ViewedOn: "2026-08-21", TimeSpentSeconds: 410},
			{PropertyID: "Golf Grove Family Villa", ViewedOn: "2026-08-24", TimeSpentSeconds: 180},
		},
		SavedProperties: []string{"Palm Frond Signature Villa"},
	}

	text := UserContext(core.UserRegistered, profile)

	assert.Contains(t, text, "USER TYPE: Registered User")
	assert.Contains(t, text, "- Name: Ayesha Khan")
	assert.Contains(t, text, "- Budget Range: AED 4,000,000 - AED 9,000,000")
	assert.Contains(t, text, "- Preferred Locations: Palm Jumeirah, Dubai Marina")
	assert.Contains(t, text, "- Property Type Preference: Villa, Penthouse")
	assert.Contains(t, text, "- Bedrooms Required: 3 - 5")
	assert.Contains(t, text, "SAVED PROPERTIES: Palm Frond Signature Villa")

	// Only the last three browsing events are shown.
	assert.NotContains(t, text, "Bay Square Duplex")
	assert.Contains(t, text, "- Viewed Marina Crown Penthouse on 2026-08-18 (spent 245s)")
	assert.Contains(t, text, "- Viewed Golf Grove Family Villa on 2026-08-24 (spent 180s)")
}

func TestUserContext_RegisteredWithoutProfileFallsBackToGuest(t *testing.T) {
	text := UserContext(core.UserRegistered, nil)
	assert.Equal(t, guestContext, text)
}
