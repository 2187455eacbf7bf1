package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guddy2005/real-estate-app/core"
)

const guestContext = `USER TYPE: Guest User (Non-Registered)
- No profile information available
- Provide general market insights and property information
- Encourage exploration of different options
- No personalization capabilities`

// historyWindow caps how many recent browsing events appear in the
// prompt.
const historyWindow = 3

// UserContext renders the user section of the prompt. Guests get a
// fixed block; registered users get their profile, recent browsing
// history and saved properties.
func UserContext(user core.UserType, profile *core.UserProfile) string {
	if user != core.UserRegistered || profile == nil {
		return guestContext
	}

	var b strings.Builder
	b.WriteString("USER TYPE: Registered User\n")
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Budget Range: AED %s - AED %s\n",
		formatAED(profile.BudgetMinAED), formatAED(profile.BudgetMaxAED))
	fmt.Fprintf(&b, "- Preferred Locations: %s\n", strings.Join(profile.PreferredLocations, ", "))
	fmt.Fprintf(&b, "- Property Type Preference: %s\n", joinPropertyTypes(profile.PropertyTypePreference))
	fmt.Fprintf(&b, "- Category Interest: %s\n", profile.CategoryInterest)
	fmt.Fprintf(&b, "- Listing Type: %s\n", profile.ListingTypeInterest)
	fmt.Fprintf(&b, "- Bedrooms Required: %d - %d\n", profile.BedroomsMin, profile.BedroomsMax)
	fmt.Fprintf(&b, "- Must-Have Features: %s\n", strings.Join(profile.MustHaveFeatures, ", "))
	fmt.Fprintf(&b, "- Lifestyle Preferences: %s\n", strings.Join(profile.LifestylePreferences, ", "))

	b.WriteString("\nRECENT BROWSING HISTORY (Last 3 properties):\n")
	history := profile.BrowsingHistory
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, event := range history {
		fmt.Fprintf(&b, "- Viewed %s on %s (spent %ds)\n",
			event.PropertyID, event.ViewedOn, event.TimeSpentSeconds)
	}

	fmt.Fprintf(&b, "\nSAVED PROPERTIES: %s\n", strings.Join(profile.SavedProperties, ", "))

	b.WriteString(`
IMPORTANT: Use this profile information to provide HIGHLY PERSONALIZED recommendations.
- Match properties to their budget and preferences
- Reference their browsing history when relevant
- Suggest properties similar to what they've viewed/saved
- Be proactive in understanding their needs`)

	return b.String()
}

// formatAED renders an amount with thousands separators, e.g. 4000000
// becomes "4,000,000".
func formatAED(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

func joinPropertyTypes(types []core.PropertyType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
