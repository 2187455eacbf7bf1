package assistant

import (
	"fmt"
	"strings"

	"github.com/guddy2005/real-estate-app/match"
)

// Result window sizes for the two presentation surfaces.
const (
	// PromptMatches is how many ranked matches are described to the
	// model in the prompt.
	PromptMatches = 5

	// CardMatches is how many ranked matches are rendered as HTML cards
	// under the reply.
	CardMatches = 4
)

const promptInstructions = `INSTRUCTIONS:
1. You are a professional Dubai Real Estate GPT advisor
2. Provide accurate, helpful, and personalized responses
3. If registered user: use their profile data to personalize recommendations
4. Reference specific properties from the catalog when relevant
5. Use natural, varied conversational tone (avoid repetitive patterns)
6. Be proactive with follow-up questions and suggestions
7. Format property recommendations clearly
8. Keep responses concise but informative (300-500 words max)
9. Use emojis sparingly for better readability
10. ALWAYS end with a probing question or actionable suggestion`

// PropertiesContext renders the ranked matches as a numbered catalog
// excerpt for the prompt. Returns the empty string when there are no
// matches.
func PropertiesContext(results []match.Result) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("RELEVANT PROPERTIES FROM CATALOG:\n")
	for i, result := range match.Take(results, PromptMatches) {
		prop := result.Property
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, prop.Name, result.Region)
		fmt.Fprintf(&b, "   Type: %s | Area: %d sqft\n", prop.Type, prop.AreaSqft)
		if prop.PriceAED != nil {
			fmt.Fprintf(&b, "   Price: AED %s\n", formatAED(*prop.PriceAED))
		}
		if prop.Bedrooms != nil {
			fmt.Fprintf(&b, "   Bedrooms: %d\n", *prop.Bedrooms)
		}
		fmt.Fprintf(&b, "   Status: %s\n", prop.Status)
		fmt.Fprintf(&b, "   Match Score: %d\n", result.Score)
		if len(result.Reasons) > 0 {
			fmt.Fprintf(&b, "   Reasons: %s\n", joinReasons(result.Reasons, len(result.Reasons)))
		}
	}
	return b.String()
}

// BuildPrompt assembles the full generation prompt from the knowledge
// base, the user context, the catalog excerpt and the query.
func BuildPrompt(query, userContext, propertiesContext string) string {
	var b strings.Builder
	b.WriteString(marketKnowledge)
	b.WriteString("\n\n")
	b.WriteString(userContext)
	b.WriteString("\n\n")
	if propertiesContext != "" {
		b.WriteString(propertiesContext)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "USER QUERY: %q\n\n", query)
	b.WriteString(promptInstructions)
	b.WriteString("\n\nRESPONSE:\n")
	return b.String()
}

// joinReasons joins up to max reason texts with commas.
func joinReasons(reasons []match.Reason, max int) string {
	if max > len(reasons) {
		max = len(reasons)
	}
	texts := make([]string, 0, max)
	for _, reason := range reasons[:max] {
		texts = append(texts, reason.Text)
	}
	return strings.Join(texts, ", ")
}
